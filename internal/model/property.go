package model

// PropertyKind is the Notion property type tag. It decides how a value is
// extracted for grouping and which comparator orders the resulting keys.
type PropertyKind string

const (
	KindTitle          PropertyKind = "title"
	KindRichText       PropertyKind = "rich_text"
	KindSelect         PropertyKind = "select"
	KindStatus         PropertyKind = "status"
	KindMultiSelect    PropertyKind = "multi_select"
	KindNumber         PropertyKind = "number"
	KindDate           PropertyKind = "date"
	KindCheckbox       PropertyKind = "checkbox"
	KindCreatedTime    PropertyKind = "created_time"
	KindLastEditedTime PropertyKind = "last_edited_time"
	KindURL            PropertyKind = "url"
	KindRelation       PropertyKind = "relation"
)

// AllPropertyKinds lists every kind the pipeline understands. Extraction and
// sorting tests range over this slice so a new kind cannot be added without
// deciding its behavior in both places.
var AllPropertyKinds = []PropertyKind{
	KindTitle,
	KindRichText,
	KindSelect,
	KindStatus,
	KindMultiSelect,
	KindNumber,
	KindDate,
	KindCheckbox,
	KindCreatedTime,
	KindLastEditedTime,
	KindURL,
	KindRelation,
}

// IsDateLike reports whether values of this kind are timestamps. Date-like
// x-axis keys are normalized to calendar days and sorted chronologically.
func (k PropertyKind) IsDateLike() bool {
	return k == KindDate || k == KindCreatedTime || k == KindLastEditedTime
}

// IsNumeric reports whether values of this kind are numeric operands.
func (k PropertyKind) IsNumeric() bool {
	return k == KindNumber
}

// Known reports whether k is one of the supported property kinds.
func (k PropertyKind) Known() bool {
	for _, known := range AllPropertyKinds {
		if k == known {
			return true
		}
	}
	return false
}

// RichTextSegment is one fragment of a title or rich_text value.
type RichTextSegment struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is a select, multi_select or status option.
type SelectOption struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// DateRange is the payload of a date property.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RelationRef points at another page.
type RelationRef struct {
	ID string `json:"id"`
}

// PropertyValue is the tagged variant carried by a page property. Exactly one
// payload field matching Type is set; the pointer/slice fields distinguish an
// absent payload from a zero one (number 0, unchecked checkbox).
type PropertyValue struct {
	ID   string       `json:"id,omitempty"`
	Type PropertyKind `json:"type"`

	Title          []RichTextSegment `json:"title,omitempty"`
	RichText       []RichTextSegment `json:"rich_text,omitempty"`
	Select         *SelectOption     `json:"select,omitempty"`
	Status         *SelectOption     `json:"status,omitempty"`
	MultiSelect    []SelectOption    `json:"multi_select,omitempty"`
	Number         *float64          `json:"number,omitempty"`
	Date           *DateRange        `json:"date,omitempty"`
	Checkbox       *bool             `json:"checkbox,omitempty"`
	CreatedTime    string            `json:"created_time,omitempty"`
	LastEditedTime string            `json:"last_edited_time,omitempty"`
	URL            string            `json:"url,omitempty"`
	Relation       []RelationRef     `json:"relation,omitempty"`
}

// Page is one database record: an opaque map from property id to its typed
// value. The pipeline never mutates pages.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}
