package model

// PropertyOption is an option exposed to the configuration UI, either a
// select/status option or (for relations) a referenced page.
type PropertyOption struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// OptionList wraps the options array nested under select/status/multi_select
// schema payloads.
type OptionList struct {
	Options []PropertyOption `json:"options,omitempty"`
}

// RelationSchema is the schema payload of a relation property. Options is
// filled by relation enrichment with the titles of the referenced pages; the
// Notion API itself does not return it.
type RelationSchema struct {
	DataSourceID string           `json:"data_source_id,omitempty"`
	Options      []PropertyOption `json:"options,omitempty"`
}

// SchemaProperty describes one property of a database schema.
type SchemaProperty struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     PropertyKind    `json:"type"`
	Select   *OptionList     `json:"select,omitempty"`
	Status   *OptionList     `json:"status,omitempty"`
	Relation *RelationSchema `json:"relation,omitempty"`
}

// Database is a Notion data source: its identity plus the property schema
// keyed by property id.
type Database struct {
	ID         string                    `json:"id"`
	Title      []RichTextSegment         `json:"title"`
	URL        string                    `json:"url"`
	Properties map[string]SchemaProperty `json:"properties"`
}

// TitleText returns the plain-text database title, or "Untitled".
func (d Database) TitleText() string {
	if len(d.Title) > 0 && d.Title[0].PlainText != "" {
		return d.Title[0].PlainText
	}
	return "Untitled"
}
