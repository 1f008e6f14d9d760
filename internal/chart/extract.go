package chart

import (
	"github.com/shopspring/decimal"

	"notion-chart-api/internal/model"
)

// GroupKeys maps one property value to the x-axis keys it contributes. Most
// kinds yield zero or one key; multi_select fans out to one key per selected
// option. A missing or empty payload yields no keys, which drops the record
// from the aggregation.
func GroupKeys(value model.PropertyValue) []string {
	switch value.Type {
	case model.KindTitle:
		return singleKey(firstPlainText(value.Title))
	case model.KindRichText:
		return singleKey(firstPlainText(value.RichText))
	case model.KindSelect:
		return singleKey(optionName(value.Select))
	case model.KindStatus:
		return singleKey(optionName(value.Status))
	case model.KindMultiSelect:
		keys := make([]string, 0, len(value.MultiSelect))
		for _, opt := range value.MultiSelect {
			if opt.Name != "" {
				keys = append(keys, opt.Name)
			}
		}
		return keys
	case model.KindNumber:
		if value.Number == nil {
			return nil
		}
		return []string{FormatNumber(*value.Number)}
	case model.KindDate:
		if value.Date == nil {
			return nil
		}
		return singleKey(value.Date.Start)
	case model.KindCheckbox:
		if value.Checkbox == nil {
			return nil
		}
		if *value.Checkbox {
			return []string{"Yes"}
		}
		return []string{"No"}
	case model.KindCreatedTime:
		return singleKey(value.CreatedTime)
	case model.KindLastEditedTime:
		return singleKey(value.LastEditedTime)
	case model.KindURL:
		return singleKey(value.URL)
	case model.KindRelation:
		if len(value.Relation) == 0 {
			return nil
		}
		return singleKey(value.Relation[0].ID)
	}
	return nil
}

// NumericOperand extracts the y-axis operand. Only number properties are
// valid operand sources; everything else reports ok=false and the engine
// skips the record's contribution.
func NumericOperand(value model.PropertyValue) (float64, bool) {
	if value.Type != model.KindNumber || value.Number == nil {
		return 0, false
	}
	return *value.Number, true
}

// FormatNumber renders a float the way the configuration UI displays it:
// "10" rather than "10.000000", "10.5" rather than "10.500000".
func FormatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func singleKey(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func firstPlainText(segments []model.RichTextSegment) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[0].PlainText
}

func optionName(opt *model.SelectOption) string {
	if opt == nil {
		return ""
	}
	return opt.Name
}
