package notion

import (
	"encoding/json"
	"fmt"

	"notion-chart-api/internal/model"
)

// SanitizeFilters validates each condition against the database schema and
// rewrites values where the API wants a different shape than the UI sends.
// Today that is one rewrite: status filters arrive with an option id and the
// query API wants the option name. Returns a sanitized copy; the input is
// not modified.
func SanitizeFilters(filters []model.FilterCondition, db model.Database) ([]model.FilterCondition, error) {
	if len(filters) == 0 {
		return filters, nil
	}

	sanitized := make([]model.FilterCondition, len(filters))
	copy(sanitized, filters)

	for i, filter := range sanitized {
		property, ok := db.Properties[filter.PropertyID]
		if !ok {
			return nil, fmt.Errorf("filter property %s not found in database", filter.PropertyID)
		}
		if property.Type != filter.PropertyType {
			return nil, fmt.Errorf("filter property type mismatch for %s", filter.PropertyID)
		}
		if filter.PropertyType == model.KindStatus && property.Status != nil {
			if id, ok := filter.Value.(string); ok {
				for _, option := range property.Status.Options {
					if option.ID == id {
						sanitized[i].Value = option.Name
						break
					}
				}
			}
		}
	}
	return sanitized, nil
}

// BuildFilter lowers filter conditions to the Notion query filter document.
// A single condition stands alone; multiple conditions are combined with
// "and". Returns nil for an empty list.
func BuildFilter(filters []model.FilterCondition) (json.RawMessage, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	if len(filters) == 1 {
		lowered, err := lowerCondition(filters[0])
		if err != nil {
			return nil, err
		}
		return json.Marshal(lowered)
	}

	all := make([]map[string]interface{}, 0, len(filters))
	for _, filter := range filters {
		lowered, err := lowerCondition(filter)
		if err != nil {
			return nil, err
		}
		all = append(all, lowered)
	}
	return json.Marshal(map[string]interface{}{"and": all})
}

func lowerCondition(condition model.FilterCondition) (map[string]interface{}, error) {
	switch condition.PropertyType {
	case model.KindTitle, model.KindRichText:
		return lowerOperator(condition, string(condition.PropertyType),
			"equals", "contains", "is_empty", "is_not_empty")
	case model.KindNumber:
		return lowerOperator(condition, "number",
			"equals", "greater_than", "less_than", "is_empty", "is_not_empty")
	case model.KindSelect:
		return lowerOperator(condition, "select",
			"equals", "does_not_equal", "is_empty", "is_not_empty")
	case model.KindStatus:
		return lowerOperator(condition, "status",
			"equals", "does_not_equal", "is_empty", "is_not_empty")
	case model.KindDate, model.KindCreatedTime, model.KindLastEditedTime:
		return lowerOperator(condition, string(condition.PropertyType),
			"equals", "before", "after", "is_empty", "is_not_empty")
	case model.KindCheckbox:
		return map[string]interface{}{
			"property": condition.PropertyID,
			"checkbox": map[string]interface{}{"equals": condition.Value},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported filter property type: %s", condition.PropertyType)
	}
}

// lowerOperator builds {property, <payloadKey>: {<operator>: value}} after
// checking the operator is allowed for the property type. is_empty and
// is_not_empty take the literal true instead of the condition value.
func lowerOperator(condition model.FilterCondition, payloadKey string, allowed ...string) (map[string]interface{}, error) {
	supported := false
	for _, op := range allowed {
		if condition.Operator == op {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("unsupported operator %q for property type %s",
			condition.Operator, condition.PropertyType)
	}

	payload := map[string]interface{}{}
	switch condition.Operator {
	case "is_empty", "is_not_empty":
		payload[condition.Operator] = true
	default:
		if condition.Value != nil {
			payload[condition.Operator] = condition.Value
		}
	}

	return map[string]interface{}{
		"property": condition.PropertyID,
		payloadKey: payload,
	}, nil
}
