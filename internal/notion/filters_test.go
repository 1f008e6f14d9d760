package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-chart-api/internal/model"
)

func schemaWith(props map[string]model.SchemaProperty) model.Database {
	return model.Database{ID: "db-1", Properties: props}
}

func TestSanitizeFiltersPassesEmpty(t *testing.T) {
	got, err := SanitizeFilters(nil, schemaWith(nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSanitizeFiltersUnknownProperty(t *testing.T) {
	_, err := SanitizeFilters(
		[]model.FilterCondition{{PropertyID: "missing", PropertyType: model.KindSelect}},
		schemaWith(map[string]model.SchemaProperty{}),
	)
	assert.ErrorContains(t, err, "missing")
}

func TestSanitizeFiltersTypeMismatch(t *testing.T) {
	db := schemaWith(map[string]model.SchemaProperty{
		"status": {ID: "status", Name: "Status", Type: model.KindStatus},
	})
	_, err := SanitizeFilters(
		[]model.FilterCondition{{PropertyID: "status", PropertyType: model.KindSelect}},
		db,
	)
	assert.ErrorContains(t, err, "type mismatch")
}

func TestSanitizeFiltersRewritesStatusOptionID(t *testing.T) {
	db := schemaWith(map[string]model.SchemaProperty{
		"status": {
			ID: "status", Name: "Status", Type: model.KindStatus,
			Status: &model.OptionList{Options: []model.PropertyOption{
				{ID: "opt-1", Name: "In Progress"},
				{ID: "opt-2", Name: "Done"},
			}},
		},
	})
	in := []model.FilterCondition{{
		PropertyID:   "status",
		PropertyType: model.KindStatus,
		Operator:     "equals",
		Value:        "opt-2",
	}}

	got, err := SanitizeFilters(in, db)
	require.NoError(t, err)
	assert.Equal(t, "Done", got[0].Value)
	assert.Equal(t, "opt-2", in[0].Value, "input conditions are not modified")
}

func TestSanitizeFiltersKeepsUnknownStatusValue(t *testing.T) {
	db := schemaWith(map[string]model.SchemaProperty{
		"status": {
			ID: "status", Name: "Status", Type: model.KindStatus,
			Status: &model.OptionList{Options: []model.PropertyOption{{ID: "opt-1", Name: "Todo"}}},
		},
	})
	got, err := SanitizeFilters([]model.FilterCondition{{
		PropertyID: "status", PropertyType: model.KindStatus, Operator: "equals", Value: "already-a-name",
	}}, db)
	require.NoError(t, err)
	assert.Equal(t, "already-a-name", got[0].Value)
}

func lowered(t *testing.T, filters ...model.FilterCondition) map[string]interface{} {
	t.Helper()
	raw, err := BuildFilter(filters)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestBuildFilterSingleCondition(t *testing.T) {
	doc := lowered(t, model.FilterCondition{
		PropertyID:   "priority",
		PropertyType: model.KindSelect,
		Operator:     "equals",
		Value:        "High",
	})
	assert.Equal(t, map[string]interface{}{
		"property": "priority",
		"select":   map[string]interface{}{"equals": "High"},
	}, doc)
}

func TestBuildFilterAndCombination(t *testing.T) {
	doc := lowered(t,
		model.FilterCondition{PropertyID: "done", PropertyType: model.KindCheckbox, Operator: "equals", Value: true},
		model.FilterCondition{PropertyID: "score", PropertyType: model.KindNumber, Operator: "greater_than", Value: 5.0},
	)
	and, ok := doc["and"].([]interface{})
	require.True(t, ok)
	require.Len(t, and, 2)
	assert.Equal(t, map[string]interface{}{
		"property": "score",
		"number":   map[string]interface{}{"greater_than": 5.0},
	}, and[1])
}

func TestBuildFilterEmptinessOperators(t *testing.T) {
	doc := lowered(t, model.FilterCondition{
		PropertyID:   "notes",
		PropertyType: model.KindRichText,
		Operator:     "is_empty",
	})
	assert.Equal(t, map[string]interface{}{
		"property":  "notes",
		"rich_text": map[string]interface{}{"is_empty": true},
	}, doc)
}

func TestBuildFilterDateKindsUseOwnPayloadKey(t *testing.T) {
	doc := lowered(t, model.FilterCondition{
		PropertyID:   "created",
		PropertyType: model.KindCreatedTime,
		Operator:     "after",
		Value:        "2024-01-01",
	})
	assert.Contains(t, doc, "created_time")
}

func TestBuildFilterRejectsUnsupported(t *testing.T) {
	_, err := BuildFilter([]model.FilterCondition{{
		PropertyID: "rel", PropertyType: model.KindRelation, Operator: "equals",
	}})
	assert.ErrorContains(t, err, "unsupported filter property type")

	_, err = BuildFilter([]model.FilterCondition{{
		PropertyID: "score", PropertyType: model.KindNumber, Operator: "contains",
	}})
	assert.ErrorContains(t, err, "unsupported operator")
}

func TestBuildFilterEmpty(t *testing.T) {
	raw, err := BuildFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
