package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-chart-api/internal/model"
)

func selectPage(id, option string) model.Page {
	return model.Page{
		ID: id,
		Properties: map[string]model.PropertyValue{
			"category": {Type: model.KindSelect, Select: &model.SelectOption{Name: option}},
		},
	}
}

func selectPageWithNumber(id, option string, amount float64) model.Page {
	page := selectPage(id, option)
	page.Properties["amount"] = model.PropertyValue{Type: model.KindNumber, Number: &amount}
	return page
}

func pointMap(points []model.DataPoint) map[string]float64 {
	out := make(map[string]float64, len(points))
	for _, p := range points {
		out[p.Name] = p.Value
	}
	return out
}

func TestAggregateCount(t *testing.T) {
	pages := []model.Page{
		selectPage("1", "A"),
		selectPage("2", "B"),
		selectPage("3", "A"),
	}

	points, err := Aggregate(pages, "category", model.KindSelect, model.AggCount, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 2, "B": 1}, pointMap(points))
}

func TestAggregateSumAndAvg(t *testing.T) {
	pages := []model.Page{
		selectPageWithNumber("1", "A", 10),
		selectPageWithNumber("2", "A", 20),
		selectPageWithNumber("3", "B", 5),
	}

	sums, err := Aggregate(pages, "category", model.KindSelect, model.AggSum, "amount")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 30, "B": 5}, pointMap(sums))

	avgs, err := Aggregate(pages, "category", model.KindSelect, model.AggAvg, "amount")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 15, "B": 5}, pointMap(avgs))
}

// A missing y-axis field is a configuration error, not a per-record skip,
// and it fires regardless of how many records there are.
func TestAggregateMissingYAxisIsConfigurationError(t *testing.T) {
	pages := []model.Page{selectPage("1", "A")}

	for _, agg := range []model.Aggregation{model.AggSum, model.AggAvg} {
		_, err := Aggregate(pages, "category", model.KindSelect, agg, "")
		assert.ErrorIs(t, err, ErrYAxisRequired, "aggregation %s", agg)

		_, err = Aggregate(nil, "category", model.KindSelect, agg, "")
		assert.ErrorIs(t, err, ErrYAxisRequired, "aggregation %s on the empty set", agg)
	}
}

// Records with a missing or non-numeric operand vanish from the group's
// value list; they do not contribute zero and do not drag the average down.
func TestAggregateSkipsRecordsWithoutOperand(t *testing.T) {
	pages := []model.Page{
		selectPageWithNumber("1", "A", 10),
		selectPage("2", "A"), // no amount property at all
		{
			ID: "3",
			Properties: map[string]model.PropertyValue{
				"category": {Type: model.KindSelect, Select: &model.SelectOption{Name: "A"}},
				"amount":   {Type: model.KindNumber}, // null number payload
			},
		},
	}

	avgs, err := Aggregate(pages, "category", model.KindSelect, model.AggAvg, "amount")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 10}, pointMap(avgs))
}

func TestAggregateSkipsRecordsWithoutGroupKey(t *testing.T) {
	pages := []model.Page{
		selectPage("1", "A"),
		{ID: "2", Properties: map[string]model.PropertyValue{}},                                  // property missing
		{ID: "3", Properties: map[string]model.PropertyValue{"category": {Type: model.KindSelect}}}, // null select
	}

	points, err := Aggregate(pages, "category", model.KindSelect, model.AggCount, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 1}, pointMap(points))
}

func TestAggregateNormalizesDateKeysAndSkipsUnparseable(t *testing.T) {
	datePage := func(id, start string) model.Page {
		return model.Page{
			ID: id,
			Properties: map[string]model.PropertyValue{
				"when": {Type: model.KindDate, Date: &model.DateRange{Start: start}},
			},
		}
	}
	pages := []model.Page{
		datePage("1", "2024-01-15T10:00:00.000Z"),
		datePage("2", "2024-01-15T22:30:00.000Z"),
		datePage("3", "totally-not-a-date"),
	}

	points, err := Aggregate(pages, "when", model.KindDate, model.AggCount, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-15": 2}, pointMap(points))
}

func TestAggregateMultiSelectFansOut(t *testing.T) {
	tagPage := func(id string, tags ...string) model.Page {
		options := make([]model.SelectOption, len(tags))
		for i, tag := range tags {
			options[i] = model.SelectOption{Name: tag}
		}
		return model.Page{
			ID: id,
			Properties: map[string]model.PropertyValue{
				"tags": {Type: model.KindMultiSelect, MultiSelect: options},
			},
		}
	}
	pages := []model.Page{
		tagPage("1", "go", "sql"),
		tagPage("2", "go"),
		tagPage("3"),
	}

	points, err := Aggregate(pages, "tags", model.KindMultiSelect, model.AggCount, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"go": 2, "sql": 1}, pointMap(points))
}

// Zero records is a valid, empty result for every aggregation — never an
// error once the configuration itself is sound.
func TestAggregateEmptyInput(t *testing.T) {
	for _, agg := range []model.Aggregation{model.AggCount, model.AggSum, model.AggAvg} {
		yField := ""
		if agg.NeedsYAxis() {
			yField = "amount"
		}
		points, err := Aggregate(nil, "category", model.KindSelect, agg, yField)
		require.NoError(t, err, "aggregation %s", agg)
		assert.Empty(t, points)
	}
}

// The input pages are never mutated by aggregation.
func TestAggregateDoesNotMutatePages(t *testing.T) {
	page := selectPageWithNumber("1", "A", 10)
	snapshotCategory := *page.Properties["category"].Select
	snapshotAmount := *page.Properties["amount"].Number

	_, err := Aggregate([]model.Page{page}, "category", model.KindSelect, model.AggSum, "amount")
	require.NoError(t, err)

	assert.Equal(t, snapshotCategory, *page.Properties["category"].Select)
	assert.Equal(t, snapshotAmount, *page.Properties["amount"].Number)
}
