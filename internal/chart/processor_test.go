package chart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-chart-api/internal/model"
)

func TestProcessCountWithDateGapFill(t *testing.T) {
	datePage := func(id, start string) model.Page {
		return model.Page{
			ID: id,
			Properties: map[string]model.PropertyValue{
				"when": {Type: model.KindDate, Date: &model.DateRange{Start: start}},
			},
		}
	}
	pages := []model.Page{
		datePage("1", "2024-01-15"),
		datePage("2", "2024-01-17"),
	}

	got, err := Process(pages, Request{
		XAxisFieldID: "when",
		XAxisKind:    model.KindDate,
		Aggregation:  model.AggCount,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.DataPoint{
		{Name: "2024-01-15", Value: 1},
		{Name: "2024-01-16", Value: 0},
		{Name: "2024-01-17", Value: 1},
	}, got.Data)
	assert.Equal(t, "Value", got.XAxisLabel)
	assert.Equal(t, "Count", got.YAxisLabel)
}

func TestProcessSortsBeforeAccumulating(t *testing.T) {
	pages := []model.Page{
		selectPageWithNumber("1", "2", 5),
		selectPageWithNumber("2", "1", 3),
		selectPageWithNumber("3", "3", 2),
	}

	got, err := Process(pages, Request{
		XAxisFieldID: "category",
		XAxisKind:    model.KindSelect,
		Aggregation:  model.AggSum,
		YAxisFieldID: "amount",
		Accumulate:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.DataPoint{
		{Name: "1", Value: 3},
		{Name: "2", Value: 8},
		{Name: "3", Value: 10},
	}, got.Data, "running totals follow the sorted order")
}

func TestProcessYAxisLabels(t *testing.T) {
	pages := []model.Page{selectPageWithNumber("1", "A", 1)}

	for agg, want := range map[model.Aggregation]string{
		model.AggCount: "Count",
		model.AggSum:   "Sum",
		model.AggAvg:   "Average",
	} {
		yField := ""
		if agg.NeedsYAxis() {
			yField = "amount"
		}
		got, err := Process(pages, Request{
			XAxisFieldID: "category",
			XAxisKind:    model.KindSelect,
			Aggregation:  agg,
			YAxisFieldID: yField,
		})
		require.NoError(t, err)
		assert.Equal(t, want, got.YAxisLabel)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	got, err := Process(nil, Request{
		XAxisFieldID: "category",
		XAxisKind:    model.KindSelect,
		Aggregation:  model.AggCount,
	})
	require.NoError(t, err)
	assert.Empty(t, got.Data)
}

func TestProcessConfigurationError(t *testing.T) {
	_, err := Process(nil, Request{
		XAxisFieldID: "category",
		XAxisKind:    model.KindSelect,
		Aggregation:  model.AggSum,
	})
	assert.ErrorIs(t, err, ErrYAxisRequired)
}

// --- relation enrichment ---

type fakeResolver struct {
	pages map[string]model.Page
	errs  map[string]error
	calls map[string]int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		pages: make(map[string]model.Page),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (f *fakeResolver) addTitled(id, title string) {
	f.pages[id] = model.Page{
		ID: id,
		Properties: map[string]model.PropertyValue{
			"Name": {Type: model.KindTitle, Title: []model.RichTextSegment{{PlainText: title}}},
		},
	}
}

func (f *fakeResolver) RetrievePage(_ context.Context, id string) (model.Page, error) {
	f.calls[id]++
	if err, ok := f.errs[id]; ok {
		return model.Page{}, err
	}
	page, ok := f.pages[id]
	if !ok {
		return model.Page{}, errors.New("not found")
	}
	return page, nil
}

func TestEnrichRelationDataReplacesIdsWithTitles(t *testing.T) {
	resolver := newFakeResolver()
	resolver.addTitled("page-1", "Project Alpha")
	resolver.addTitled("page-2", "Project Beta")

	data := model.ChartData{Data: []model.DataPoint{
		{Name: "page-1", Value: 3},
		{Name: "page-2", Value: 1},
	}}

	got := EnrichRelationData(context.Background(), data, resolver)
	assert.Equal(t, []model.DataPoint{
		{Name: "Project Alpha", Value: 3},
		{Name: "Project Beta", Value: 1},
	}, got.Data)

	// input untouched
	assert.Equal(t, "page-1", data.Data[0].Name)
}

// A page that cannot be loaded, or has no title property, keeps its raw id —
// enrichment failures never abort the chart.
func TestEnrichRelationDataKeepsIdOnFailure(t *testing.T) {
	resolver := newFakeResolver()
	resolver.addTitled("page-1", "Project Alpha")
	resolver.errs["page-2"] = errors.New("boom")
	resolver.pages["page-3"] = model.Page{ID: "page-3", Properties: map[string]model.PropertyValue{
		"Count": {Type: model.KindNumber, Number: floatPtr(1)},
	}}

	data := model.ChartData{Data: []model.DataPoint{
		{Name: "page-1", Value: 1},
		{Name: "page-2", Value: 2},
		{Name: "page-3", Value: 3},
	}}

	got := EnrichRelationData(context.Background(), data, resolver)
	assert.Equal(t, []string{"Project Alpha", "page-2", "page-3"}, names(got.Data))
}

// Each distinct id is fetched exactly once per request.
func TestResolveRelationTitlesDeduplicates(t *testing.T) {
	resolver := newFakeResolver()
	resolver.addTitled("page-1", "Alpha")

	titles := ResolveRelationTitles(context.Background(),
		[]string{"page-1", "page-1", "page-1"}, resolver)

	assert.Equal(t, map[string]string{"page-1": "Alpha"}, titles)
	assert.Equal(t, 1, resolver.calls["page-1"])
}

func TestResolveRelationTitlesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := newFakeResolver()
	resolver.addTitled("page-1", "Alpha")

	titles := ResolveRelationTitles(ctx, []string{"page-1"}, resolver)
	assert.Empty(t, titles, "pending lookups stop once the request is gone")
}

func TestEnrichRelationDataMultiSeries(t *testing.T) {
	resolver := newFakeResolver()
	resolver.addTitled("page-1", "Alpha")

	data := model.MultiSeriesChartData{
		Data: []model.MultiSeriesPoint{
			{Name: "page-1", Values: []float64{1, 2}},
			{Name: "page-9", Values: []float64{0, 4}},
		},
		SeriesLabels: []string{"Count", "Sum of X"},
	}

	got := EnrichRelationDataMultiSeries(context.Background(), data, resolver)
	assert.Equal(t, "Alpha", got.Data[0].Name)
	assert.Equal(t, "page-9", got.Data[1].Name)
	assert.Equal(t, []float64{1, 2}, got.Data[0].Values)
}
