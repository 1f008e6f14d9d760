package chart

import (
	"notion-chart-api/internal/model"
)

// Request carries the already-parsed parameters of a single-series chart.
type Request struct {
	XAxisFieldID string
	XAxisKind    model.PropertyKind
	Aggregation  model.Aggregation
	YAxisFieldID string
	SortOrder    model.SortOrder
	Accumulate   bool
}

// MultiSeriesRequest carries the parameters of a multi-series chart.
// SeriesPropertyNames mirrors Series and only feeds the legend labels.
type MultiSeriesRequest struct {
	XAxisFieldID        string
	XAxisKind           model.PropertyKind
	Series              []model.SeriesConfig
	SeriesPropertyNames []string
	SortOrder           model.SortOrder
	Accumulate          bool
}

// Process runs the single-series pipeline: aggregate, sort, gap-fill
// date-like axes, then accumulate if requested. Pages are never mutated and
// every stage returns a fresh collection.
func Process(pages []model.Page, req Request) (model.ChartData, error) {
	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = model.SortAsc
	}

	points, err := Aggregate(pages, req.XAxisFieldID, req.XAxisKind, req.Aggregation, req.YAxisFieldID)
	if err != nil {
		return model.ChartData{}, err
	}

	points = SortPoints(points, req.XAxisKind, sortOrder)
	if req.XAxisKind.IsDateLike() && len(points) > 0 {
		points = FillGaps(points, FillZero)
	}
	if req.Accumulate {
		points = Accumulate(points)
	}

	return model.ChartData{
		Data:       points,
		XAxisLabel: "Value",
		YAxisLabel: yAxisLabel(req.Aggregation),
	}, nil
}

// ProcessMultiSeries runs the multi-series pipeline. Gap filling and
// accumulation happen inside MergeSeries so each series is aligned and
// totalled independently before the merge.
func ProcessMultiSeries(pages []model.Page, req MultiSeriesRequest) (model.MultiSeriesChartData, error) {
	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = model.SortAsc
	}
	return MergeSeries(
		pages,
		req.XAxisFieldID,
		req.XAxisKind,
		req.Series,
		req.SeriesPropertyNames,
		sortOrder,
		req.Accumulate,
	)
}

func yAxisLabel(aggregation model.Aggregation) string {
	switch aggregation {
	case model.AggSum:
		return "Sum"
	case model.AggAvg:
		return "Average"
	default:
		return "Count"
	}
}
