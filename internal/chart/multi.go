package chart

import (
	"notion-chart-api/internal/model"
)

// MergeSeries runs the aggregation once per configured series and merges the
// results onto one shared x-axis.
//
// Every series is aggregated and sorted independently. For date-like axes
// the global min/max day across all non-empty series is computed and every
// series — including individually empty ones — is filled to that shared
// range, so each merged row carries a value for each series. Accumulation,
// when requested, runs per series before the merge so each running total is
// independent. Row order follows first-encountered-key order across series
// in config order; keys unique to later series are appended at their first
// occurrence, not re-sorted globally.
//
// seriesPropertyNames holds the display name of each series' y-axis property
// ("" when unknown) and only feeds the labels.
func MergeSeries(
	pages []model.Page,
	xAxisFieldID string,
	xAxisKind model.PropertyKind,
	configs []model.SeriesConfig,
	seriesPropertyNames []string,
	sortOrder model.SortOrder,
	accumulate bool,
) (model.MultiSeriesChartData, error) {
	allSeries := make([][]model.DataPoint, 0, len(configs))
	for _, config := range configs {
		points, err := Aggregate(pages, xAxisFieldID, xAxisKind, config.Aggregation, config.YAxisFieldID)
		if err != nil {
			return model.MultiSeriesChartData{}, err
		}
		allSeries = append(allSeries, SortPoints(points, xAxisKind, sortOrder))
	}

	if xAxisKind.IsDateLike() {
		if globalMin, globalMax, ok := globalDayRange(allSeries); ok {
			for i := range allSeries {
				filled := FillRange(allSeries[i], globalMin, globalMax, FillZero)
				if sortOrder == model.SortDesc {
					filled = reversePoints(filled)
				}
				allSeries[i] = filled
			}
		}
	}

	if accumulate {
		for i := range allSeries {
			allSeries[i] = Accumulate(allSeries[i])
		}
	}

	labels := make([]string, len(configs))
	for i, config := range configs {
		name := ""
		if i < len(seriesPropertyNames) {
			name = seriesPropertyNames[i]
		}
		labels[i] = SeriesLabel(config.Aggregation, name)
	}

	return model.MultiSeriesChartData{
		Data:         mergeRows(allSeries),
		SeriesLabels: labels,
		XAxisLabel:   "Value",
	}, nil
}

// globalDayRange returns the smallest and largest day key across all
// non-empty series. Each series is already sorted, so its bounds are its
// first and last entries; day keys compare correctly as strings.
func globalDayRange(allSeries [][]model.DataPoint) (min, max string, ok bool) {
	for _, series := range allSeries {
		if len(series) == 0 {
			continue
		}
		first, last := series[0].Name, series[len(series)-1].Name
		if first > last {
			first, last = last, first // descending sort order
		}
		if !ok || first < min {
			min = first
		}
		if !ok || last > max {
			max = last
		}
		ok = true
	}
	return min, max, ok
}

func mergeRows(allSeries [][]model.DataPoint) []model.MultiSeriesPoint {
	var names []string
	seen := make(map[string]bool)
	for _, series := range allSeries {
		for _, point := range series {
			if !seen[point.Name] {
				seen[point.Name] = true
				names = append(names, point.Name)
			}
		}
	}

	lookups := make([]map[string]float64, len(allSeries))
	for i, series := range allSeries {
		lookups[i] = make(map[string]float64, len(series))
		for _, point := range series {
			lookups[i][point.Name] = point.Value
		}
	}

	rows := make([]model.MultiSeriesPoint, 0, len(names))
	for _, name := range names {
		values := make([]float64, len(allSeries))
		for i := range allSeries {
			values[i] = lookups[i][name] // zero when the series lacks the key
		}
		rows = append(rows, model.MultiSeriesPoint{Name: name, Values: values})
	}
	return rows
}

// SeriesLabel builds the legend label for one series: "Count" for count,
// otherwise "Sum of <property>" / "Average of <property>", falling back to
// the bare aggregation word when the property name is unknown.
func SeriesLabel(aggregation model.Aggregation, propertyName string) string {
	if aggregation == model.AggCount {
		return "Count"
	}
	prefix := "Sum"
	if aggregation == model.AggAvg {
		prefix = "Average"
	}
	if propertyName == "" {
		return prefix
	}
	return prefix + " of " + propertyName
}
