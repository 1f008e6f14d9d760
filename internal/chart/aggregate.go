package chart

import (
	"errors"
	"fmt"

	"notion-chart-api/internal/model"
)

// ErrYAxisRequired is returned when sum or avg is requested without a y-axis
// field. It marks a configuration error, not a data error: it fires before
// any record is looked at, including on an empty record set.
var ErrYAxisRequired = errors.New("y axis field is required")

// Aggregate groups pages by their extracted x-axis key and reduces each
// group with the requested aggregation.
//
// Records that yield no group key, whose date key does not parse, or (for
// sum/avg) whose operand is missing or non-numeric are skipped silently —
// they contribute to no group rather than contributing zero. Group order is
// first-encountered; SortPoints imposes the final order.
func Aggregate(
	pages []model.Page,
	xAxisFieldID string,
	xAxisKind model.PropertyKind,
	aggregation model.Aggregation,
	yAxisFieldID string,
) ([]model.DataPoint, error) {
	if aggregation.NeedsYAxis() && yAxisFieldID == "" {
		return nil, fmt.Errorf("%w for aggregation type: %s", ErrYAxisRequired, aggregation)
	}

	grouped := make(map[string][]float64)
	var order []string
	add := func(key string, v float64) {
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], v)
	}

	isDateAxis := xAxisKind.IsDateLike()

	for _, page := range pages {
		property, ok := page.Properties[xAxisFieldID]
		if !ok {
			continue
		}

		keys := GroupKeys(property)
		if len(keys) == 0 {
			continue
		}

		if isDateAxis {
			normalized := keys[:0:0]
			for _, key := range keys {
				day, ok := NormalizeToDay(key)
				if !ok {
					continue
				}
				normalized = append(normalized, day)
			}
			keys = normalized
		}

		if aggregation == model.AggCount {
			for _, key := range keys {
				add(key, 1)
			}
			continue
		}

		yProperty, ok := page.Properties[yAxisFieldID]
		if !ok {
			continue
		}
		operand, ok := NumericOperand(yProperty)
		if !ok {
			continue
		}
		for _, key := range keys {
			add(key, operand)
		}
	}

	points := make([]model.DataPoint, 0, len(order))
	for _, key := range order {
		points = append(points, model.DataPoint{
			Name:  key,
			Value: reduce(grouped[key], aggregation),
		})
	}
	return points, nil
}

func reduce(values []float64, aggregation model.Aggregation) float64 {
	switch aggregation {
	case model.AggCount:
		return float64(len(values))
	case model.AggSum:
		return sum(values)
	default: // avg; groups are never empty, every key was added with a value
		return sum(values) / float64(len(values))
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
