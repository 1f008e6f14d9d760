package chart

import "notion-chart-api/internal/model"

// Accumulate turns a per-bucket series into a running-total series over the
// given order. It must run strictly after the final ordering (and, for
// multi-series charts, after gap filling) — accumulating an unsorted series
// produces meaningless totals. Returns a new slice.
func Accumulate(points []model.DataPoint) []model.DataPoint {
	accumulated := make([]model.DataPoint, len(points))
	running := 0.0
	for i, p := range points {
		running += p.Value
		accumulated[i] = model.DataPoint{Name: p.Name, Value: running}
	}
	return accumulated
}
