package chart

import (
	"time"

	"github.com/araddon/dateparse"

	"notion-chart-api/internal/model"
)

const dayFormat = "2006-01-02"

// FillMode selects the value inserted for missing days.
type FillMode int

const (
	// FillZero inserts 0 for every missing day.
	FillZero FillMode = iota
	// FillCarryForward reuses the most recent preceding value, defaulting to
	// 0 before the first observation.
	FillCarryForward
)

// NormalizeToDay parses a date-like string and truncates it to its UTC
// calendar day ("YYYY-MM-DD"). ok is false when s is empty or unparseable;
// records carrying such values are skipped by the engine.
func NormalizeToDay(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(dayFormat), true
}

// DaysInRange enumerates every calendar day from startDay to endDay,
// inclusive and ascending. The caller guarantees startDay <= endDay; equal
// bounds yield a single-element list. Unparseable bounds yield nil.
func DaysInRange(startDay, endDay string) []string {
	start, err := time.Parse(dayFormat, startDay)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dayFormat, endDay)
	if err != nil {
		return nil
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayFormat))
	}
	return days
}

// FillGaps inserts one entry for every missing day strictly between the
// first and last present key of a series already sorted by day. It never
// extrapolates beyond the observed range and preserves the series'
// direction, so a descending series stays descending. The input is not
// mutated.
func FillGaps(points []model.DataPoint, mode FillMode) []model.DataPoint {
	if len(points) == 0 {
		return points
	}
	first, last := points[0].Name, points[len(points)-1].Name
	if first <= last {
		return FillRange(points, first, last, mode)
	}
	return reversePoints(FillRange(points, last, first, mode))
}

// FillRange produces one entry per day of [startDay, endDay], taking present
// values from points and filling missing days per mode. An empty series
// yields an all-zero (or all carried, i.e. zero) range. This is the only
// stage whose output can be larger than its input.
func FillRange(points []model.DataPoint, startDay, endDay string, mode FillMode) []model.DataPoint {
	days := DaysInRange(startDay, endDay)
	if days == nil {
		return points
	}

	present := make(map[string]float64, len(points))
	for _, p := range points {
		present[p.Name] = p.Value
	}

	filled := make([]model.DataPoint, 0, len(days))
	carried := 0.0
	for _, day := range days {
		value, ok := present[day]
		if !ok {
			if mode == FillCarryForward {
				value = carried
			} else {
				value = 0
			}
		}
		carried = value
		filled = append(filled, model.DataPoint{Name: day, Value: value})
	}
	return filled
}

// reversePoints returns a reversed copy. Filled series hold distinct day
// keys, so reversing one is the same as sorting it descending.
func reversePoints(points []model.DataPoint) []model.DataPoint {
	reversed := make([]model.DataPoint, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}
