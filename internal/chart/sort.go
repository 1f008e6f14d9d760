package chart

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"notion-chart-api/internal/model"
)

// SortPoints orders points by group key with the comparator the x-axis kind
// calls for: numeric for number, chronological for date-like kinds, collated
// text otherwise. Keys that fail to parse fall back to the text comparator,
// so valid numerics/dates order among themselves and precede the rest in
// ascending mode. The sort is stable and the input slice is left untouched;
// desc negates the comparator rather than reversing afterwards, so ties keep
// their relative order either way.
func SortPoints(points []model.DataPoint, kind model.PropertyKind, order model.SortOrder) []model.DataPoint {
	sorted := make([]model.DataPoint, len(points))
	copy(sorted, points)

	cmp := comparatorFor(kind)
	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i].Name, sorted[j].Name)
		if order == model.SortDesc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func comparatorFor(kind model.PropertyKind) func(a, b string) int {
	text := textComparator()
	switch {
	case kind.IsNumeric():
		return numberComparator(text)
	case kind.IsDateLike():
		return dateComparator(text)
	default:
		return text
	}
}

func numberComparator(fallback func(a, b string) int) func(a, b string) int {
	return func(a, b string) int {
		numA, errA := decimal.NewFromString(a)
		numB, errB := decimal.NewFromString(b)
		if errA != nil || errB != nil {
			return fallback(a, b)
		}
		return numA.Cmp(numB)
	}
}

func dateComparator(fallback func(a, b string) int) func(a, b string) int {
	return func(a, b string) int {
		timeA, errA := dateparse.ParseIn(a, time.UTC)
		timeB, errB := dateparse.ParseIn(b, time.UTC)
		if errA != nil || errB != nil {
			return fallback(a, b)
		}
		switch {
		case timeA.Before(timeB):
			return -1
		case timeA.After(timeB):
			return 1
		default:
			return 0
		}
	}
}

// textComparator returns a locale-aware string comparator. A fresh collator
// is built per sort because collators keep internal buffers.
func textComparator() func(a, b string) int {
	c := collate.New(language.English)
	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}
