package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notion-chart-api/internal/model"
)

func names(points []model.DataPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Name
	}
	return out
}

func TestSortPointsNumeric(t *testing.T) {
	in := []model.DataPoint{
		{Name: "10"}, {Name: "2"}, {Name: "5"}, {Name: "1"},
	}
	assert.Equal(t, []string{"1", "2", "5", "10"}, names(SortPoints(in, model.KindNumber, model.SortAsc)))
	assert.Equal(t, []string{"10", "5", "2", "1"}, names(SortPoints(in, model.KindNumber, model.SortDesc)))
}

func TestSortPointsNumericDecimalsAndNegatives(t *testing.T) {
	in := []model.DataPoint{{Name: "3.14"}, {Name: "-5"}, {Name: "1.5"}, {Name: "0"}}
	assert.Equal(t, []string{"-5", "0", "1.5", "3.14"}, names(SortPoints(in, model.KindNumber, model.SortAsc)))
}

// Mixed-type fallback: valid numerics first in numeric order, then the
// non-parseable keys ordered among themselves lexicographically.
func TestSortPointsNumericFallback(t *testing.T) {
	in := []model.DataPoint{{Name: "abc"}, {Name: "10"}, {Name: "xyz"}}
	assert.Equal(t, []string{"10", "abc", "xyz"}, names(SortPoints(in, model.KindNumber, model.SortAsc)))

	in = []model.DataPoint{{Name: "not-a-number"}, {Name: "5"}, {Name: "3"}, {Name: "invalid"}}
	assert.Equal(t, []string{"3", "5", "invalid", "not-a-number"},
		names(SortPoints(in, model.KindNumber, model.SortAsc)))
}

func TestSortPointsDateKinds(t *testing.T) {
	in := []model.DataPoint{
		{Name: "2024-03-15"}, {Name: "2024-01-10"}, {Name: "2024-02-20"}, {Name: "2024-01-01"},
	}
	wantAsc := []string{"2024-01-01", "2024-01-10", "2024-02-20", "2024-03-15"}

	for _, kind := range []model.PropertyKind{model.KindDate, model.KindCreatedTime, model.KindLastEditedTime} {
		assert.Equal(t, wantAsc, names(SortPoints(in, kind, model.SortAsc)), "kind %s", kind)
	}

	assert.Equal(t,
		[]string{"2024-03-15", "2024-02-20", "2024-01-10", "2024-01-01"},
		names(SortPoints(in, model.KindDate, model.SortDesc)))
}

func TestSortPointsDateFallback(t *testing.T) {
	in := []model.DataPoint{{Name: "2024-01-10"}, {Name: "nonsense--"}, {Name: "2024-01-01"}}
	got := names(SortPoints(in, model.KindDate, model.SortAsc))
	assert.Equal(t, []string{"2024-01-01", "2024-01-10", "nonsense--"}, got)
}

func TestSortPointsText(t *testing.T) {
	in := []model.DataPoint{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}}
	got := names(SortPoints(in, model.KindSelect, model.SortAsc))
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, got, "collation is case-insensitive-ish, not byte order")
}

// Sorting is stable and never mutates its input: re-sorting a sorted series
// is a no-op, and the original slice keeps its order and contents.
func TestSortPointsStableAndNonMutating(t *testing.T) {
	original := []model.DataPoint{
		{Name: "b", Value: 1}, {Name: "a", Value: 2}, {Name: "c", Value: 3},
	}
	snapshot := make([]model.DataPoint, len(original))
	copy(snapshot, original)

	sorted := SortPoints(original, model.KindSelect, model.SortAsc)
	assert.Equal(t, snapshot, original, "input must not be mutated")

	again := SortPoints(sorted, model.KindSelect, model.SortAsc)
	assert.Equal(t, sorted, again, "sorting an already-sorted series changes nothing")

	// stability under equal keys, both directions
	ties := []model.DataPoint{
		{Name: "same", Value: 1}, {Name: "same", Value: 2}, {Name: "same", Value: 3},
	}
	assert.Equal(t, ties, SortPoints(ties, model.KindSelect, model.SortAsc))
	assert.Equal(t, ties, SortPoints(ties, model.KindSelect, model.SortDesc),
		"desc negates the comparator; ties keep their order")
}
