package model

import (
	"encoding/json"
	"fmt"
)

// Aggregation is how a group's collected values are reduced.
type Aggregation string

const (
	AggCount Aggregation = "count"
	AggSum   Aggregation = "sum"
	AggAvg   Aggregation = "avg"
)

// Valid reports whether a is a supported aggregation.
func (a Aggregation) Valid() bool {
	return a == AggCount || a == AggSum || a == AggAvg
}

// NeedsYAxis reports whether the aggregation requires a numeric y-axis field.
func (a Aggregation) NeedsYAxis() bool {
	return a == AggSum || a == AggAvg
}

// SortOrder is the direction group keys are ordered in.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is a supported sort order.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// DataPoint is one bucket of a single-series chart.
type DataPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartData is the finished single-series result.
type ChartData struct {
	Data       []DataPoint `json:"data"`
	XAxisLabel string      `json:"xAxisLabel,omitempty"`
	YAxisLabel string      `json:"yAxisLabel,omitempty"`
}

// MultiSeriesPoint is one x-axis bucket across every configured series.
// Values[i] belongs to series i; buckets a series lacks hold 0.
type MultiSeriesPoint struct {
	Name   string
	Values []float64
}

// MarshalJSON renders the point in the wire shape the chart components
// expect: {"name": ..., "series_0": v0, "series_1": v1, ...}.
func (p MultiSeriesPoint) MarshalJSON() ([]byte, error) {
	row := make(map[string]interface{}, len(p.Values)+1)
	row["name"] = p.Name
	for i, v := range p.Values {
		row[fmt.Sprintf("series_%d", i)] = v
	}
	return json.Marshal(row)
}

// UnmarshalJSON parses the wire shape back into Name/Values.
func (p *MultiSeriesPoint) UnmarshalJSON(data []byte) error {
	var row map[string]json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	if name, ok := row["name"]; ok {
		if err := json.Unmarshal(name, &p.Name); err != nil {
			return err
		}
	}
	p.Values = nil
	for i := 0; ; i++ {
		raw, ok := row[fmt.Sprintf("series_%d", i)]
		if !ok {
			break
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		p.Values = append(p.Values, v)
	}
	return nil
}

// MultiSeriesChartData is the finished multi-series result.
type MultiSeriesChartData struct {
	Data         []MultiSeriesPoint `json:"data"`
	SeriesLabels []string           `json:"seriesLabels"`
	XAxisLabel   string             `json:"xAxisLabel,omitempty"`
}

// SeriesConfig is one {aggregation, y-axis field} pair of a multi-series
// chart. YAxisFieldID is required for sum and avg, ignored for count.
type SeriesConfig struct {
	Aggregation  Aggregation `json:"aggregation" validate:"required,oneof=count sum avg"`
	YAxisFieldID string      `json:"yAxisFieldId,omitempty"`
}

// FilterCondition is one pre-aggregation filter on a database property.
type FilterCondition struct {
	PropertyID   string       `json:"propertyId"`
	PropertyType PropertyKind `json:"propertyType"`
	Operator     string       `json:"operator"`
	Value        interface{}  `json:"value,omitempty"`
}
