package model

import "time"

// SavedChart is a persisted chart configuration. The dashboard stores one per
// embedded chart; /charts/{id}/data replays it through the pipeline.
type SavedChart struct {
	ID           string            `json:"id"`
	Name         string            `json:"name" validate:"required"`
	DatabaseID   string            `json:"databaseId" validate:"required"`
	ChartType    string            `json:"chartType" validate:"required,oneof=line pie"`
	XAxisFieldID string            `json:"xAxisFieldId" validate:"required"`
	YAxisFieldID string            `json:"yAxisFieldId,omitempty"`
	Aggregation  Aggregation       `json:"aggregation" validate:"omitempty,oneof=count sum avg"`
	SortOrder    SortOrder         `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
	Accumulate   bool              `json:"accumulate"`
	Filters      []FilterCondition `json:"filters,omitempty"`
	Series       []SeriesConfig    `json:"series,omitempty" validate:"omitempty,dive"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
