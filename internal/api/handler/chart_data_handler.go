package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"notion-chart-api/internal/chart"
	"notion-chart-api/internal/model"
	"notion-chart-api/internal/notion"
	"notion-chart-api/pkg/utils"
)

// chartQuery is a fully parsed chart request, shared between the ad-hoc
// chart-data endpoint and saved chart replay.
type chartQuery struct {
	DatabaseID   string
	XAxisFieldID string
	YAxisFieldID string
	Aggregation  model.Aggregation
	SortOrder    model.SortOrder
	Accumulate   bool
	Filters      []model.FilterCondition
	Series       []model.SeriesConfig
}

// requestError carries the response status for a failed chart run.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(format string, args ...interface{}) *requestError {
	return &requestError{status: http.StatusBadRequest, message: fmt.Sprintf(format, args...)}
}

// GetChartData aggregates a database into chart points
// @Summary Get chart data
// @Description Query a database, group and aggregate its pages along the configured x-axis, and return ready-to-plot points
// @Tags charts
// @Produce json
// @Param database_id query string true "Database ID"
// @Param x_axis_field_id query string true "Property to group by"
// @Param y_axis_field_id query string false "Numeric property for sum and avg"
// @Param aggregation query string false "count, sum or avg (default count)"
// @Param sort_order query string false "asc or desc"
// @Param accumulate query bool false "Return running totals"
// @Param filters query string false "JSON array of filter conditions"
// @Param series query string false "JSON array of series configurations"
// @Success 200 {object} map[string]interface{} "Chart data"
// @Failure 400 {object} map[string]interface{} "Invalid configuration"
// @Failure 404 {object} map[string]interface{} "Database not found"
// @Failure 502 {object} map[string]interface{} "Upstream error"
// @Router /chart-data [get]
func GetChartData(w http.ResponseWriter, r *http.Request) {
	query, reqErr := parseChartQuery(r)
	if reqErr != nil {
		utils.WriteError(w, reqErr.status, reqErr.message)
		return
	}

	data, reqErr := runChart(r, query)
	if reqErr != nil {
		utils.WriteError(w, reqErr.status, reqErr.message)
		return
	}
	utils.WriteJSON(w, http.StatusOK, data)
}

func parseChartQuery(r *http.Request) (chartQuery, *requestError) {
	params := r.URL.Query()
	query := chartQuery{
		DatabaseID:   params.Get("database_id"),
		XAxisFieldID: params.Get("x_axis_field_id"),
		YAxisFieldID: params.Get("y_axis_field_id"),
		Aggregation:  model.Aggregation(params.Get("aggregation")),
		SortOrder:    model.SortOrder(params.Get("sort_order")),
		Accumulate:   utils.QueryBool(r, "accumulate"),
	}

	if raw := params.Get("filters"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &query.Filters); err != nil {
			return chartQuery{}, badRequest("Invalid filters parameter")
		}
	}
	if raw := params.Get("series"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &query.Series); err != nil {
			return chartQuery{}, badRequest("Invalid series parameter")
		}
		if len(query.Series) == 0 {
			return chartQuery{}, badRequest("series must be a non-empty array")
		}
	}
	return query, nil
}

// runChart validates the query against the database schema, fetches the
// matching pages and feeds them through the aggregation pipeline. Relation
// x-axes get their page ids swapped for page titles before the response.
func runChart(r *http.Request, query chartQuery) (interface{}, *requestError) {
	ctx := r.Context()

	if query.DatabaseID == "" {
		return nil, badRequest("database_id is required")
	}
	if query.XAxisFieldID == "" {
		return nil, badRequest("x_axis_field_id is required")
	}
	if query.Aggregation == "" {
		query.Aggregation = model.AggCount
	}
	if !query.Aggregation.Valid() {
		return nil, badRequest("Invalid aggregation: %s", query.Aggregation)
	}
	if query.SortOrder != "" && query.SortOrder != model.SortAsc && query.SortOrder != model.SortDesc {
		return nil, badRequest("Invalid sort_order: %s", query.SortOrder)
	}
	if len(query.Series) == 0 && query.Aggregation.NeedsYAxis() && query.YAxisFieldID == "" {
		return nil, badRequest("y_axis_field_id is required for %s", query.Aggregation)
	}
	for i, series := range query.Series {
		if err := validate.Struct(series); err != nil {
			return nil, badRequest("Invalid series %d: %v", i, err)
		}
		if series.Aggregation.NeedsYAxis() && series.YAxisFieldID == "" {
			return nil, badRequest("Series %d requires a y-axis field for %s", i, series.Aggregation)
		}
	}

	db, err := service.RetrieveDatabase(ctx, query.DatabaseID)
	if err != nil {
		log.WithError(err).WithField("database", query.DatabaseID).Error("schema fetch failed")
		return nil, &requestError{status: notionErrorStatus(err), message: "Failed to retrieve database"}
	}

	xProperty, ok := db.Properties[query.XAxisFieldID]
	if !ok {
		return nil, badRequest("x-axis property %s not found in database", query.XAxisFieldID)
	}

	if len(query.Series) == 0 && query.Aggregation.NeedsYAxis() {
		if reqErr := checkYAxisProperty(db, query.YAxisFieldID); reqErr != nil {
			return nil, reqErr
		}
	}
	for _, series := range query.Series {
		if series.Aggregation.NeedsYAxis() {
			if reqErr := checkYAxisProperty(db, series.YAxisFieldID); reqErr != nil {
				return nil, reqErr
			}
		}
	}

	sanitized, err := notion.SanitizeFilters(query.Filters, db)
	if err != nil {
		return nil, badRequest("%v", err)
	}
	filter, err := notion.BuildFilter(sanitized)
	if err != nil {
		return nil, badRequest("%v", err)
	}

	pages, err := service.QueryPages(ctx, query.DatabaseID, notion.PageQuery{
		Filter:           filter,
		FilterProperties: queriedProperties(query),
	})
	if err != nil {
		log.WithError(err).WithField("database", query.DatabaseID).Error("page query failed")
		return nil, &requestError{status: notionErrorStatus(err), message: "Failed to query database"}
	}

	if len(query.Series) > 0 {
		names := make([]string, len(query.Series))
		for i, series := range query.Series {
			if property, ok := db.Properties[series.YAxisFieldID]; ok {
				names[i] = property.Name
			}
		}
		data, err := chart.ProcessMultiSeries(pages, chart.MultiSeriesRequest{
			XAxisFieldID:        query.XAxisFieldID,
			XAxisKind:           xProperty.Type,
			Series:              query.Series,
			SeriesPropertyNames: names,
			SortOrder:           query.SortOrder,
			Accumulate:          query.Accumulate,
		})
		if err != nil {
			return nil, chartError(err)
		}
		if xProperty.Type == model.KindRelation {
			data = chart.EnrichRelationDataMultiSeries(ctx, data, service)
		}
		return data, nil
	}

	data, err := chart.Process(pages, chart.Request{
		XAxisFieldID: query.XAxisFieldID,
		XAxisKind:    xProperty.Type,
		Aggregation:  query.Aggregation,
		YAxisFieldID: query.YAxisFieldID,
		SortOrder:    query.SortOrder,
		Accumulate:   query.Accumulate,
	})
	if err != nil {
		return nil, chartError(err)
	}
	if xProperty.Type == model.KindRelation {
		data = chart.EnrichRelationData(ctx, data, service)
	}
	return data, nil
}

// checkYAxisProperty verifies a sum/avg operand source against the schema:
// the field must exist and be number-typed. Anything else is a configuration
// error that fails the whole request.
func checkYAxisProperty(db model.Database, fieldID string) *requestError {
	property, ok := db.Properties[fieldID]
	if !ok {
		return &requestError{
			status:  http.StatusNotFound,
			message: fmt.Sprintf("y-axis property %s not found in database", fieldID),
		}
	}
	if property.Type != model.KindNumber {
		return badRequest("y-axis property %s must be a number property, got %s", fieldID, property.Type)
	}
	return nil
}

// queriedProperties narrows the page query to the properties the pipeline
// reads: the x-axis field plus every configured y-axis field.
func queriedProperties(query chartQuery) []string {
	properties := []string{query.XAxisFieldID}
	seen := map[string]bool{query.XAxisFieldID: true}
	add := func(fieldID string) {
		if fieldID != "" && !seen[fieldID] {
			seen[fieldID] = true
			properties = append(properties, fieldID)
		}
	}
	if len(query.Series) > 0 {
		for _, series := range query.Series {
			add(series.YAxisFieldID)
		}
	} else {
		add(query.YAxisFieldID)
	}
	return properties
}

func chartError(err error) *requestError {
	if errors.Is(err, chart.ErrYAxisRequired) {
		return badRequest("%v", err)
	}
	return &requestError{status: http.StatusInternalServerError, message: "Failed to build chart"}
}
