package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"notion-chart-api/internal/model"
	"notion-chart-api/internal/store"
	"notion-chart-api/pkg/utils"
)

// CreateChart saves a new chart configuration
// @Summary Create chart
// @Description Persist a chart configuration for later replay
// @Tags charts
// @Accept json
// @Produce json
// @Param chart body model.SavedChart true "Chart configuration"
// @Success 201 {object} model.SavedChart "Saved chart"
// @Failure 400 {object} map[string]interface{} "Invalid configuration"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /charts [post]
func CreateChart(w http.ResponseWriter, r *http.Request) {
	var chart model.SavedChart
	if err := json.NewDecoder(r.Body).Decode(&chart); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if chart.Aggregation == "" {
		chart.Aggregation = model.AggCount
	}
	if err := validate.Struct(chart); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	chart.ID = uuid.New().String()
	if err := store.SaveChart(chart); err != nil {
		log.WithError(err).Error("chart save failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save chart")
		return
	}

	saved, err := store.GetChart(chart.ID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load saved chart")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, saved)
}

// ListCharts lists all saved charts
// @Summary List charts
// @Tags charts
// @Produce json
// @Success 200 {array} model.SavedChart "Saved charts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /charts [get]
func ListCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := store.ListCharts()
	if err != nil {
		log.WithError(err).Error("chart list failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to list charts")
		return
	}
	if charts == nil {
		charts = []model.SavedChart{}
	}
	utils.WriteJSON(w, http.StatusOK, charts)
}

// GetChart fetches one saved chart
// @Summary Get chart
// @Tags charts
// @Produce json
// @Param id path string true "Chart ID"
// @Success 200 {object} model.SavedChart "Saved chart"
// @Failure 400 {object} map[string]interface{} "Missing chart ID"
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Router /charts/{id} [get]
func GetChart(w http.ResponseWriter, r *http.Request) {
	chartID := pathID(r.URL.Path, "/api/v1/charts/", "")
	if chartID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Chart ID is required")
		return
	}

	chart, err := store.GetChart(chartID)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Chart not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load chart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, chart)
}

// UpdateChart replaces a saved chart's configuration
// @Summary Update chart
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID"
// @Param chart body model.SavedChart true "Chart configuration"
// @Success 200 {object} model.SavedChart "Updated chart"
// @Failure 400 {object} map[string]interface{} "Invalid configuration"
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Router /charts/{id} [put]
func UpdateChart(w http.ResponseWriter, r *http.Request) {
	chartID := pathID(r.URL.Path, "/api/v1/charts/", "")
	if chartID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Chart ID is required")
		return
	}

	var chart model.SavedChart
	if err := json.NewDecoder(r.Body).Decode(&chart); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	chart.ID = chartID
	if chart.Aggregation == "" {
		chart.Aggregation = model.AggCount
	}
	if err := validate.Struct(chart); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.UpdateChart(chart); errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Chart not found")
		return
	} else if err != nil {
		log.WithError(err).Error("chart update failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update chart")
		return
	}

	updated, err := store.GetChart(chartID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load updated chart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

// DeleteChart removes a saved chart
// @Summary Delete chart
// @Tags charts
// @Produce json
// @Param id path string true "Chart ID"
// @Success 200 {object} map[string]interface{} "Chart deleted"
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Router /charts/{id} [delete]
func DeleteChart(w http.ResponseWriter, r *http.Request) {
	chartID := pathID(r.URL.Path, "/api/v1/charts/", "")
	if chartID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Chart ID is required")
		return
	}

	if err := store.DeleteChart(chartID); errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Chart not found")
		return
	} else if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete chart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Chart deleted"})
}

// GetSavedChartData replays a saved chart through the pipeline
// @Summary Get saved chart data
// @Description Run the aggregation pipeline with a saved chart's configuration against live data
// @Tags charts
// @Produce json
// @Param id path string true "Chart ID"
// @Success 200 {object} map[string]interface{} "Chart data"
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Failure 502 {object} map[string]interface{} "Upstream error"
// @Router /charts/{id}/data [get]
func GetSavedChartData(w http.ResponseWriter, r *http.Request) {
	chartID := pathID(r.URL.Path, "/api/v1/charts/", "/data")
	if chartID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Chart ID is required")
		return
	}

	chart, err := store.GetChart(chartID)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Chart not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load chart")
		return
	}

	data, reqErr := runChart(r, chartQuery{
		DatabaseID:   chart.DatabaseID,
		XAxisFieldID: chart.XAxisFieldID,
		YAxisFieldID: chart.YAxisFieldID,
		Aggregation:  chart.Aggregation,
		SortOrder:    chart.SortOrder,
		Accumulate:   chart.Accumulate,
		Filters:      chart.Filters,
		Series:       chart.Series,
	})
	if reqErr != nil {
		utils.WriteError(w, reqErr.status, reqErr.message)
		return
	}
	utils.WriteJSON(w, http.StatusOK, data)
}
