package handler

import (
	"net/http"

	"notion-chart-api/internal/notion"
	"notion-chart-api/pkg/utils"
)

// ListDatabases lists the databases visible to the integration
// @Summary List databases
// @Description List the Notion databases the integration token can read
// @Tags databases
// @Produce json
// @Success 200 {array} map[string]interface{} "Databases"
// @Failure 502 {object} map[string]interface{} "Upstream error"
// @Router /databases [get]
func ListDatabases(w http.ResponseWriter, r *http.Request) {
	databases, err := service.SearchDatabases(r.Context())
	if err != nil {
		log.WithError(err).Error("database search failed")
		utils.WriteError(w, notionErrorStatus(err), "Failed to list databases")
		return
	}

	summaries := make([]map[string]interface{}, 0, len(databases))
	for _, db := range databases {
		summaries = append(summaries, map[string]interface{}{
			"id":    db.ID,
			"title": db.TitleText(),
			"url":   db.URL,
		})
	}
	utils.WriteJSON(w, http.StatusOK, summaries)
}

// GetDatabaseProperties returns a database's chartable schema
// @Summary Get database properties
// @Description Retrieve the property schema of one database, with option lists for select, status and relation properties
// @Tags databases
// @Produce json
// @Param id path string true "Database ID"
// @Success 200 {object} map[string]interface{} "Database schema"
// @Failure 400 {object} map[string]interface{} "Missing database ID"
// @Failure 404 {object} map[string]interface{} "Database not found"
// @Router /databases/{id}/properties [get]
func GetDatabaseProperties(w http.ResponseWriter, r *http.Request) {
	databaseID := pathID(r.URL.Path, "/api/v1/databases/", "/properties")
	if databaseID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Database ID is required")
		return
	}

	db, err := service.RetrieveDatabase(r.Context(), databaseID)
	if err != nil {
		log.WithError(err).WithField("database", databaseID).Error("schema fetch failed")
		utils.WriteError(w, notionErrorStatus(err), "Failed to retrieve database")
		return
	}

	service.EnrichRelationOptions(r.Context(), &db)
	utils.WriteJSON(w, http.StatusOK, notion.ParseDatabase(db))
}
