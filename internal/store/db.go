package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"notion-chart-api/internal/model"
)

var db *sql.DB

// ErrNotFound is returned when no chart has the requested id.
var ErrNotFound = errors.New("chart not found")

// Initialize DB connection
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	chartTable := `
	CREATE TABLE IF NOT EXISTS charts (
		id TEXT PRIMARY KEY,
		name TEXT,
		config TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`

	if _, err := db.Exec(chartTable); err != nil {
		return err
	}

	return nil
}

// SaveChart stores a new chart configuration.
func SaveChart(chart model.SavedChart) error {
	configJSON, err := json.Marshal(chart)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO charts (id, name, config, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		chart.ID, chart.Name, configJSON, now, now)
	return err
}

// UpdateChart replaces the stored configuration for an existing chart.
func UpdateChart(chart model.SavedChart) error {
	configJSON, err := json.Marshal(chart)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := db.Exec(`UPDATE charts SET name = ?, config = ?, updated_at = ? WHERE id = ?`,
		chart.Name, configJSON, now, chart.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCharts returns all saved charts, newest first.
func ListCharts() ([]model.SavedChart, error) {
	rows, err := db.Query(`SELECT config, created_at, updated_at FROM charts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charts []model.SavedChart
	for rows.Next() {
		var configJSON string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&configJSON, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		var chart model.SavedChart
		if err := json.Unmarshal([]byte(configJSON), &chart); err != nil {
			return nil, err
		}
		chart.CreatedAt = createdAt
		chart.UpdatedAt = updatedAt
		charts = append(charts, chart)
	}
	return charts, rows.Err()
}

// GetChart fetches one chart configuration by id.
func GetChart(chartID string) (model.SavedChart, error) {
	var configJSON string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT config, created_at, updated_at FROM charts WHERE id = ?`, chartID).
		Scan(&configJSON, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.SavedChart{}, ErrNotFound
	}
	if err != nil {
		return model.SavedChart{}, err
	}

	var chart model.SavedChart
	if err := json.Unmarshal([]byte(configJSON), &chart); err != nil {
		return model.SavedChart{}, err
	}
	chart.CreatedAt = createdAt
	chart.UpdatedAt = updatedAt
	return chart, nil
}

// DeleteChart removes a chart configuration.
func DeleteChart(chartID string) error {
	res, err := db.Exec(`DELETE FROM charts WHERE id = ?`, chartID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
