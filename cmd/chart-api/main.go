package main

import (
	"github.com/sirupsen/logrus"

	"notion-chart-api/internal/api"
	"notion-chart-api/internal/api/handler"
	"notion-chart-api/internal/config"
	"notion-chart-api/internal/notion"
	"notion-chart-api/internal/store"
	"notion-chart-api/pkg/router"
)

// @title Notion Chart API
// @version 1.0
// @description Aggregates Notion database pages into chart-ready data series.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	cfg.ConfigureLogging()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		logrus.WithError(err).Fatal("database init failed")
	}

	var opts []notion.Option
	if cfg.NotionVersion != "" {
		opts = append(opts, notion.WithVersion(cfg.NotionVersion))
	}
	handler.Init(notion.NewClient(cfg.NotionToken, opts...), cfg.APISecret)

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	r.Start(cfg.Addr)
}
