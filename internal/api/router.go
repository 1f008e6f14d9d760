package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "notion-chart-api/docs"
	"notion-chart-api/internal/api/handler"
	"notion-chart-api/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	// Auth endpoints stay open so the dashboard can log in
	r.POST("/api/v1/auth/login", handler.Login)
	r.POST("/api/v1/auth/logout", handler.Logout)
	r.GET("/api/v1/auth/check", handler.CheckAuth)

	r.GET("/api/v1/databases", handler.RequireAuth(handler.ListDatabases))
	r.GET("/api/v1/databases/*/properties", handler.RequireAuth(handler.GetDatabaseProperties))

	r.GET("/api/v1/chart-data", handler.RequireAuth(handler.GetChartData))

	r.POST("/api/v1/charts", handler.RequireAuth(handler.CreateChart))
	r.GET("/api/v1/charts", handler.RequireAuth(handler.ListCharts))
	// More specific routes first
	r.GET("/api/v1/charts/*/data", handler.RequireAuth(handler.GetSavedChartData))
	// Generic chart routes last
	r.GET("/api/v1/charts/*", handler.RequireAuth(handler.GetChart))
	r.PUT("/api/v1/charts/*", handler.RequireAuth(handler.UpdateChart))
	r.DELETE("/api/v1/charts/*", handler.RequireAuth(handler.DeleteChart))

	r.Handle("/swagger/*", httpSwagger.WrapHandler)
}
