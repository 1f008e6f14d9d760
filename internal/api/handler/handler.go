package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"notion-chart-api/internal/model"
	"notion-chart-api/internal/notion"
	"notion-chart-api/pkg/utils"
)

// NotionService is the slice of the Notion client the handlers use. Tests
// swap in a fake.
type NotionService interface {
	SearchDatabases(ctx context.Context) ([]model.Database, error)
	RetrieveDatabase(ctx context.Context, databaseID string) (model.Database, error)
	EnrichRelationOptions(ctx context.Context, db *model.Database)
	QueryPages(ctx context.Context, databaseID string, q notion.PageQuery) ([]model.Page, error)
	RetrievePage(ctx context.Context, pageID string) (model.Page, error)
}

var (
	service   NotionService
	apiSecret string
	validate  = validator.New()
	log       = logrus.WithField("component", "api")
)

// Init wires the handlers to the Notion service and the shared secret.
func Init(s NotionService, secret string) {
	service = s
	apiSecret = secret
}

// authorized accepts either the session cookie or a bearer token carrying
// the shared secret.
func authorized(r *http.Request) bool {
	if apiSecret == "" {
		return false
	}
	if cookie, err := r.Cookie(authCookieName); err == nil && cookie.Value == apiSecret {
		return true
	}
	header := r.Header.Get("Authorization")
	return strings.HasPrefix(header, "Bearer ") && strings.TrimPrefix(header, "Bearer ") == apiSecret
}

// RequireAuth guards a route behind the shared secret.
func RequireAuth(next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}

// pathID extracts the wildcard segment between prefix and suffix, the way
// routes like /api/v1/charts/{id}/data are registered.
func pathID(path, prefix, suffix string) string {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(prefix) : len(path)-len(suffix)]
}

// notionErrorStatus maps an upstream Notion failure onto our response
// status: not-found passes through, everything else is a bad gateway.
func notionErrorStatus(err error) int {
	if apiErr, ok := err.(*notion.APIError); ok && apiErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
