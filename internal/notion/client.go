package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"notion-chart-api/internal/model"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	defaultVersion = "2025-09-03"
	queryPageSize  = 100
)

// Client talks to the Notion REST API. It is the record source (paginated
// data source queries), the schema source, and the relation page resolver.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	version    string
	log        *logrus.Entry
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithVersion overrides the Notion-Version header.
func WithVersion(v string) Option {
	return func(c *Client) { c.version = v }
}

// NewClient builds a Client authenticated with the integration token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		version:    defaultVersion,
		log:        logrus.WithField("component", "notion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from Notion.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// do issues one API call, decoding the response into out when non-nil.
// Rate-limited calls are retried once after the advertised delay; retry
// policy beyond that belongs to callers.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	for attempt := 0; ; attempt++ {
		retryAfter, err := c.doOnce(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		apiErr, ok := err.(*APIError)
		if !ok || apiErr.StatusCode != http.StatusTooManyRequests || attempt > 0 {
			return err
		}
		c.log.WithField("path", path).WithField("retry_after", retryAfter).
			Warn("rate limited, retrying once")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryAfter):
		}
	}
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out interface{}) (time.Duration, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Message = resp.Status
		}
		apiErr.StatusCode = resp.StatusCode
		return retryAfterOf(resp), apiErr
	}

	if out == nil {
		return 0, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return 0, nil
}

func retryAfterOf(resp *http.Response) time.Duration {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Second
}

// SearchDatabases lists the data sources the integration can see.
func (c *Client) SearchDatabases(ctx context.Context) ([]model.Database, error) {
	body := map[string]interface{}{
		"filter": map[string]string{
			"property": "object",
			"value":    "data_source",
		},
	}
	var resp struct {
		Results []model.Database `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/search", body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// RetrieveDatabase fetches a data source's property schema.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (model.Database, error) {
	var db model.Database
	if err := c.do(ctx, http.MethodGet, "/data_sources/"+databaseID, nil, &db); err != nil {
		return model.Database{}, err
	}
	return db, nil
}

// PageQuery narrows a data source query: an optional lowered filter and an
// optional projection restricting which properties each page carries.
type PageQuery struct {
	Filter           json.RawMessage
	FilterProperties []string
}

// QueryPages fetches the complete set of pages matching q, following the
// cursor until the API reports no more results.
func (c *Client) QueryPages(ctx context.Context, databaseID string, q PageQuery) ([]model.Page, error) {
	path := "/data_sources/" + databaseID + "/query"

	var all []model.Page
	cursor := ""
	for {
		body := map[string]interface{}{"page_size": queryPageSize}
		if len(q.Filter) > 0 {
			body["filter"] = q.Filter
		}
		if len(q.FilterProperties) > 0 {
			body["filter_properties"] = q.FilterProperties
		}
		if cursor != "" {
			body["start_cursor"] = cursor
		}

		var resp struct {
			Results    []model.Page `json:"results"`
			HasMore    bool         `json:"has_more"`
			NextCursor string       `json:"next_cursor"`
		}
		if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return all, nil
}

// RetrievePage loads one page; it satisfies chart.PageResolver for relation
// enrichment.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (model.Page, error) {
	var page model.Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		return model.Page{}, err
	}
	return page, nil
}
