package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  map[string]bool        // track registered paths
	log    *logrus.Entry
}

func New() *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
		log:    logrus.WithField("component", "router"),
	}

	// Catch-all handler for unknown paths
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		key := req.Method + ":" + req.URL.Path
		if h, ok := r.routes[key]; ok {
			h(lrw, req)
		} else {
			// Try to find a wildcard route, preferring the most specific
			// pattern when several match
			found := false
			best := ""
			for routePath := range r.paths {
				if !strings.Contains(routePath, "/*") {
					continue
				}
				if !matchWildcardRoute(req.URL.Path, routePath) {
					continue
				}
				if _, ok := r.routes[req.Method+":"+routePath]; !ok {
					continue
				}
				if best == "" || moreSpecific(routePath, best) {
					best = routePath
				}
			}
			if best != "" {
				r.routes[req.Method+":"+best](lrw, req)
				found = true
			}

			if !found {
				if _, pathExists := r.paths[req.URL.Path]; pathExists {
					// Path exists but method not allowed
					writeJSONError(lrw, http.StatusMethodNotAllowed, "Method Not Allowed")
				} else {
					writeJSONError(lrw, http.StatusNotFound, "Not Found")
				}
			}
		}

		r.log.WithFields(logrus.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   lrw.statusCode,
			"duration": time.Since(start).String(),
		}).Info("request")
	})

	return r
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// moreSpecific ranks patterns: more segments win, then fewer wildcards,
// then lexicographic order so resolution is stable.
func moreSpecific(a, b string) bool {
	aSegs := strings.Split(strings.Trim(a, "/"), "/")
	bSegs := strings.Split(strings.Trim(b, "/"), "/")
	if len(aSegs) != len(bSegs) {
		return len(aSegs) > len(bSegs)
	}
	aWild, bWild := strings.Count(a, "*"), strings.Count(b, "*")
	if aWild != bWild {
		return aWild < bWild
	}
	return a < b
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// A trailing "*" matches any number of remaining segments
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}

	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			// Wildcard matches any segment
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}

	return true
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	r.routes[key] = handler
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Handle registers an http.Handler for all methods on a path, e.g. a
// documentation UI mounted under a wildcard.
func (r *Router) Handle(path string, handler http.Handler) {
	h := func(w http.ResponseWriter, req *http.Request) { handler.ServeHTTP(w, req) }
	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	} {
		r.register(method, path, h)
	}
}

// Getter methods for testing
func (r *Router) Routes() map[string]HandlerFunc {
	return r.routes
}

func (r *Router) Paths() map[string]bool {
	return r.paths
}

// ServeHTTP lets the router run under httptest servers.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// --- Start server ---
func (r *Router) Start(addr string) {
	r.log.Infof("server started on http://localhost%s", addr)
	r.log.Fatal(http.ListenAndServe(addr, r.mux))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
