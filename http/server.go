// Package http provides the web interface for browsing and searching
// documents over HTTP.
package http

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/fwojciec/docserve"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// ShutdownTimeout is how long Close waits for in-flight requests.
	ShutdownTimeout = 5 * time.Second

	// SearchResultLimit caps the per-request search limit regardless of
	// what the client asks for.
	SearchResultLimit = 100

	// SearchRPS and SearchBurst bound how fast a single client can issue
	// search requests.
	SearchRPS   = 5
	SearchBurst = 10
)

// Server serves the documentation browser. Configure the exported fields
// before calling Open.
type Server struct {
	ln        net.Listener
	server    *http.Server
	router    *http.ServeMux
	templates map[string]*template.Template
	limiter   *ClientLimiter
	group     singleflight.Group

	Addr string

	Documents docserve.DocumentService
	Searcher  docserve.Searcher
	Renderer  docserve.Renderer
	Tree      *docserve.TreeNode

	Logger *slog.Logger
}

// NewServer creates a Server with its routes registered. It returns an
// error only if the embedded templates fail to parse.
func NewServer() (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    http.NewServeMux(),
		templates: templates,
		limiter:   NewClientLimiter(SearchRPS, SearchBurst),
		Logger:    slog.Default(),
	}
	s.server = &http.Server{Handler: s.logRequests(s.router)}

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /view/{path...}", s.handleView)
	s.router.HandleFunc("GET /search", s.handleSearch)

	return s, nil
}

func parseTemplates() (map[string]*template.Template, error) {
	pages := []string{"index.html", "view.html", "search.html"}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[page] = t
	}
	return templates, nil
}

// Open begins listening on Addr. It returns once the listener is bound;
// requests are served on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.Addr, err)
	}
	s.ln = ln
	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down, waiting up to ShutdownTimeout
// for in-flight requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the port the server is listening on. Useful when Addr was
// bound to port 0.
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// URL returns a base URL for the listening server.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.Port())
}

// logRequests assigns every request an ID and logs it on completion.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		begin := time.Now()
		next.ServeHTTP(sw, r)
		s.Logger.Info("http request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(begin),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type indexData struct {
	Title string
	Tree  *docserve.TreeNode
	Query string
	Count int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	count, err := s.Documents.CountDocuments(r.Context())
	if err != nil {
		s.error(w, r, err)
		return
	}
	s.render(w, r, "index.html", indexData{
		Title: "Documentation",
		Tree:  s.Tree,
		Count: count,
	})
}

type viewData struct {
	Title string
	Tree  *docserve.TreeNode
	Query string
	Doc   *docserve.Document
	HTML  template.HTML
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Documents.FindDocumentByPath(r.Context(), r.PathValue("path"))
	if err != nil {
		s.error(w, r, err)
		return
	}

	etag := `"` + doc.ContentHash + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)

	rendered, err := s.Renderer.Render(doc.Content)
	if err != nil {
		s.error(w, r, err)
		return
	}

	s.render(w, r, "view.html", viewData{
		Title: doc.Title,
		Tree:  s.Tree,
		Doc:   doc,
		HTML:  template.HTML(rendered),
	})
}

type searchData struct {
	Title   string
	Tree    *docserve.TreeNode
	Query   string
	Results []docserve.SearchResult
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientKey(r)) {
		http.Error(w, "Too many requests.", http.StatusTooManyRequests)
		return
	}

	query := r.URL.Query().Get("q")
	limit := docserve.DefaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.error(w, r, docserve.Errorf(docserve.EINVALID, "limit must be a positive integer"))
			return
		}
		limit = min(n, SearchResultLimit)
	}

	// Identical concurrent queries share one index scan.
	key := fmt.Sprintf("%d:%s", limit, query)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.Searcher.Search(r.Context(), query, limit)
	})
	if err != nil {
		s.error(w, r, err)
		return
	}

	s.render(w, r, "search.html", searchData{
		Title:   "Search",
		Tree:    s.Tree,
		Query:   query,
		Results: v.([]docserve.SearchResult),
	})
}

// render executes the named page template into a buffer so a template
// failure can still produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates[name].ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.error(w, r, docserve.Errorf(docserve.EINTERNAL, "executing template %s: %v", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// error writes an error response, translating application error codes to
// HTTP status codes. Internal errors are logged and masked.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := docserve.ErrorCode(err)
	if code == docserve.EINTERNAL {
		s.Logger.Error("internal error", "path", r.URL.Path, "err", err)
	}
	http.Error(w, docserve.ErrorMessage(err), statusFromCode(code))
}

func statusFromCode(code string) int {
	switch code {
	case docserve.ENOTFOUND:
		return http.StatusNotFound
	case docserve.EINVALID:
		return http.StatusBadRequest
	case docserve.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
