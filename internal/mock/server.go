// Package mock serves canned API responses over httptest for package tests.
package mock

import (
	"bytes"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"
)

// Request is what the server saw of one call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte

	ContentLength int64
}

// Form parses a urlencoded body.
func (r Request) Form() url.Values {
	v, _ := url.ParseQuery(string(r.Body))
	return v
}

type Server struct {
	*httptest.Server
	router chi.Router

	mu       sync.Mutex
	requests map[string][]Request
}

// New starts a server that is closed when the test ends. Unregistered routes answer 404
// with an empty body.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		router:   chi.NewRouter(),
		requests: make(map[string][]Request),
	}
	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)
	return s
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// Handle registers h for method and pattern (chi syntax, e.g. /torrents/info/{id}).
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	key := routeKey(method, pattern)
	s.router.MethodFunc(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		s.mu.Lock()
		s.requests[key] = append(s.requests[key], Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,

			ContentLength: r.ContentLength,
		})
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		h(w, r)
	})
}

// Hits returns how many times the route was called.
func (s *Server) Hits(method, pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests[routeKey(method, pattern)])
}

// Last returns the most recent call to the route.
func (s *Server) Last(method, pattern string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reqs := s.requests[routeKey(method, pattern)]
	if len(reqs) == 0 {
		return Request{}, false
	}
	return reqs[len(reqs)-1], true
}

func JSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// JSON answers with data encoded as JSON.
func JSON(status int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSONResponse(w, status, data)
	}
}

// Raw answers with body as is.
func Raw(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func Text(status int, body string) http.HandlerFunc {
	return Raw(status, "text/plain; charset=utf-8", body)
}

// Fixture answers 200 with the content of a JSON file.
func Fixture(t testing.TB, path string) http.HandlerFunc {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", path, err)
	}
	return Raw(http.StatusOK, "application/json", string(data))
}

// Error answers with the API error envelope.
func Error(status, code int, message string) http.HandlerFunc {
	return Raw(status, "application/json", fmt.Sprintf(`{"error":%q,"error_code":%d}`, message, code))
}

// Status answers with an empty body.
func Status(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

// TotalCount answers 200 with an empty listing and the given X-Total-Count header.
func TotalCount(value string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Total-Count", value)
		JSONResponse(w, http.StatusOK, []any{})
	}
}
