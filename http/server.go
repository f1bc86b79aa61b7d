package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/user/hnfeed"
)

// errorResponse is the uniform wire shape for failures. Every failed
// operation renders as HTTP 422 with a single message, regardless of the
// underlying error kind.
type errorResponse struct {
	Message string `json:"message"`
}

// Server exposes a hnfeed.PostService as a JSON API:
//
//	GET /posts?page=<n>  ordered listing summaries
//	GET /detail?url=<u>  fully crawled article detail
type Server struct {
	Addr string

	service hnfeed.PostService
	logger  *slog.Logger
	server  *http.Server
}

// NewServer creates a Server for the given service.
func NewServer(addr string, service hnfeed.PostService, logger *slog.Logger) *Server {
	return &Server{
		Addr:    addr,
		service: service,
		logger:  logger,
	}
}

// Handler returns the server's route handler with request-ID and logging
// middleware applied. Exposed separately so tests can drive the routes
// through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", s.handlePosts)
	mux.HandleFunc("GET /detail", s.handleDetail)

	var h http.Handler = mux
	h = s.logRequests(h)
	h = requestID(h)
	return h
}

// ListenAndServe serves the API until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, r, hnfeed.Errorf(hnfeed.EINVALID, "page must be a positive integer, got %q", raw))
			return
		}
		page = n
	}

	posts, err := s.service.Posts(r.Context(), page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summaries := make([]hnfeed.PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, post.Summary())
	}

	s.writeJSON(w, r, summaries)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		s.writeError(w, r, hnfeed.Errorf(hnfeed.EINVALID, "url parameter required"))
		return
	}

	post, err := s.service.Detail(r.Context(), rawURL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := json.Marshal(post.Detail())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Detail payloads are stable for a full cache TTL, so a content-derived
	// ETag lets clients revalidate cheaply.
	etag := fmt.Sprintf("%q", strconv.FormatUint(xxhash.Sum64(body), 16))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// writeJSON renders a 200 response with a JSON body.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed",
			"path", r.URL.Path,
			"err", err,
		)
	}
}

// writeError renders a failure as 422 with the uniform message shape.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"path", r.URL.Path,
		"code", hnfeed.ErrorCode(err),
		"err", err,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: hnfeed.ErrorMessage(err)})
}

// requestID assigns each request a unique ID, echoed in the response
// headers for correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
			"request_id", w.Header().Get("X-Request-ID"),
		)
	})
}
