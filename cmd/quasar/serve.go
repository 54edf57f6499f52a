package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/quasar-search/quasar"
)

var (
	documentsIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quasar_documents_indexed_total",
		Help: "Number of documents accepted through the HTTP API.",
	})
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quasar_search_duration_seconds",
		Help:    "Latency of search requests.",
		Buckets: prometheus.DefBuckets,
	})
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and web front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg, engine)
		},
	}
}

// apiServer serializes access to the engine: the core has no internal
// locking, so every handler takes the mutex for the whole call.
type apiServer struct {
	mu     sync.Mutex
	engine *quasar.Engine
}

func (s *apiServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /api/documents", s.handleAddDocument)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func runServer(ctx context.Context, cfg Config, engine *quasar.Engine) error {
	api := &apiServer{engine: engine}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type addDocumentRequest struct {
	ID      *int   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

func (s *apiServer) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req addDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == nil || req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "id, title and content are required")
		return
	}

	s.mu.Lock()
	err := s.engine.AddDocument(quasar.DocumentID(*req.ID), req.Title, req.Content, req.URL)
	s.mu.Unlock()
	if err != nil {
		slog.Error("add document failed", "id", *req.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist document")
		return
	}

	documentsIndexed.Inc()
	slog.Info("document indexed", "id", *req.ID, "title", req.Title)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"id": *req.ID, "status": "indexed"})
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	maxResults := 10
	if v := r.URL.Query().Get("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "max_results must be an integer")
			return
		}
		maxResults = n
	}

	start := time.Now()
	s.mu.Lock()
	results := s.engine.Search(query, maxResults)
	s.mu.Unlock()
	searchDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

func (s *apiServer) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats, err := s.engine.Stats()
	s.mu.Unlock()
	if err != nil {
		slog.Error("stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *apiServer) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, homePage)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
