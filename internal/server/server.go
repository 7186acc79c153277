// Package server exposes the analysis, summarization, and history
// operations over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/analysis"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/history"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/monitoring"
)

type Server struct {
	analyzer *analysis.Analyzer
	summary  *analysis.SummaryService
	store    *history.Store
	probes   map[string]monitoring.Probe
	addr     string
}

func NewServer(
	analyzer *analysis.Analyzer,
	summary *analysis.SummaryService,
	store *history.Store,
	probes map[string]monitoring.Probe,
	addr string,
) *Server {
	return &Server{
		analyzer: analyzer,
		summary:  summary,
		store:    store,
		probes:   probes,
		addr:     addr,
	}
}

// Routes builds the request multiplexer with the full middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/summarize", s.handleSummarize)
	mux.HandleFunc("/save-history", s.handleSaveHistory)
	mux.HandleFunc("/get-history", s.handleGetHistory)
	mux.HandleFunc("/delete-entry", s.handleDeleteEntry)
	mux.HandleFunc("/health", s.handleHealth)

	return corsMiddleware(requestLogging(mux))
}

// Start runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] Shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("[Server] Listening", slog.String("addr", s.addr))
	return server.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("[Server] Failed to encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
