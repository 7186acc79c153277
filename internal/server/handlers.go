package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/analysis"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/history"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/monitoring"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, analysis.ErrNoText) {
			writeError(w, http.StatusBadRequest, "No text provided")
			return
		}
		slog.Error("[Server] Analysis failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := s.summary.Summarize(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, analysis.ErrNoText) {
			writeError(w, http.StatusBadRequest, "No text provided")
			return
		}
		slog.Error("[Server] Summarization failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Summarization failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSaveHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.SaveHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if _, err := s.store.Save(req); err != nil {
		slog.Error("[Server] Failed to save history", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to save history")
		return
	}

	writeMessage(w, "History saved successfully")
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	entries, err := s.store.List()
	if err != nil {
		slog.Error("[Server] Failed to read history", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to read history")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.DeleteEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := s.store.Delete(req.Timestamp); err != nil {
		switch {
		case errors.Is(err, history.ErrMissingTimestamp):
			writeError(w, http.StatusBadRequest, "Missing timestamp")
		case errors.Is(err, history.ErrNoHistory):
			writeError(w, http.StatusNotFound, "History file not found")
		default:
			slog.Error("[Server] Failed to delete entry", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		}
		return
	}

	writeMessage(w, "Entry deleted successfully")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"backends": monitoring.CheckAll(r.Context(), s.probes),
	})
}
