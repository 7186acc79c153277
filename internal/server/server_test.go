package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/analysis"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/history"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/monitoring"
)

type fakeClassifier struct{}

func (fakeClassifier) Classify(context.Context, string) (models.Classification, error) {
	return models.Classification{Label: "4 stars", Score: 0.9}, nil
}

type fakeSegmenter struct{}

func (fakeSegmenter) Segment(_ context.Context, text string) (models.Segmentation, error) {
	return models.Segmentation{
		Sentences:   []string{text},
		NounPhrases: []string{"a phrase"},
	}, nil
}

type fakeSummarizer struct{}

func (fakeSummarizer) Summarize(context.Context, string, int, int) (string, error) {
	return "summarized", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := history.NewStore(filepath.Join(t.TempDir(), "history.json"))
	return NewServer(
		analysis.NewAnalyzer(fakeClassifier{}, fakeSegmenter{}),
		analysis.NewSummaryService(fakeSummarizer{}),
		store,
		map[string]monitoring.Probe{"classifier": monitoring.AlwaysHealthy},
		":0",
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodPost, "/analyze", models.AnalyzeRequest{Text: "The phone is great."})
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Positive", result.OverallSentiment)
	assert.Equal(t, "4 stars", result.RawLabel)
	assert.Equal(t, 0.9, result.Score)
	assert.Equal(t, []string{"a phrase"}, result.KeyPhrases)
	require.Len(t, result.SentenceAnalysis, 1)
}

func TestAnalyzeEndpoint_NoText(t *testing.T) {
	handler := newTestServer(t).Routes()

	for _, body := range []any{
		models.AnalyzeRequest{Text: ""},
		models.AnalyzeRequest{Text: "   "},
		map[string]string{},
	} {
		rec := doJSON(t, handler, http.MethodPost, "/analyze", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No text provided"}`, rec.Body.String())
	}
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodGet, "/analyze", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSummarizeEndpoint_ShortText(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodPost, "/summarize", models.AnalyzeRequest{Text: "short text"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary": "short text"}`, rec.Body.String())
}

func TestHistoryEndpoints_SaveListDelete(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodPost, "/save-history", models.SaveHistoryRequest{
		Text:             "saved text",
		OverallSentiment: "Positive",
		Score:            0.9,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "History saved successfully"}`, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/get-history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "saved text", entries[0].Text)
	require.NotEmpty(t, entries[0].Timestamp)

	rec = doJSON(t, handler, http.MethodDelete, "/delete-entry", models.DeleteEntryRequest{Timestamp: entries[0].Timestamp})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Entry deleted successfully"}`, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/get-history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetHistoryEndpoint_EmptyStore(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodGet, "/get-history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteEndpoint_MissingTimestamp(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodDelete, "/delete-entry", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Missing timestamp"}`, rec.Body.String())
}

func TestDeleteEndpoint_NoHistoryFile(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodDelete, "/delete-entry", models.DeleteEntryRequest{Timestamp: "2026-08-29 10:30:00"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "History file not found"}`, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Status   string          `json:"status"`
		Backends map[string]bool `json:"backends"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload.Status)
	assert.True(t, payload.Backends["classifier"])
}

func TestCORSHeaders(t *testing.T) {
	handler := newTestServer(t).Routes()

	rec := doJSON(t, handler, http.MethodOptions, "/analyze", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
