package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/config"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/analysis"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/clients"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/history"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/logging"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/monitoring"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/sentiment"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/server"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/summarize"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/transformers"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	probes := map[string]monitoring.Probe{}

	classifier, segmenter := buildAnalysisBackends(probes)
	summarizer := buildSummaryBackend(probes)

	store := history.NewStore(getenvDefault("HISTORY_FILE", "history.json"))

	srv := server.NewServer(
		analysis.NewAnalyzer(classifier, segmenter),
		analysis.NewSummaryService(summarizer),
		store,
		probes,
		getenvDefault("ADDR", ":5000"),
	)

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildAnalysisBackends wires the classifier and segmenter from MODEL_BACKEND.
// Segmentation is always served by the remote model service; only the
// classifier has local alternatives.
func buildAnalysisBackends(probes map[string]monitoring.Probe) (analysis.Classifier, analysis.Segmenter) {
	modelService := clients.GetModelServiceClient()
	probes["segmenter"] = modelService.HealthCheck

	backend := getenvDefault("MODEL_BACKEND", "remote")
	var classifier analysis.Classifier
	switch backend {
	case "local":
		bert, err := transformers.NewBertClassifier()
		if err != nil {
			slog.Error("[Main] Failed to initialize local classifier", slog.String("error", err.Error()))
			os.Exit(1)
		}
		classifier = bert
		probes["classifier"] = monitoring.AlwaysHealthy
	case "vader":
		classifier = sentiment.NewVADERClassifier()
		probes["classifier"] = monitoring.AlwaysHealthy
	default:
		classifier = modelService
		probes["classifier"] = modelService.HealthCheck
	}

	slog.Info("[Main] Analysis backends ready", slog.String("classifier", backend))
	return classifier, modelService
}

// buildSummaryBackend wires the summarizer from SUMMARY_BACKEND. "none"
// leaves summarization pass-through only.
func buildSummaryBackend(probes map[string]monitoring.Probe) analysis.Summarizer {
	backend := getenvDefault("SUMMARY_BACKEND", "remote")
	switch backend {
	case "openai":
		probes["summarizer"] = monitoring.AlwaysHealthy
		return summarize.NewOpenAISummarizer()
	case "local":
		bart, err := transformers.NewBartSummarizer()
		if err != nil {
			slog.Error("[Main] Failed to initialize local summarizer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		probes["summarizer"] = monitoring.AlwaysHealthy
		return bart
	case "none":
		return nil
	default:
		modelService := clients.GetModelServiceClient()
		probes["summarizer"] = modelService.HealthCheck
		return modelService
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
