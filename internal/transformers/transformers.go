// Package transformers runs the pretrained models in-process through Hugot
// ONNX sessions, as an alternative to the remote model service.
package transformers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
)

const (
	modelDir = "./models/transformers"

	sentimentModelName = "nlptown/bert-base-multilingual-uncased-sentiment"
	summaryModelName   = "facebook/bart-large-cnn"
)

// ensureModel downloads a model on first use and returns its local path.
func ensureModel(name string) (string, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	slog.Info("[Transformers] Resolving model", slog.String("model", name))
	modelPath, err := hugot.DownloadModel(name, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("failed to download model %s: %w", name, err)
	}
	slog.Info("[Transformers] Model ready", slog.String("path", modelPath))
	return modelPath, nil
}

// BertClassifier scores texts on the five-star rating scale with the
// multilingual BERT sentiment model.
type BertClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewBertClassifier() (*BertClassifier, error) {
	modelPath, err := ensureModel(sentimentModelName)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &BertClassifier{session: session, pipeline: pipeline}, nil
}

func (b *BertClassifier) Classify(_ context.Context, text string) (models.Classification, error) {
	output, err := b.pipeline.RunPipeline([]string{text})
	if err != nil {
		return models.Classification{}, fmt.Errorf("sentiment pipeline failed: %w", err)
	}

	raw, err := firstOutput(output.GetOutput())
	if err != nil {
		return models.Classification{}, err
	}

	var result models.ClassifyResponse
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return models.Classification{}, fmt.Errorf("failed to decode classifier output: %w", err)
	}

	return models.Classification{Label: result.Label, Score: result.Score}, nil
}

func (b *BertClassifier) Close() {
	b.session.Destroy()
}

// BartSummarizer condenses texts with the BART CNN summarization model.
type BartSummarizer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewBartSummarizer() (*BartSummarizer, error) {
	modelPath, err := ensureModel(summaryModelName)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, err
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "bartSummarizationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize summarization pipeline: %w", err)
	}

	return &BartSummarizer{session: session, pipeline: pipeline}, nil
}

// Summarize runs the summarization model. The length bounds are advisory
// for this backend; BART CNN's generation config already targets the same
// range the policy asks for.
func (b *BartSummarizer) Summarize(_ context.Context, text string, _, _ int) (string, error) {
	output, err := b.pipeline.RunPipeline([]string{text})
	if err != nil {
		return "", fmt.Errorf("summarization pipeline failed: %w", err)
	}

	raw, err := firstOutput(output.GetOutput())
	if err != nil {
		return "", err
	}

	var result models.SummarizeModelResponse
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", fmt.Errorf("failed to decode summarizer output: %w", err)
	}

	if result.SummaryText == "" {
		return "", fmt.Errorf("summarizer produced empty output")
	}
	return result.SummaryText, nil
}

func (b *BartSummarizer) Close() {
	b.session.Destroy()
}

func firstOutput(outputs []any) (string, error) {
	if len(outputs) == 0 {
		return "", fmt.Errorf("pipeline produced no output")
	}
	raw, ok := outputs[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected output format from Hugot")
	}
	return raw, nil
}
