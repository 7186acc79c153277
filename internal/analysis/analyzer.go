package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/sentiment"
)

// ErrNoText is returned when the submitted text is empty after trimming.
var ErrNoText = errors.New("no text provided")

type Analyzer struct {
	classifier Classifier
	segmenter  Segmenter
}

func NewAnalyzer(classifier Classifier, segmenter Segmenter) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		segmenter:  segmenter,
	}
}

// Analyze runs the full composite analysis: one whole-text classification,
// one segmentation pass, and one classification per detected sentence.
// Sentence results keep document order and are never cached or batched.
// Any capability failure aborts the whole request; a partial result is
// never returned.
func (a *Analyzer) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.AnalysisResult{}, ErrNoText
	}

	overall, err := a.classifier.Classify(ctx, text)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("classifying text: %w", err)
	}

	segmentation, err := a.segmenter.Segment(ctx, text)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("segmenting text: %w", err)
	}

	sentenceAnalysis := make([]models.SentenceSentiment, 0, len(segmentation.Sentences))
	for _, sentence := range segmentation.Sentences {
		result, err := a.classifier.Classify(ctx, sentence)
		if err != nil {
			return models.AnalysisResult{}, fmt.Errorf("classifying sentence: %w", err)
		}
		sentenceAnalysis = append(sentenceAnalysis, models.SentenceSentiment{
			Sentence:  sentence,
			Sentiment: sentiment.TranslateLabel(result.Label),
			Score:     roundScore(result.Score),
		})
	}

	keyPhrases := segmentation.NounPhrases
	if keyPhrases == nil {
		keyPhrases = []string{}
	}

	slog.Debug("[Analyzer] Analysis complete",
		slog.String("raw_label", overall.Label),
		slog.Int("sentences", len(sentenceAnalysis)),
		slog.Int("key_phrases", len(keyPhrases)))

	return models.AnalysisResult{
		Text:             text,
		OverallSentiment: sentiment.TranslateLabel(overall.Label),
		Score:            roundScore(overall.Score),
		RawLabel:         overall.Label,
		KeyPhrases:       keyPhrases,
		SentenceAnalysis: sentenceAnalysis,
	}, nil
}

// roundScore truncates a confidence to 3 decimal places for the API surface.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
