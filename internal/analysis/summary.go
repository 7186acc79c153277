package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
)

// ErrNoSummarizer is returned when condensation is needed but no summarizer
// backend was configured at startup.
var ErrNoSummarizer = errors.New("no summarizer backend configured")

const (
	// summaryTriggerWords is the whitespace-token count above which a text
	// is worth condensing. At or below it the text passes through verbatim.
	summaryTriggerWords = 100

	summaryMaxLength = 100
	summaryMinLength = 50
)

type SummaryService struct {
	summarizer Summarizer
}

func NewSummaryService(summarizer Summarizer) *SummaryService {
	return &SummaryService{summarizer: summarizer}
}

// Summarize condenses texts longer than the trigger threshold and returns
// short texts unchanged. The length bounds are fixed policy, not per-call
// options.
func (s *SummaryService) Summarize(ctx context.Context, text string) (models.SummaryResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.SummaryResult{}, ErrNoText
	}

	if len(strings.Fields(text)) <= summaryTriggerWords {
		return models.SummaryResult{Summary: text}, nil
	}

	if s.summarizer == nil {
		return models.SummaryResult{}, ErrNoSummarizer
	}

	summary, err := s.summarizer.Summarize(ctx, text, summaryMaxLength, summaryMinLength)
	if err != nil {
		return models.SummaryResult{}, fmt.Errorf("summarizing text: %w", err)
	}

	return models.SummaryResult{Summary: summary}, nil
}
