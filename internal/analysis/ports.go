// Package analysis combines the raw outputs of the external model
// capabilities (sentiment classifier, segmenter, summarizer) into the
// composite responses the API serves. The capabilities themselves are
// injected behind the interfaces below so orchestration stays testable
// with deterministic stubs.
package analysis

import (
	"context"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
)

// Classifier scores a text on the five-class star-rating scale. It is
// invoked once per whole document and once per sentence.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Classification, error)
}

// Segmenter produces sentence boundaries and noun-phrase spans for a text.
type Segmenter interface {
	Segment(ctx context.Context, text string) (models.Segmentation, error)
}

// Summarizer produces an abstractive summary bounded by maxLength and
// minLength tokens, with deterministic decoding.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}
