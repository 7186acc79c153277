package sentiment

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
)

// VADERClassifier is an offline classifier backend. It buckets VADER's
// compound polarity score onto the same five-star label vocabulary the
// transformer model emits, so the rest of the pipeline is backend-agnostic.
type VADERClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERClassifier() *VADERClassifier {
	return &VADERClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

func (v *VADERClassifier) Classify(_ context.Context, text string) (models.Classification, error) {
	plainText := ConvertMarkdownToText(text)

	compound := v.analyzer.PolarityScores(plainText).Compound

	var label string
	switch {
	case compound >= 0.60:
		label = "5 stars"
	case compound >= 0.20:
		label = "4 stars"
	case compound > -0.20:
		label = "3 stars"
	case compound > -0.60:
		label = "2 stars"
	default:
		label = "1 star"
	}

	confidence := math.Abs(compound)
	if label == "3 stars" {
		confidence = 1 - confidence
	}

	return models.Classification{Label: label, Score: confidence}, nil
}
