package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummarizer struct {
	output   string
	err      error
	called   bool
	gotMax   int
	gotMin   int
	gotInput string
}

func (s *stubSummarizer) Summarize(_ context.Context, text string, maxLength, minLength int) (string, error) {
	s.called = true
	s.gotInput = text
	s.gotMax = maxLength
	s.gotMin = minLength
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func wordsOf(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestSummarize_EmptyInput(t *testing.T) {
	service := NewSummaryService(&stubSummarizer{})

	for _, text := range []string{"", "   "} {
		_, err := service.Summarize(context.Background(), text)
		assert.ErrorIs(t, err, ErrNoText, "input %q", text)
	}
}

func TestSummarize_ShortTextPassesThrough(t *testing.T) {
	summarizer := &stubSummarizer{output: "should not be used"}
	service := NewSummaryService(summarizer)

	text := wordsOf(100)
	result, err := service.Summarize(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, result.Summary, "exactly 100 tokens must pass through unchanged")
	assert.False(t, summarizer.called)
}

func TestSummarize_LongTextUsesSummarizer(t *testing.T) {
	summarizer := &stubSummarizer{output: "a condensed version"}
	service := NewSummaryService(summarizer)

	text := wordsOf(101)
	result, err := service.Summarize(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "a condensed version", result.Summary)
	assert.True(t, summarizer.called, "101 tokens must trigger the summarizer")
	assert.Equal(t, 100, summarizer.gotMax)
	assert.Equal(t, 50, summarizer.gotMin)
	assert.Equal(t, text, summarizer.gotInput)
}

func TestSummarize_SummarizerFailurePropagates(t *testing.T) {
	summarizer := &stubSummarizer{err: errors.New("model rejected input")}
	service := NewSummaryService(summarizer)

	_, err := service.Summarize(context.Background(), wordsOf(150))
	require.Error(t, err)
	assert.ErrorContains(t, err, "model rejected input")
}

func TestSummarize_NoBackendConfigured(t *testing.T) {
	service := NewSummaryService(nil)

	// Short text never needs the backend.
	result, err := service.Summarize(context.Background(), "short text")
	require.NoError(t, err)
	assert.Equal(t, "short text", result.Summary)

	_, err = service.Summarize(context.Background(), wordsOf(101))
	assert.ErrorIs(t, err, ErrNoSummarizer)
}
