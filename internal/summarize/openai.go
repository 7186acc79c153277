// Package summarize provides Summarizer backends for the summarization
// policy.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/clients"
)

const (
	openAIModel         = openai.GPT4oMini
	openAIRetryAttempts = 3
)

// OpenAISummarizer condenses text through a chat completion. Decoding is
// deterministic (temperature 0) so repeated calls on the same text agree.
type OpenAISummarizer struct {
	client *openai.Client
}

func NewOpenAISummarizer() *OpenAISummarizer {
	return &OpenAISummarizer{client: clients.GetOpenAIClient().Client}
}

func (o *OpenAISummarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following text in between %d and %d words. Return only the summary, no preamble.\n\n%s",
		minLength, maxLength, text)

	var resp openai.ChatCompletionResponse
	var completionErr error

	for i := 0; i < openAIRetryAttempts; i++ {
		start := time.Now()
		resp, completionErr = o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: openAIModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0,
		})
		if completionErr == nil {
			break
		}
		slog.Warn("[OpenAISummarizer] Failed to get a response from OpenAI, retrying...",
			slog.String("error", completionErr.Error()),
			slog.Int("attempt", i+1),
			slog.Duration("elapsed", time.Since(start)))
	}
	if completionErr != nil {
		return "", fmt.Errorf("openai summarization failed after %d attempts: %w", openAIRetryAttempts, completionErr)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai summarization returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
