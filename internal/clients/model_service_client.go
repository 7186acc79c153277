package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
)

// Endpoint paths on the remote model service. The service hosts the
// pretrained capabilities this backend consumes: the star-rating sentiment
// classifier, the sentence/noun-phrase segmenter, and the BART summarizer.
const (
	classifyPath  = "/classify"
	segmentPath   = "/segment"
	summarizePath = "/summarize"
	healthPath    = "/health"

	defaultModelServiceURL = "https://bhavyaprem-text-models.hf.space"
)

var (
	modelServiceInstance *ModelServiceClient
	modelServiceOnce     sync.Once
)

type ModelServiceClient struct {
	BaseURL string
	Client  *http.Client
}

func GetModelServiceClient() *ModelServiceClient {
	var timeout time.Duration
	env := os.Getenv("APP_ENV")
	if env == "production" {
		timeout = 10 * time.Second
	} else {
		timeout = 60 * time.Second
	}
	modelServiceOnce.Do(func() {
		baseURL := os.Getenv("MODEL_SERVICE_URL")
		if baseURL == "" {
			baseURL = defaultModelServiceURL
		}
		slog.Info("[ModelServiceClient] Initializing Client",
			slog.String("base_url", baseURL),
			slog.Duration("timeout", timeout),
			slog.String("env", env))
		modelServiceInstance = &ModelServiceClient{
			BaseURL: strings.TrimRight(baseURL, "/"),
			Client: &http.Client{
				Timeout: timeout,
			},
		}
	})
	return modelServiceInstance
}

// Classify scores a text on the five-star scale via the remote classifier.
func (m *ModelServiceClient) Classify(ctx context.Context, text string) (models.Classification, error) {
	var result models.ClassifyResponse
	start := time.Now()

	err := m.postJSON(ctx, classifyPath, models.ClassifyRequest{Inputs: text}, &result)
	if err != nil {
		slog.Error("[ModelServiceClient] Classification request failed",
			slog.Duration("elapsed", time.Since(start)))
		return models.Classification{}, err
	}

	slog.Debug("[ModelServiceClient] Classification request successful",
		slog.Duration("elapsed", time.Since(start)))
	return models.Classification{Label: result.Label, Score: result.Score}, nil
}

// Segment fetches sentence boundaries and noun-phrase spans for a text.
func (m *ModelServiceClient) Segment(ctx context.Context, text string) (models.Segmentation, error) {
	var result models.SegmentResponse
	start := time.Now()

	err := m.postJSON(ctx, segmentPath, models.SegmentRequest{Inputs: text}, &result)
	if err != nil {
		slog.Error("[ModelServiceClient] Segmentation request failed",
			slog.Duration("elapsed", time.Since(start)))
		return models.Segmentation{}, err
	}

	slog.Debug("[ModelServiceClient] Segmentation request successful",
		slog.Duration("elapsed", time.Since(start)))
	return models.Segmentation{Sentences: result.Sentences, NounPhrases: result.NounPhrases}, nil
}

// Summarize requests an abstractive summary with deterministic decoding.
func (m *ModelServiceClient) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	var result models.SummarizeModelResponse
	start := time.Now()

	input := models.SummarizeModelRequest{
		Inputs:    text,
		MaxLength: maxLength,
		MinLength: minLength,
		DoSample:  false,
	}
	err := m.postJSON(ctx, summarizePath, input, &result)
	if err != nil {
		slog.Error("[ModelServiceClient] Summary request failed",
			slog.Duration("elapsed", time.Since(start)))
		return "", err
	}

	slog.Debug("[ModelServiceClient] Summary request successful",
		slog.Duration("elapsed", time.Since(start)))
	return result.SummaryText, nil
}

// HealthCheck reports whether the model service answers its health endpoint.
func (m *ModelServiceClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.BaseURL+healthPath, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := m.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (m *ModelServiceClient) DoWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		resp, err = m.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[ModelServiceClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		time.Sleep(backoff)
		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}
	}

	return resp, err
}

// helper function for posting data to the model service
func (m *ModelServiceClient) postJSON(ctx context.Context, path string, input interface{}, output interface{}) error {
	endpoint := m.BaseURL + path

	body, err := json.Marshal(input)
	if err != nil {
		slog.Error("[ModelServiceClient] Failed to marshal input",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[ModelServiceClient] Failed to build request",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := m.DoWithRetry(req)
	if err != nil {
		slog.Error("[ModelServiceClient] Failed request after retries",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[ModelServiceClient] Failed to read response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[ModelServiceClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(string(respBody))))
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
