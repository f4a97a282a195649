// Package transcriber is the narrow boundary to the caption-generation
// service. The service itself (speech-to-text over the project's audio
// track) is a black box; this client only knows its request/response
// shape and retry behavior.
package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"clipforge/editor-api/models"
)

const maxRetries = 3

// RequestError carries the HTTP status of a failed transcription call.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("transcription request failed: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsRetryable reports whether the failure is worth retrying. Client
// errors are permanent; server errors and throttling are not.
func (e *RequestError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client calls the transcription function over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a transcriber client. timeout bounds a single attempt,
// not the whole retry sequence; use the context for an overall bound.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type transcribeRequest struct {
	MediaURL string `json:"media_url"`
}

// Transcribe sends the media URL to the transcription service and
// returns the timed segments. Transient failures are retried with
// exponential backoff up to three times.
func (c *Client) Transcribe(ctx context.Context, mediaURL string) (*models.TranscriptionData, error) {
	body, err := json.Marshal(transcribeRequest{MediaURL: mediaURL})
	if err != nil {
		return nil, fmt.Errorf("marshal transcription request: %w", err)
	}

	var result models.TranscriptionData
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			reqErr := &RequestError{StatusCode: resp.StatusCode, Body: string(respBody)}
			if !reqErr.IsRetryable() {
				return backoff.Permanent(reqErr)
			}
			return reqErr
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return backoff.Permanent(fmt.Errorf("decode transcription response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return &result, nil
}
