package workos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aussiebroadwan/workos/pkg/slogx"
)

// doRequest performs a single HTTP round trip against the configured API.
// When payload is non-nil it is sent as a JSON body.
func (w *WorkOS) doRequest(
	ctx context.Context,
	method, path string,
	payload any,
	headers map[string]string,
) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, w.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if w.UserAgent != "" {
		req.Header.Set("User-Agent", w.UserAgent)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if w.Limiter != nil {
		if err := w.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	start := time.Now()
	resp, err := w.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	slogx.FromContext(ctx).Debug("workos request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return resp, nil
}

// doBearerRequest is doRequest with an Authorization: Bearer header.
func (w *WorkOS) doBearerRequest(ctx context.Context, method, path, token string) (*http.Response, error) {
	return w.doRequest(ctx, method, path, nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// decodeJSON decodes a 2xx response into target. Any other status becomes a
// *RequestError, a body that does not fit target a *DeserializationError.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return &DeserializationError{Err: err}
	}

	return nil
}
