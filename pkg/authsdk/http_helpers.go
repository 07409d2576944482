package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a JSON request with an optional bearer token and decodes
// the response envelope. A non-expected status is returned as *APIError.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path string,
	payload any,
	token string,
	expectedStatus int,
) (Envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Envelope{}, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return Envelope{}, parseErrorResponse(resp, raw)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return env, nil
}

// decodeData unmarshals an envelope's data payload into target.
func decodeData(env Envelope, target any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("response envelope has no data")
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
