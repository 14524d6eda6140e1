package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Client talks to the dictionary service over HTTP/JSON
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new API client. A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// errorBody is the error shape of every endpoint except registration
type errorBody struct {
	Detail string `json:"detail"`
}

// Do sends one request to baseURL+endpoint and returns the raw JSON body.
// The bearer token is attached only when token is not empty, the body only
// when payload is not nil. A 204 response yields a nil body and no error.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any, token string) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("API request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, &Error{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := DefaultErrorMessage
		var errBody errorBody
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Detail != "" {
			message = errBody.Detail
		}

		c.logger.Warn("API error",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", message),
		)
		return nil, &Error{Message: message, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: err.Error(), StatusCode: resp.StatusCode, Err: err}
	}
	return data, nil
}

// DoJSON is Do followed by decoding the response into out.
// A success body that cannot be decoded is reported as a generic failure.
func (c *Client) DoJSON(ctx context.Context, method, endpoint string, payload any, token string, out any) error {
	data, err := c.Do(ctx, method, endpoint, payload, token)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Failed to decode API response",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &Error{Message: DefaultErrorMessage, Err: err}
	}
	return nil
}
