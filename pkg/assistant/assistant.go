// Package assistant provides a minimal HTTP client for the upstream
// chat-completion service backing the in-app health assistant.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/auxillium/auxillium_backend/config"
)

var (
	ErrDisabled           = errors.New("assistant: upstream disabled")
	ErrUnexpectedResponse = errors.New("assistant: unexpected response from upstream")
	ErrUpstreamStatus     = errors.New("assistant: upstream returned non-2xx status")
)

// Client is a lightweight chat-completion HTTP client.
type Client struct {
	endpoint   string
	apiKey     string
	enabled    bool
	httpClient *http.Client
}

// New creates a Client from config. When disabled, Complete returns ErrDisabled
// and callers are expected to fall back to canned guidance.
func New(cfg config.AssistantConfig) *Client {
	timeout := 30 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		enabled:    cfg.Enabled && cfg.Endpoint != "",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the upstream is configured.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Complete sends the user's message to the upstream and returns its reply text.
// Upstream replies are normalized: whichever of message/reply/text the
// provider uses, callers always get a single string.
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	reqBody := map[string]any{
		"message": message,
	}

	var resp struct {
		Message string `json:"message"`
		Reply   string `json:"reply"`
		Text    string `json:"text"`
		Error   string `json:"error"`
	}

	if err := c.post(ctx, reqBody, &resp); err != nil {
		return "", fmt.Errorf("assistant complete: %w", err)
	}

	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedResponse, resp.Error)
	}

	for _, candidate := range []string{resp.Message, resp.Reply, resp.Text} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s, nil
		}
	}

	return "", ErrUnexpectedResponse
}

// post sends a JSON POST request to the endpoint and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w (%d)", ErrUpstreamStatus, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
