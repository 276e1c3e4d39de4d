package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"courier-console/internal/core/config"
	"courier-console/internal/core/httpclient"
	"courier-console/internal/core/logger"
	"courier-console/internal/core/proxy"

	"go.uber.org/zap"
)

// FallbackMessage is shown when the backend did not supply a message.
const FallbackMessage = "Something went wrong"

// Envelope is the standard backend response wrapper.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error is a transport or backend failure. StatusCode is 0 when no response arrived.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("backend unreachable: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the backend-supplied message for err, or FallbackMessage.
func UserMessage(err error) string {
	var be *Error
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return FallbackMessage
}

// HTTPStatus maps err to the status the console should answer with. Client errors
// reported by the backend pass through; anything else is a bad gateway.
func HTTPStatus(err error) int {
	var be *Error
	if errors.As(err, &be) && be.StatusCode >= http.StatusBadRequest && be.StatusCode < http.StatusInternalServerError {
		return be.StatusCode
	}
	return http.StatusBadGateway
}

// Client exchanges JSON with the backend REST API. It owns no business logic.
type Client struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL has no trailing slash.
	baseURL string
}

// NewClient creates a Client from the backend configuration.
func NewClient(cfg config.BackendConfig) *Client {
	settings := proxy.FromConfig(cfg.Proxy)
	if settings.HasProxy() {
		logger.Get().Info("Backend traffic routed through proxy", zap.String("proxy", settings.HostPort()))
	}

	transport := settings.Transport()
	return &Client{
		client:  httpclient.NewClient(cfg.Timeout, transport),
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}
}

// Do sends body (if non-nil) as JSON and decodes the envelope's data into out (if non-nil).
// token, when set, is sent as a bearer credential. The envelope is returned on success so
// callers can surface its message.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var env Envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				return nil, &Error{StatusCode: resp.StatusCode}
			}
			return nil, &Error{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if env.Success != nil && !*env.Success {
		return nil, &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &Error{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode data: %w", err)}
		}
	}

	return &env, nil
}
