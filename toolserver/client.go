package toolserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/session"
	"github.com/shopmesh/shopmesh/tool"
)

// DefaultInvokeTimeout bounds a single backend tool invocation.
const DefaultInvokeTimeout = 15 * time.Second

// ClientOptions tune a Client.
type ClientOptions struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client invokes domain tools on the shared backend. When the backend is
// unreachable it executes the identical local registry instead, so agents
// keep answering with the same tool semantics either way.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   logging.Logger
	fallback *tool.Registry
	sessions core.SessionStore
}

// NewClient builds a Client for the backend at baseURL. The fallback
// registry may be nil, in which case transport failures surface as error
// payloads instead of local execution.
func NewClient(baseURL string, fallback *tool.Registry, opts ClientOptions) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultInvokeTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Client{
		baseURL:  baseURL,
		http:     opts.HTTPClient,
		logger:   opts.Logger,
		fallback: fallback,
		sessions: session.NewInMemoryStore(),
	}
}

// Invoke runs a named tool with the given arguments and returns the JSON
// payload. Transport failures never propagate: the client falls back to the
// local registry, or to an error payload when no fallback is configured.
func (c *Client) Invoke(ctx context.Context, name string, args map[string]any) string {
	result, err := c.post(ctx, name, args)
	if err == nil {
		return result
	}

	c.logger.Warn("toolserver.client.backend_unreachable",
		"tool", name,
		"url", c.baseURL,
		"error", err.Error(),
	)

	if c.fallback == nil {
		raw, _ := json.Marshal(map[string]string{
			"error": fmt.Sprintf("tool backend unreachable: %s", err.Error()),
		})
		return string(raw)
	}

	return ExecuteTool(ctx, c.fallback, c.sessions, c.logger, name, args)
}

func (c *Client) post(ctx context.Context, name string, args map[string]any) (string, error) {
	body, err := json.Marshal(InvokeRequest{Name: name, Arguments: args})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tool", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	return string(raw), nil
}
