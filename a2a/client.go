package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/task"
	"github.com/shopmesh/shopmesh/telemetry"
)

// DefaultDelegationTimeout bounds one delegated request, covering the full
// downstream task lifecycle. No retry is attempted.
const DefaultDelegationTimeout = 60 * time.Second

// ClientOptions holds overrides for client construction.
type ClientOptions struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client delegates queries to remote agents over the A2A protocol. Transport
// failures never escape Delegate; they degrade to a fallback string the
// calling agent's model can react to.
type Client struct {
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient constructs a delegation client.
func NewClient(optFns ...func(o *ClientOptions)) *Client {
	opts := ClientOptions{
		Timeout: DefaultDelegationTimeout,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{httpClient: httpClient, logger: opts.Logger}
}

// Delegate sends the query to the agent at agentURL and waits for the task
// to reach a terminal state. The returned text comes from the terminal
// task's artifacts first, falling back to the terminal status message. On
// any failure the result is a fallback string naming the agent with a
// truncated reason; Delegate never returns an error.
func (c *Client) Delegate(ctx context.Context, agentName, agentURL, query string) string {
	c.logger.Info("a2a.delegation.start", "agent", agentName, "query", truncate(query, 80))

	result, err := c.sendMessage(ctx, agentURL, query)
	if err != nil {
		c.logger.Error("a2a.delegation.error", "agent", agentName, "error", err.Error())
		telemetry.Metrics.DelegationsTotal.WithLabelValues(agentName, "error").Inc()
		return fmt.Sprintf("%s is currently unreachable (%s). Please try again later.", agentName, truncate(err.Error(), 100))
	}

	text := extractText(result)
	if text == "" {
		telemetry.Metrics.DelegationsTotal.WithLabelValues(agentName, "empty").Inc()
		return fmt.Sprintf("%s did not respond.", agentName)
	}

	telemetry.Metrics.DelegationsTotal.WithLabelValues(agentName, "ok").Inc()
	return text
}

// FetchAgentCard retrieves the agent descriptor from its well-known path.
func (c *Client) FetchAgentCard(ctx context.Context, agentURL string) (*AgentCard, error) {
	url := strings.TrimSuffix(agentURL, "/") + "/.well-known/agent.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build card request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent card request returned status %d", resp.StatusCode)
	}

	var card AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode agent card: %w", err)
	}

	return &card, nil
}

func (c *Client) sendMessage(ctx context.Context, agentURL, query string) (*task.Task, error) {
	rpcReq := map[string]any{
		"jsonrpc": Version,
		"id":      uuid.NewString(),
		"method":  MethodMessageSend,
		"params":  MessageSendParams{Message: NewTextMessage("user", query)},
	}

	body, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, agentURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent returned status %d", resp.StatusCode)
	}

	var rpcResp JSONRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}

	var result task.Task
	if err := json.Unmarshal(rpcResp.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}

	return &result, nil
}

// extractText pulls the textual payload out of a terminal task. Artifacts
// take precedence; the terminal status message is the fallback.
func extractText(t *task.Task) string {
	var sb strings.Builder
	for _, a := range t.Artifacts {
		sb.WriteString(a.Text())
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	return t.Status.Message
}

// truncate trims s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
