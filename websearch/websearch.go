// Package websearch provides the external web search collaborator backed by
// the Tavily REST API. A client without an API key stays usable: every
// search returns an explicit search-disabled result with no snippets.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/shopmesh/shopmesh/logging"
)

// DefaultBaseURL is the Tavily search endpoint.
const DefaultBaseURL = "https://api.tavily.com"

// Search depths accepted by the API.
const (
	DepthBasic    = "basic"
	DepthAdvanced = "advanced"
)

// Snippet is one ranked search result.
type Snippet struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// Response is the outcome of a search. Disabled is set when no API key is
// configured; Results is empty in that case.
type Response struct {
	Answer   string    `json:"answer,omitempty"`
	Results  []Snippet `json:"results"`
	Disabled bool      `json:"disabled,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Query parametrizes one search.
type Query struct {
	Text       string
	Depth      string
	MaxResults int
}

// ClientOptions holds overrides for client construction.
type ClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client calls the search API. Safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient constructs a client. An empty apiKey produces a disabled client.
func NewClient(apiKey string, optFns ...func(o *ClientOptions)) *Client {
	opts := ClientOptions{
		BaseURL: DefaultBaseURL,
		Timeout: 15 * time.Second,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// Search runs the query and returns the answer summary plus ranked
// snippets. Without an API key it returns a disabled response instead of an
// error.
func (c *Client) Search(ctx context.Context, q Query) (*Response, error) {
	if !c.Enabled() {
		return &Response{
			Disabled: true,
			Message:  "Web search is not configured (missing TAVILY_API_KEY).",
			Results:  []Snippet{},
		}, nil
	}

	if q.Depth == "" {
		q.Depth = DepthBasic
	}
	if q.MaxResults <= 0 {
		q.MaxResults = 5
	}

	payload := map[string]any{
		"api_key":        c.apiKey,
		"query":          q.Text,
		"search_depth":   q.Depth,
		"max_results":    q.MaxResults,
		"include_answer": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var out struct {
		Answer  string `json:"answer"`
		Results []struct {
			Title   string  `json:"title"`
			URL     string  `json:"url"`
			Content string  `json:"content"`
			Score   float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	result := &Response{Answer: out.Answer, Results: []Snippet{}}
	for _, r := range out.Results {
		result.Results = append(result.Results, Snippet{
			Title:   r.Title,
			URL:     r.URL,
			Content: truncate(r.Content, 600),
			Score:   r.Score,
		})
	}

	c.logger.Debug("websearch.search.complete", "query", truncate(q.Text, 80), "results", len(result.Results))

	return result, nil
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
