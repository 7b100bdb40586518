package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jswierad/contentlens"
)

// ProxyClient talks to a fetch-proxy service that retrieves pages on
// our behalf. The wire contract is a JSON-RPC-ish POST:
//
//	{"method": "fetch", "params": {"url": ..., "options": {...}}}
//
// answered with either {"result": {...}} or {"error": {"message"}}.
// Every failure is returned as a Go error so the caller can fall back
// to direct fetching.
type ProxyClient struct {
	url       string
	client    *http.Client
	userAgent string
}

// NewProxyClient creates a client for the fetch-proxy at proxyURL.
func NewProxyClient(proxyURL string, timeout time.Duration) *ProxyClient {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &ProxyClient{
		url:       proxyURL,
		client:    &http.Client{Timeout: timeout},
		userAgent: "contentlens/1.0",
	}
}

type proxyRequest struct {
	Method string      `json:"method"`
	Params proxyParams `json:"params"`
}

type proxyParams struct {
	URL     string       `json:"url"`
	Options proxyOptions `json:"options"`
}

type proxyOptions struct {
	IncludeRawContent bool   `json:"include_raw_content"`
	IncludeMetadata   bool   `json:"include_metadata"`
	FollowRedirects   bool   `json:"follow_redirects"`
	UserAgent         string `json:"user_agent"`
}

type proxyResponse struct {
	Result *proxyResult `json:"result"`
	Error  *proxyError  `json:"error"`
}

type proxyResult struct {
	Content     string            `json:"content"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ContentType string            `json:"content_type"`
	StatusCode  int               `json:"status_code"`
	FinalURL    string            `json:"final_url"`
	Metadata    map[string]string `json:"metadata"`
}

type proxyError struct {
	Message string `json:"message"`
}

// Fetch asks the proxy to retrieve target. Unlike Fetcher.Fetch this
// returns a Go error on failure: the error is the caller's signal to
// fall back, never surfaced to the pipeline.
func (c *ProxyClient) Fetch(ctx context.Context, target string) (*contentlens.FetchResult, error) {
	reqBody, err := json.Marshal(proxyRequest{
		Method: "fetch",
		Params: proxyParams{
			URL: target,
			Options: proxyOptions{
				IncludeRawContent: true,
				IncludeMetadata:   true,
				FollowRedirects:   true,
				UserAgent:         c.userAgent,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch proxy returned HTTP %d", resp.StatusCode)
	}

	var parsed proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("fetch proxy response: %w", err)
	}
	if parsed.Result == nil {
		msg := "unknown proxy error"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("fetch proxy error: %s", msg)
	}

	finalURL := parsed.Result.FinalURL
	if finalURL == "" {
		finalURL = target
	}

	return &contentlens.FetchResult{
		URL:  target,
		HTML: parsed.Result.Content,
		Metadata: contentlens.FetchMetadata{
			FinalURL:      finalURL,
			StatusCode:    parsed.Result.StatusCode,
			ContentType:   parsed.Result.ContentType,
			ContentLength: len(parsed.Result.Content),
			Title:         parsed.Result.Title,
			Description:   parsed.Result.Description,
			Source:        "proxy",
		},
	}, nil
}
