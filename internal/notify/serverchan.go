// Package notify delivers analysis summaries to WeChat via the ServerChan
// push service.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Config holds ServerChan push configuration. An empty Key disables
// pushing.
type Config struct {
	Key     string // ServerChan SendKey
	BaseURL string // override for tests; defaults to the public endpoint
}

// ServerChanSender delivers markdown messages to the WeChat account bound
// to the SendKey.
type ServerChanSender struct {
	cfg    Config
	client *http.Client
}

// NewServerChanSender creates a ServerChanSender with the given
// configuration and HTTP client.
func NewServerChanSender(cfg Config, client *http.Client) *ServerChanSender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sctapi.ftqq.com"
	}
	return &ServerChanSender{cfg: cfg, client: client}
}

// serverChanResponse is the push API answer; code 0 means delivered.
type serverChanResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send posts a markdown message. ServerChan renders markdown with double
// newlines, so single newlines are expanded before sending.
func (s *ServerChanSender) Send(ctx context.Context, title, content string) error {
	if s.cfg.Key == "" {
		return fmt.Errorf("serverchan: SendKey is not configured")
	}

	form := url.Values{}
	form.Set("title", title)
	form.Set("desp", strings.ReplaceAll(content, "\n", "\n\n"))

	u := fmt.Sprintf("%s/%s.send", s.cfg.BaseURL, s.cfg.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("serverchan: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("serverchan: send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("serverchan: http status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("serverchan: read response: %w", err)
	}
	var out serverChanResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("serverchan: decode response: %w", err)
	}
	if out.Code != 0 {
		return fmt.Errorf("serverchan: push rejected: %s", out.Message)
	}
	return nil
}
