package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// RetryPolicy controls the retry-with-backoff behavior of GetWithRetry.
// The defaults (two retries, 1s then 2s) are tunable per call site.
type RetryPolicy struct {
	MaxRetries int           // retries after the first attempt
	BaseDelay  time.Duration // doubled on each subsequent retry
}

// DefaultRetryPolicy retries twice with a 1s/2s backoff.
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 2, BaseDelay: time.Second}

// GetWithRetry performs a GET against the URL and returns the response
// body. Transient conditions - connection errors, timeouts, and HTTP
// error statuses - are retried with exponential backoff; anything the
// upstream answers with 200 (including "no data" API payloads) is
// returned to the caller for interpretation. Failed attempts are not
// surfaced once a later attempt succeeds.
func GetWithRetry(ctx context.Context, client *http.Client, url string, p RetryPolicy) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := p.BaseDelay << (attempt - 1) // 1s, 2s, ...
			slog.Warn("retrying request", "attempt", attempt, "max", p.MaxRetries, "wait", wait, "error", lastErr)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := doGet(ctx, client, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func doGet(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// Some public quote endpoints reject requests without a browser UA.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// Drain so the connection can be reused across retries.
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("http status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
