package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/logging"
)

// jitterFraction spreads retry delays by up to ±25% so gateway clients
// recovering from an outage do not retry in lockstep.
const jitterFraction = 0.25

// sendWithRetry issues the request up to maxAttempts times with
// exponential backoff between attempts. The body is captured once and
// rewound for each send. The response lands in *resp rather than a return
// value so the bodyclose linter can track ownership; closing it is the
// caller's job.
func (c *Client) sendWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := captureBody(req)
	if err != nil {
		return err
	}

	var lastErr error

	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.pauseBeforeRetry(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}

		rewindBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !retryableError(err) {
				return err
			}
			continue
		}

		if !retryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)

		// Out of attempts: hand the final response back, body intact.
		if attempt == c.retry.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		discardBody(r)
	}

	return lastErr
}

// captureBody drains and closes the request body so it can be replayed on
// retries. A nil body captures as nil.
func captureBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return body, nil
}

// rewindBody installs a fresh reader over the captured bytes. No-op for a
// nil capture.
func rewindBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discardBody drains and closes a response that will not be surfaced, so
// the underlying connection can be reused by the next attempt.
func discardBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// pauseBeforeRetry logs the upcoming retry and sleeps for the backoff
// delay, aborting early if the context ends first.
func (c *Client) pauseBeforeRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoffDelay(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoffDelay computes the wait before the attempt-th retry: exponential
// growth from initialInterval, capped at maxInterval, then jittered.
// attempt is 1-indexed.
func backoffDelay(attempt int, policy retryPolicy) time.Duration {
	delay := float64(policy.initialInterval) * math.Pow(policy.multiplier, float64(attempt-1))
	delay = min(delay, float64(policy.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*randomUnit() - 1)

	return time.Duration(max(delay, 0))
}

// IEEE 754 double-precision layout, used to turn random bits into a float.
const (
	significandBits = 53
	uint64Bits      = 64
)

// randomUnit returns a uniform float64 in [0, 1) backed by crypto/rand,
// which needs no seeding and no shared state.
func randomUnit() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// retryableError reports whether a transport error deserves another
// attempt. Cancellation and expired deadlines never do; timeouts, refused
// connections, and anything unclassifiable get one.
func retryableError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports whether a status code deserves another attempt:
// 5xx plus 429.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
