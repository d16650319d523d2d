package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/retry"
)

const maxBackoff = 10 * time.Second

// WithRetry wraps a Client with bounded retry and exponential backoff.
// The wrapped client keeps the one-shot contract; retry lives entirely at
// this boundary. attempts is the number of additional tries after the first
// call; attempts <= 0 returns next unchanged.
func WithRetry(next Client, attempts int, base time.Duration) Client {
	if attempts <= 0 {
		return next
	}
	return &retryClient{next: next, attempts: attempts, base: base}
}

type retryClient struct {
	next     Client
	attempts int
	base     time.Duration
}

func (c *retryClient) Generate(ctx context.Context, prompt string, attachment document.Payload, schema *Schema) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retry.Capped(attempt-1, c.base, maxBackoff)):
			}
		}
		out, err := c.next.Generate(ctx, prompt, attachment, schema)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, ErrNotInitialized) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d attempts: %w", c.attempts+1, lastErr)
}
