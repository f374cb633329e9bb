package pipeline

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/textloom/textloom/pkg/ports"
)

// collaboratorRetries is the number of retries after the first attempt.
const collaboratorRetries = 2

// withRetry runs op with bounded, jittered exponential backoff (attempts at
// roughly 0s/1s/4s). Failures classified as permanent or unsupported stop
// immediately.
func withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.Multiplier = 4
	b.RandomizationFactor = 0.2
	b.MaxElapsedTime = 0

	return backoff.Retry(func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !ports.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, collaboratorRetries), ctx))
}
