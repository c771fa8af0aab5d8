package llm

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
)

// ErrModelsExhausted is returned when every model in the chain failed with a
// retryable error.
var ErrModelsExhausted = errors.New("all models exhausted")

// StatusCode extracts the HTTP status of a provider error, or 0 when the
// error carries none.
func StatusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		return aerr.HTTPCode()
	}
	return 0
}

// IsRetryable reports whether err is a rate limit or a transient server
// failure worth retrying.
func IsRetryable(err error) bool {
	switch StatusCode(err) {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	}
	return false
}

// IsRateLimited reports whether err signals quota exhaustion or overload.
func IsRateLimited(err error) bool {
	code := StatusCode(err)
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

type callFunc func(ctx context.Context, model string) (string, error)

// retrier runs a call against each model of a chain in turn.
type retrier struct {
	models []string
	policy RetryPolicy
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() float64
	log    zerolog.Logger
}

func newRetrier(models []string, policy RetryPolicy, log zerolog.Logger) *retrier {
	return &retrier{
		models: models,
		policy: policy,
		sleep:  sleepContext,
		jitter: rand.Float64,
		log:    log,
	}
}

// do returns the first successful result. A non-retryable error stops the
// chain immediately; retryable errors are retried with backoff and then move
// on to the next model.
func (r *retrier) do(ctx context.Context, call callFunc) (string, error) {
	if len(r.models) == 0 {
		return "", fmt.Errorf("no model configured")
	}
	attempts := max(r.policy.MaxAttempts, 1)

	var lastErr error
	for _, model := range r.models {
		for attempt := 0; attempt < attempts; attempt++ {
			text, err := call(ctx, model)
			if err == nil {
				return text, nil
			}
			if !IsRetryable(err) {
				return "", fmt.Errorf("model %s: %w", model, err)
			}
			lastErr = err
			if attempt == attempts-1 {
				r.log.Warn().Str("model", model).Int("status", StatusCode(err)).
					Msg("retries exhausted, trying next model")
				break
			}
			delay := r.policy.Delay(attempt, r.jitter())
			r.log.Warn().Str("model", model).Int("status", StatusCode(err)).
				Int("attempt", attempt+1).Int("max_attempts", attempts).
				Dur("delay", delay).Msg("retrying model call")
			if err := r.sleep(ctx, delay); err != nil {
				return "", err
			}
		}
	}
	return "", fmt.Errorf("%w: %w", ErrModelsExhausted, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
