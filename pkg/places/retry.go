package places

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"time"
)

// statusError is a non-200 upstream response.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d", e.code)
}

// retryPolicy retries transient upstream failures with doubling backoff and
// a little jitter. Context cancellation stops retries immediately.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
}

func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || ctx.Err() != nil || !transient(err) {
			return err
		}
		if attempt >= p.attempts-1 {
			return err
		}

		delay := p.backoff << attempt
		delay += time.Duration(rand.Int63n(int64(delay)/4 + 1))
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}

// transient reports whether err is worth retrying: a throttling or
// server-side HTTP status, or a network timeout.
func transient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		switch se.code {
		case 408, 429:
			return true
		}
		return se.code >= 500
	}

	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
