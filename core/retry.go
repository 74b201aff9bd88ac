package core

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds a retried operation: a total attempt count and a
// fixed sleep between attempts. The zero value means a single attempt
// with no sleep. Policies are values; substitute a zero-interval policy
// in tests to avoid waiting.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts uint64
	// Interval is the fixed delay between attempts.
	Interval time.Duration
}

// DefaultRetryPolicy matches the propagation window observed for newly
// published layers: six attempts, three seconds apart.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 6, Interval: 3 * time.Second}

// BackOff returns the policy as a backoff strategy.
func (p RetryPolicy) BackOff() backoff.BackOff {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), attempts-1)
}
