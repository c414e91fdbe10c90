package scan

import (
	"fmt"
	"sync"
	"time"

	"jobtracker/pkg/serrors"
)

// RateLimitedError is returned when a scan is requested inside the rate
// window. errors.Is matches it against serrors.ErrRateLimited; handlers read
// RetryAfter for the Retry-After header.
type RateLimitedError struct {
	// RetryAfter is how long the caller must wait before the next scan.
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("scan rate limited, retry in %s", e.RetryAfter.Round(time.Second))
}

// Is matches the error against the rate-limited category.
func (e *RateLimitedError) Is(target error) bool {
	return target == serrors.ErrRateLimited
}

// Limiter allows one scan per window, process-wide. For a single-user service
// this is sufficient without an external store. It is safe for concurrent use.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	last   time.Time
	now    func() time.Time
}

// NewLimiter creates a limiter that opens one scan slot per window.
func NewLimiter(window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		now:    time.Now,
	}
}

// Acquire tries to take the scan slot. When the slot is closed it reports
// false along with how long the caller must wait.
func (l *Limiter) Acquire() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !l.last.IsZero() {
		if elapsed := now.Sub(l.last); elapsed < l.window {
			return l.window - elapsed, false
		}
	}
	l.last = now

	return 0, true
}

// RetryAfter reports how long until the next slot opens without consuming it.
// Zero means a scan may start now.
func (l *Limiter) RetryAfter() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.last.IsZero() {
		return 0
	}
	if elapsed := l.now().Sub(l.last); elapsed < l.window {
		return l.window - elapsed
	}

	return 0
}

// Reset opens the next slot immediately. Useful in tests.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.last = time.Time{}
}
