package capture

import (
	"context"
	"math"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
)

// RetryConfig configures the exponential backoff used by ResilientOpen.
// Capture files are sometimes still being flushed by a concurrently
// running recorder, so a transient "file not found" or "file busy" is
// worth a few retries rather than an immediate failure.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	Jitter        bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		Jitter:        true,
	}
}

func (c RetryConfig) delay(attempt int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(c.BackoffFactor, float64(attempt))
	if d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	if c.Jitter {
		d += d * 0.1 * (rand.Float64() - 0.5)
	}
	return time.Duration(d)
}

func isRetryableOpenError(err error) bool {
	if err == nil {
		return false
	}
	if os.IsNotExist(err) || os.IsPermission(err) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "busy") || strings.Contains(msg, "temporarily unavailable")
}

// breakerState mirrors sims.CircuitBreaker's closed/open/half-open cycle,
// scoped down to the single operation ResilientOpen guards.
type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

// CircuitBreaker trips after repeated open failures and holds the calling
// goroutine off the filesystem for RecoveryTimeout before letting a
// single probing attempt through.
type CircuitBreaker struct {
	FailureThreshold int
	RecoveryTimeout  time.Duration

	mu              sync.Mutex
	state           breakerState
	failures        int
	lastFailureTime time.Time
}

func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{FailureThreshold: 3, RecoveryTimeout: 10 * time.Second}
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case breakerOpen:
		if time.Since(cb.lastFailureTime) >= cb.RecoveryTimeout {
			cb.state = breakerHalfOpen
			return true
		}
		return false
	default:
		return true
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = breakerClosed
	cb.failures = 0
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures++
	cb.lastFailureTime = time.Now()
	if cb.failures >= cb.FailureThreshold {
		cb.state = breakerOpen
	}
}

// ResilientOpen opens the named capture file, retrying transient
// failures with exponential backoff and giving up early once the
// breaker has tripped, instead of burning the full retry budget against
// a file that plainly isn't coming back.
func ResilientOpen(ctx context.Context, path string, retry RetryConfig, breaker *CircuitBreaker) (*os.File, error) {
	var lastErr error

	for attempt := 0; attempt <= retry.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ioError(ctx.Err())
		default:
		}

		if !breaker.allow() {
			return nil, ioError(lastErr)
		}

		f, err := os.Open(path)
		if err == nil {
			breaker.recordSuccess()
			return f, nil
		}

		lastErr = err
		breaker.recordFailure()

		if !isRetryableOpenError(err) {
			return nil, ioError(err)
		}
		if attempt == retry.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ioError(ctx.Err())
		case <-time.After(retry.delay(attempt)):
		}
	}

	return nil, ioError(lastErr)
}
