package capture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRetryConfigDelayGrowsAndCaps(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries:    5,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      300 * time.Millisecond,
		BackoffFactor: 2.0,
		Jitter:        false,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 300 * time.Millisecond}, // would be 400ms uncapped
		{5, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := cfg.delay(tt.attempt); got != tt.want {
			t.Errorf("delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryConfigDelayJitterStaysWithinBounds(t *testing.T) {
	cfg := RetryConfig{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 1.0, Jitter: true}
	for i := 0; i < 50; i++ {
		d := cfg.delay(0)
		if d < 90*time.Millisecond || d > 110*time.Millisecond {
			t.Fatalf("delay(0) = %v, want within +/-10%% of 100ms", d)
		}
	}
}

func TestIsRetryableOpenError(t *testing.T) {
	if isRetryableOpenError(nil) {
		t.Errorf("nil error should not be retryable")
	}

	_, statErr := os.Stat(filepath.Join(t.TempDir(), "does-not-exist"))
	if !isRetryableOpenError(statErr) {
		t.Errorf("ENOENT should be retryable, got isRetryableOpenError = false for %v", statErr)
	}

	if isRetryableOpenError(errors.New("boom")) {
		t.Errorf("an opaque error should not be treated as retryable")
	}
}

func TestCircuitBreakerTripsAndRecovers(t *testing.T) {
	cb := &CircuitBreaker{FailureThreshold: 3, RecoveryTimeout: 20 * time.Millisecond}

	for i := 0; i < 2; i++ {
		if !cb.allow() {
			t.Fatalf("breaker should allow before the threshold is reached")
		}
		cb.recordFailure()
	}
	if !cb.allow() {
		t.Fatalf("breaker should still be closed after 2 failures")
	}
	cb.recordFailure()
	if cb.allow() {
		t.Fatalf("breaker should be open immediately after the 3rd failure")
	}

	time.Sleep(30 * time.Millisecond)
	if !cb.allow() {
		t.Fatalf("breaker should move to half-open once RecoveryTimeout elapses")
	}

	cb.recordSuccess()
	if !cb.allow() {
		t.Fatalf("breaker should be closed again after a successful probe")
	}
}

func TestResilientOpenSucceedsOnExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.bin")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := ResilientOpen(context.Background(), path, DefaultRetryConfig(), NewCircuitBreaker())
	if err != nil {
		t.Fatalf("ResilientOpen() error = %v", err)
	}
	defer f.Close()
}

func TestResilientOpenGivesUpOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")
	cfg := RetryConfig{MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1.0}

	_, err := ResilientOpen(context.Background(), path, cfg, NewCircuitBreaker())
	if err == nil {
		t.Fatalf("ResilientOpen() on a permanently missing file should eventually fail")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("err = %v, want an *IOError", err)
	}
}

func TestResilientOpenRespectsContextCancellation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")
	cfg := RetryConfig{MaxRetries: 10, InitialDelay: time.Hour, MaxDelay: time.Hour, BackoffFactor: 1.0}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResilientOpen(ctx, path, cfg, NewCircuitBreaker())
	if err == nil {
		t.Fatalf("ResilientOpen() with a cancelled context should fail immediately")
	}
}
