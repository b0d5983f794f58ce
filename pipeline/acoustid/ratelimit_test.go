package acoustid

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(false, 10, 1.0)

	// Should not block when disabled
	start := time.Now()
	err := rl.WaitIfNeeded(context.Background())
	duration := time.Since(start)

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if duration > 100*time.Millisecond {
		t.Error("Should not wait when disabled")
	}
}

func TestRateLimiter_Basic(t *testing.T) {
	rl := NewRateLimiter(true, 2, 1.0) // 2 requests per second

	// First two requests should not block
	start := time.Now()
	rl.WaitIfNeeded(context.Background())
	rl.WaitIfNeeded(context.Background())
	duration := time.Since(start)

	if duration > 100*time.Millisecond {
		t.Error("First requests should not block")
	}

	// Third request should block
	start = time.Now()
	rl.WaitIfNeeded(context.Background())
	duration = time.Since(start)

	if duration < 900*time.Millisecond {
		t.Errorf("Third request should block for ~1 second, blocked for %v", duration)
	}
}

func TestRateLimiter_ContextCancellation(t *testing.T) {
	rl := NewRateLimiter(true, 1, 5.0)

	// Fill the only slot
	rl.WaitIfNeeded(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rl.WaitIfNeeded(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Expected context error after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Error("WaitIfNeeded did not return after cancellation")
	}
}
