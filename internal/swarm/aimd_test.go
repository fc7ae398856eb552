package swarm

import (
	"testing"
	"time"
)

func TestAIMD_Feedback(t *testing.T) {
	aimd := NewAIMD(10, 5, 20)

	if aimd.Concurrency() != 10 {
		t.Errorf("Expected initial concurrency 10, got %d", aimd.Concurrency())
	}

	// Additive increase. Need to wait > 100ms because of rate limiting.
	time.Sleep(110 * time.Millisecond)
	aimd.Feedback(false)
	if aimd.Concurrency() != 11 {
		t.Errorf("Expected concurrency 11 after success, got %d", aimd.Concurrency())
	}

	// Multiplicative decrease.
	time.Sleep(110 * time.Millisecond)
	aimd.Feedback(true)
	if aimd.Concurrency() != 5 {
		t.Errorf("Expected concurrency 5 after throttle, got %d", aimd.Concurrency())
	}

	// Min limit.
	time.Sleep(110 * time.Millisecond)
	aimd.Feedback(true)
	if aimd.Concurrency() < 5 {
		t.Errorf("Concurrency dropped below min limit: %d", aimd.Concurrency())
	}
}

func TestAIMD_FixedBoundIgnoresFeedback(t *testing.T) {
	aimd := NewAIMD(1, 1, 1)

	time.Sleep(110 * time.Millisecond)
	aimd.Feedback(true)
	if aimd.Concurrency() != 1 {
		t.Errorf("Fixed bound changed on throttle: %d", aimd.Concurrency())
	}

	time.Sleep(110 * time.Millisecond)
	aimd.Feedback(false)
	if aimd.Concurrency() != 1 {
		t.Errorf("Fixed bound changed on success: %d", aimd.Concurrency())
	}
}

func TestAIMD_ClampsStart(t *testing.T) {
	if got := NewAIMD(100, 5, 20).Concurrency(); got != 20 {
		t.Errorf("Expected start clamped to max 20, got %d", got)
	}
	if got := NewAIMD(1, 5, 20).Concurrency(); got != 5 {
		t.Errorf("Expected start clamped to min 5, got %d", got)
	}
}
