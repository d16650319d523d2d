package retry

import (
	"testing"
	"time"
)

func TestExponentialBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 100 * time.Millisecond},  // base * 2^0 = 100ms
		{1, 200 * time.Millisecond},  // base * 2^1 = 200ms
		{2, 400 * time.Millisecond},  // base * 2^2 = 400ms
		{3, 800 * time.Millisecond},  // base * 2^3 = 800ms
		{4, 1600 * time.Millisecond}, // base * 2^4 = 1600ms
	}

	for _, tt := range tests {
		result := ExponentialBackoff(tt.attempt, base)
		if result != tt.expected {
			t.Errorf("attempt %d: got %v, want %v", tt.attempt, result, tt.expected)
		}
	}
}

func TestCapped(t *testing.T) {
	base := 1 * time.Second
	max := 3 * time.Second

	if got := Capped(1, base, max); got != 2*time.Second {
		t.Errorf("got %v, want 2s", got)
	}
	if got := Capped(5, base, max); got != max {
		t.Errorf("got %v, want cap %v", got, max)
	}
}
