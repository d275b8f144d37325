package utils

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if limiter.Allow("10.0.0.1") {
		t.Error("request over the limit should be denied")
	}

	// Другой ключ считается отдельно
	if !limiter.Allow("10.0.0.2") {
		t.Error("request from another key should be allowed")
	}
}

func TestRateLimiterGetRemaining(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	if remaining := limiter.GetRemaining("10.0.0.1"); remaining != 2 {
		t.Errorf("got %d remaining, want 2", remaining)
	}

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	// Счетчик не уходит в минус даже после отклоненных запросов
	if remaining := limiter.GetRemaining("10.0.0.1"); remaining != 0 {
		t.Errorf("got %d remaining, want 0", remaining)
	}
}

func TestRateLimiterReset(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	limiter.Allow("10.0.0.1")
	if limiter.Allow("10.0.0.1") {
		t.Error("second request should be denied")
	}

	limiter.Reset("10.0.0.1")
	if !limiter.Allow("10.0.0.1") {
		t.Error("request after reset should be allowed")
	}
}
