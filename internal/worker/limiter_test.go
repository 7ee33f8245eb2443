package worker

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}

	l3 := NewLimiter(0, 1)
	if l3.defaultRate != rate.Inf {
		t.Errorf("expected unlimited rate for 0 rps, got %v", l3.defaultRate)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://static.openfoodfacts.org/data/export.csv"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "https://example.com"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "/relative/path"); err == nil {
		t.Error("expected error for url without host")
	}
}

func TestLimiter_PerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("http://example.com/a") {
		t.Error("first request should pass")
	}
	if limiter.Allow("http://EXAMPLE.com/b") {
		t.Error("second request to the same host should be limited")
	}
	if !limiter.Allow("http://other.com") {
		t.Error("other host should pass")
	}
}

func TestLimiter_ApplyCrawlDelay(t *testing.T) {
	limiter := NewLimiter(10, 10)
	url := "https://slow.example"

	if err := limiter.ApplyCrawlDelay(url, 10*time.Second); err != nil {
		t.Fatalf("ApplyCrawlDelay: %v", err)
	}
	if got := limiter.Rate(url); got != rate.Every(10*time.Second) {
		t.Errorf("rate = %v, want one per 10s", got)
	}

	if !limiter.Allow(url) {
		t.Error("first request should pass")
	}
	if limiter.Allow(url) {
		t.Error("second request should wait for the crawl delay")
	}

	// a shorter delay never speeds a host up
	_ = limiter.ApplyCrawlDelay(url, time.Second)
	if got := limiter.Rate(url); got != rate.Every(10*time.Second) {
		t.Errorf("rate loosened to %v", got)
	}

	if !limiter.Allow("https://fast.example") {
		t.Error("other host should pass")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	url := "http://example.com"
	_ = limiter.Wait(context.Background(), url)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, url); err == nil {
		t.Error("expected wait to fail once the context expires")
	}
}

func TestHostOf(t *testing.T) {
	host, err := hostOf("http://Example.com:8080/foo")
	if err != nil {
		t.Fatalf("hostOf failed: %v", err)
	}
	if host != "example.com:8080" {
		t.Errorf("expected example.com:8080, got %s", host)
	}

	if _, err := hostOf("::invalid"); err == nil {
		t.Errorf("expected error for invalid URL")
	}
}
