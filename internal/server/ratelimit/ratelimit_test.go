package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(config *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(config)
	l.now = clock.Now
	return l, clock
}

func TestLimiter_Allow(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{Enabled: true, DefaultRPS: 1, DefaultBurst: 10})
	defer limiter.Stop()

	// Should allow requests up to burst
	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 10-(i+1) {
			t.Errorf("Expected %d remaining, got %d", 10-(i+1), info.Remaining)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.RetryAfter <= 0 || info.RetryAfter > time.Second {
		t.Errorf("Expected retry after in (0, 1s], got %v", info.RetryAfter)
	}
}

func TestLimiter_Refill(t *testing.T) {
	limiter, clock := newTestLimiter(&Config{Enabled: true, DefaultRPS: 1, DefaultBurst: 2})
	defer limiter.Stop()

	limiter.Allow("c", "/x", "POST")
	limiter.Allow("c", "/x", "POST")
	if allowed, _ := limiter.Allow("c", "/x", "POST"); allowed {
		t.Fatal("Expected bucket to be empty")
	}

	clock.Advance(1100 * time.Millisecond)

	if allowed, _ := limiter.Allow("c", "/x", "POST"); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _ := limiter.Allow("c", "/x", "POST"); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestLimiter_ResetTime(t *testing.T) {
	limiter, clock := newTestLimiter(&Config{Enabled: true, DefaultRPS: 1, DefaultBurst: 10})
	defer limiter.Stop()

	var info Info
	for i := 0; i < 5; i++ {
		_, info = limiter.Allow("c", "/x", "GET")
	}
	if info.Remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", info.Remaining)
	}
	if want := clock.Now().Add(5 * time.Second); !info.ResetTime.Equal(want) {
		t.Errorf("Expected reset at %v, got %v", want, info.ResetTime)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("c", "/x", "GET"); !allowed {
			t.Fatalf("Expected request %d to be allowed when disabled", i+1)
		}
	}
}

func TestLimiter_WhitelistBlacklist(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:      true,
		DefaultRPS:   1,
		DefaultBurst: 1,
		Whitelist:    map[string]bool{"10.0.0.1": true},
		Blacklist:    map[string]bool{"10.0.0.2": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("10.0.0.1", "/x", "GET"); !allowed {
			t.Error("Expected whitelisted client to be allowed")
		}
	}
	if allowed, _ := limiter.Allow("10.0.0.2", "/x", "GET"); allowed {
		t.Error("Expected blacklisted client to be denied")
	}
}

func TestLimiter_PerClientAndEndpoint(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{Enabled: true, DefaultRPS: 1, DefaultBurst: 1})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("a", "/x", "GET"); !allowed {
		t.Error("Expected first request for client a")
	}
	if allowed, _ := limiter.Allow("b", "/x", "GET"); !allowed {
		t.Error("Expected client b to have its own bucket")
	}
	if allowed, _ := limiter.Allow("a", "/y", "GET"); !allowed {
		t.Error("Expected endpoint /y to have its own bucket")
	}
	if allowed, _ := limiter.Allow("a", "/x", "GET"); allowed {
		t.Error("Expected second request for a on /x to be denied")
	}
}

func TestLimiter_EndpointConfig(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:         true,
		DefaultRPS:      10,
		DefaultBurst:    10,
		EndpointConfigs: DefaultEndpointConfigs(10, 10),
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("c", "/resume/ingest", "POST"); !allowed {
			t.Errorf("Expected ingest request %d to be allowed", i+1)
		}
	}
	allowed, info := limiter.Allow("c", "/resume/ingest", "POST")
	if allowed {
		t.Error("Expected ingest burst of 5 to be exhausted")
	}
	if info.Limit != 5 {
		t.Errorf("Expected ingest limit 5, got %d", info.Limit)
	}

	// Health check is never limited
	for i := 0; i < 50; i++ {
		if allowed, _ := limiter.Allow("c", "/health", "GET"); !allowed {
			t.Fatal("Expected health check to be unlimited")
		}
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	limiter, clock := newTestLimiter(&Config{Enabled: true, DefaultRPS: 1, DefaultBurst: 1, IdleTimeout: time.Minute})
	defer limiter.Stop()

	limiter.Allow("old", "/x", "GET")
	clock.Advance(2 * time.Minute)
	limiter.Allow("new", "/x", "GET")

	limiter.cleanupBuckets()

	if got := limiter.Len(); got != 1 {
		t.Errorf("Expected 1 bucket after cleanup, got %d", got)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{Enabled: true, DefaultRPS: 0.001, DefaultBurst: 50})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("c", "/x", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 50 {
		t.Errorf("Expected exactly 50 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultRPS: 1, DefaultBurst: 1, CleanupInterval: time.Minute})
	limiter.Stop()
	limiter.Stop()
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyze", Method: "POST", RPS: 1},
		{Path: "/resume/", Method: "POST", RPS: 2},
		{Path: "/resume/ingest", Method: "POST", RPS: 3},
		{Path: "/health", Method: "GET", Unlimited: true},
	}

	tests := []struct {
		path, method  string
		wantRPS       float64
		wantUnlimited bool
		wantNil       bool
	}{
		{"/analyze", "POST", 1, false, false},
		{"/analyze/", "post", 1, false, false},
		{"/resume/ingest", "POST", 3, false, false},
		{"/resume/other", "POST", 2, false, false},
		{"/health", "GET", 0, true, false},
		{"/analyze", "GET", 0, false, true},
		{"/other", "POST", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a match")
			}
			if got.RPS != tt.wantRPS {
				t.Errorf("Expected RPS %v, got %v", tt.wantRPS, got.RPS)
			}
			if got.Unlimited != tt.wantUnlimited {
				t.Errorf("Expected Unlimited %v, got %v", tt.wantUnlimited, got.Unlimited)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")
	t.Setenv("RATE_LIMIT_CLEANUP_INTERVAL", "30s")

	cfg := LoadConfig(4, 8)
	if !cfg.Enabled {
		t.Fatal("Expected limiter to be enabled")
	}
	if cfg.CleanupInterval != 30*time.Second {
		t.Errorf("Expected 30s cleanup interval, got %v", cfg.CleanupInterval)
	}
	if !cfg.Whitelist["1.1.1.1"] || !cfg.Whitelist["2.2.2.2"] {
		t.Errorf("Expected both whitelist entries, got %v", cfg.Whitelist)
	}
	if len(cfg.EndpointConfigs) == 0 {
		t.Error("Expected endpoint configs")
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	if LoadConfig(4, 8).Enabled {
		t.Error("Expected RATE_LIMIT_ENABLED=false to disable the limiter")
	}

	t.Setenv("RATE_LIMIT_ENABLED", "true")
	if LoadConfig(0, 8).Enabled {
		t.Error("Expected zero rps to disable the limiter")
	}
}
