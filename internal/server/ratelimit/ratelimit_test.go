package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterAllow(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 3, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterPerClientBuckets(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	// a different client has its own bucket
	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed)
	}
}

func TestLimiterRefill(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: 50 * time.Millisecond})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(80 * time.Millisecond)
	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed, "bucket should refill after the window")
}

func TestEvictIdle(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Minute})
	defer l.Stop()

	l.Allow("client-a")
	l.mu.Lock()
	l.lastAccess["client-a"] = time.Now().Add(-time.Hour)
	l.mu.Unlock()

	l.evictIdle()

	l.mu.Lock()
	_, ok := l.buckets["client-a"]
	l.mu.Unlock()
	assert.False(t, ok)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 60, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
}
