package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("192.0.2.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("192.0.2.1"))
}

func TestIPRateLimiterIsolatesIPs(t *testing.T) {
	rl := NewIPRateLimiter(1, time.Minute)

	require.True(t, rl.Allow("192.0.2.1"))
	require.False(t, rl.Allow("192.0.2.1"))
	assert.True(t, rl.Allow("192.0.2.2"))
}

func TestIPRateLimiterWindowExpiry(t *testing.T) {
	rl := NewIPRateLimiter(1, 20*time.Millisecond)

	require.True(t, rl.Allow("192.0.2.1"))
	require.False(t, rl.Allow("192.0.2.1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("192.0.2.1"))
}
