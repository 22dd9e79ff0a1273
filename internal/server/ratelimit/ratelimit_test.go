package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: configs,
	})
}

func TestAllow_WithinLimit(t *testing.T) {
	l := newTestLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/cairo-version", "GET")
	assert.True(t, allowed)
	assert.True(t, info.Allowed)
}

func TestAllow_BurstExhaustion(t *testing.T) {
	l := newTestLimiter([]EndpointConfig{
		{Path: "/compile-to-sierra/", Method: "GET", Limit: 30, Window: time.Minute, Burst: 2},
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/compile-to-sierra/proj/a.cairo", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/compile-to-sierra/proj/a.cairo", "GET")
	assert.True(t, allowed)

	allowed, info := l.Allow("1.2.3.4", "/compile-to-sierra/proj/a.cairo", "GET")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := newTestLimiter([]EndpointConfig{
		{Path: "/compile-to-sierra/", Method: "GET", Limit: 30, Window: time.Minute, Burst: 1},
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/compile-to-sierra/a.cairo", "GET")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/compile-to-sierra/a.cairo", "GET")
	require.False(t, allowed)

	// A different client is unaffected.
	allowed, _ = l.Allow("5.6.7.8", "/compile-to-sierra/a.cairo", "GET")
	assert.True(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/compile-to-sierra/a.cairo", "GET")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name      string
		path      string
		method    string
		wantMatch bool
		wantLimit int
	}{
		{name: "sierra compile prefix", path: "/compile-to-sierra/proj/test.cairo", method: "GET", wantMatch: true, wantLimit: 30},
		{name: "save code prefix", path: "/save-code/proj/test.cairo", method: "POST", wantMatch: true, wantLimit: 120},
		{name: "version exact", path: "/cairo-version", method: "GET", wantMatch: true, wantLimit: 60},
		{name: "health unlimited", path: "/health", method: "GET", wantMatch: true, wantLimit: 0},
		{name: "unknown path", path: "/nope", method: "GET", wantMatch: false},
		{name: "wrong method", path: "/save-code/x.cairo", method: "GET", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if !tt.wantMatch {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestRemoveIdleBuckets(t *testing.T) {
	l := newTestLimiter(nil)
	defer l.Stop()

	l.Allow("1.2.3.4", "/cairo-version", "GET")
	require.Len(t, l.buckets, 1)

	// Fresh buckets survive cleanup.
	l.removeIdleBuckets()
	assert.Len(t, l.buckets, 1)
}
