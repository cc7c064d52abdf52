package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAllowHonoursBurstPerKey(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	rl.now = fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, wait := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestAllowRefillsOverTime(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = fixedClock(start)

	ok, _ := rl.Allow("k")
	assert.True(t, ok)
	ok, _ = rl.Allow("k")
	assert.False(t, ok)

	rl.now = fixedClock(start.Add(time.Second))
	ok, _ = rl.Allow("k")
	assert.True(t, ok)
}

func TestCleanupDropsIdleVisitors(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = fixedClock(start)
	rl.Allow("old")

	rl.now = fixedClock(start.Add(2 * time.Hour))
	rl.Allow("fresh")
	rl.Cleanup()

	assert.Equal(t, 1, rl.size())
}
