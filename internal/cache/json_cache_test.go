package cache_test

import (
	"testing"
	"time"

	"waltgoat/walker-app/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type payload struct {
	Km    float64 `json:"km"`
	Steps int     `json:"passi"`
}

func TestJSONCache(t *testing.T) {
	c := cache.NewJSONCache(1, time.Minute)

	var got payload
	assert.False(t, c.Get("stats:user_1", &got))

	c.Set("stats:user_1", payload{Km: 3.5, Steps: 4200})
	require.True(t, c.Get("stats:user_1", &got))
	assert.Equal(t, payload{Km: 3.5, Steps: 4200}, got)

	c.Delete("stats:user_1")
	assert.False(t, c.Get("stats:user_1", &got))
}

func TestJSONCache_DecodeMismatchIsAMiss(t *testing.T) {
	c := cache.NewJSONCache(1, time.Minute)
	c.Set("k", "not an object")

	var got payload
	assert.False(t, c.Get("k", &got))
	// the bad entry is dropped
	var s string
	assert.False(t, c.Get("k", &s))
}

func TestJSONCache_SubSecondTTLExpires(t *testing.T) {
	c := cache.NewJSONCache(1, 500*time.Millisecond)
	c.Set("stats:user_1", payload{Km: 1})

	// rounded up to one second, never to "no expiry"
	time.Sleep(2100 * time.Millisecond)
	var got payload
	assert.False(t, c.Get("stats:user_1", &got))
}
