package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/FarmEase/farmease_backend/pkg/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*cache.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewRedisFromClient(rdb), mr
}

func TestOTPRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.PutOTP(ctx, "ravi", "123456", time.Minute))

	code, err := c.GetOTP(ctx, "ravi")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	require.NoError(t, c.DeleteOTP(ctx, "ravi"))

	code, err = c.GetOTP(ctx, "ravi")
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestOTPExpiry(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.PutOTP(ctx, "ravi", "654321", time.Minute))
	mr.FastForward(2 * time.Minute)

	code, err := c.GetOTP(ctx, "ravi")
	require.NoError(t, err)
	assert.Empty(t, code, "expired OTP must read as missing")
}

func TestForecastCacheMiss(t *testing.T) {
	c, _ := newTestClient(t)

	payload, hit, err := c.GetForecast(context.Background(), "Pune:3")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, payload)
}

func TestForecastCacheHit(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	body := []byte(`{"location":{"name":"Pune"}}`)
	require.NoError(t, c.PutForecast(ctx, "Pune:3", body, time.Minute))

	payload, hit, err := c.GetForecast(ctx, "Pune:3")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, body, payload)
}
