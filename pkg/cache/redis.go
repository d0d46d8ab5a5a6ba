package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the Redis client used for the forecast cache and OTP store.
type RedisClient struct {
	Client *redis.Client
}

// NewRedis creates a new Redis client.
func NewRedis(addr, password string, db int) *RedisClient {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisClient{Client: rdb}
}

// NewRedisFromClient wraps an existing client. Used by tests with miniredis.
func NewRedisFromClient(client *redis.Client) *RedisClient {
	return &RedisClient{Client: client}
}

// Ping tests the Redis connection.
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// --- OTPStore implementation ---

const otpKeyPrefix = "farmease:otp:"

// PutOTP stores a one-time code for the username with the given TTL.
func (c *RedisClient) PutOTP(ctx context.Context, username, code string, ttl time.Duration) error {
	return c.Client.Set(ctx, otpKeyPrefix+username, code, ttl).Err()
}

// GetOTP retrieves the one-time code for the username. Missing or expired codes
// return an empty string and no error.
func (c *RedisClient) GetOTP(ctx context.Context, username string) (string, error) {
	val, err := c.Client.Get(ctx, otpKeyPrefix+username).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteOTP removes the one-time code for the username.
func (c *RedisClient) DeleteOTP(ctx context.Context, username string) error {
	return c.Client.Del(ctx, otpKeyPrefix+username).Err()
}

// --- ForecastCache implementation ---

const forecastKeyPrefix = "farmease:forecast:"

// GetForecast retrieves a cached provider payload. The boolean reports a hit.
func (c *RedisClient) GetForecast(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.Client.Get(ctx, forecastKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// PutForecast caches a provider payload with the given TTL.
func (c *RedisClient) PutForecast(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, forecastKeyPrefix+key, payload, ttl).Err()
}
