package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/clinicsvc/domain"
)

// ThrottleConfig bounds failed logins per identifier
type ThrottleConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// RedisLoginThrottle implements domain.LoginThrottle with a Redis counter per identifier
type RedisLoginThrottle struct {
	redisClient *redis.Client
	config      ThrottleConfig
}

// NewLoginThrottle creates a Redis-backed login throttle
func NewLoginThrottle(redisClient *redis.Client, config ThrottleConfig) domain.LoginThrottle {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	if config.Window <= 0 {
		config.Window = 15 * time.Minute
	}
	return &RedisLoginThrottle{
		redisClient: redisClient,
		config:      config,
	}
}

func attemptsKey(identifier string) string {
	return fmt.Sprintf("login:att:%s", strings.ToLower(strings.TrimSpace(identifier)))
}

// Allow implements domain.LoginThrottle
func (t *RedisLoginThrottle) Allow(ctx context.Context, identifier string) (bool, error) {
	attempts, err := t.redisClient.Get(ctx, attemptsKey(identifier)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return attempts < t.config.MaxAttempts, nil
}

// RecordFailure implements domain.LoginThrottle
func (t *RedisLoginThrottle) RecordFailure(ctx context.Context, identifier string) error {
	key := attemptsKey(identifier)

	// Increment attempts counter atomically
	attempts, err := t.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment login attempts: %w", err)
	}

	// The window starts at the first failure
	if attempts == 1 {
		if err := t.redisClient.Expire(ctx, key, t.config.Window).Err(); err != nil {
			return fmt.Errorf("failed to set login attempts window: %w", err)
		}
	}
	return nil
}

// Reset implements domain.LoginThrottle
func (t *RedisLoginThrottle) Reset(ctx context.Context, identifier string) error {
	if err := t.redisClient.Del(ctx, attemptsKey(identifier)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}
