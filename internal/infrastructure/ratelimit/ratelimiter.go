// Package ratelimit throttles admin login attempts.
package ratelimit

import "context"

// Config caps attempts per sliding window. A zero limit disables that window.
type Config struct {
	PerMinute int
	PerHour   int
}

// RateLimiter answers whether an attempt identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopRateLimiter allows everything. Used when rate limiting is disabled or
// Redis is not configured.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() *NoopRateLimiter { return &NoopRateLimiter{} }

func (l *NoopRateLimiter) Allow(ctx context.Context, key string, config Config) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) Reset(ctx context.Context, key string) error { return nil }
