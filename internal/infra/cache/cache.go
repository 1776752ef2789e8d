// Package cache provides a fail-safe Redis wrapper for report projections.
// Redis being down degrades reads to the database instead of failing requests.
package cache

import (
	"context"
	"time"

	"agora/config"

	"github.com/redis/go-redis/v9"
)

// DefaultReportTTL bounds staleness of cached report projections when no TTL
// is configured.
const DefaultReportTTL = time.Minute

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil Client behaves like an always-missing cache.
type Client struct {
	client    *redis.Client
	reportTTL time.Duration
}

// New creates a new Redis client from configuration. Returns nil when Redis
// is not configured, which callers treat as cache-off.
func New(cfg *config.Config) *Client {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil
	}

	ttl := cfg.Redis.ReportTTL
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}

	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	return &Client{client: redis.NewClient(opts), reportTTL: ttl}
}

// ReportTTL returns the configured TTL for cached reports.
func (c *Client) ReportTTL() time.Duration {
	if c == nil || c.reportTTL <= 0 {
		return DefaultReportTTL
	}

	return c.reportTTL
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}

	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}

	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}

	return nil
}
