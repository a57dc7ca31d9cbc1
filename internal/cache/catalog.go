package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"eventscout/internal/domain"
)

// DefaultTTL bounds how long catalog responses are served from cache.
const DefaultTTL = 10 * time.Minute

// NewRedisClient connects to Redis using a connection URL
// (e.g. redis://localhost:6379/0) and verifies the connection.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

type catalogCache struct {
	next   domain.CatalogClient
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalogCache wraps a CatalogClient with a read-through Redis cache.
// Cache failures are logged and fall through to the live catalog; a cache
// outage never fails a request.
func NewCatalogCache(next domain.CatalogClient, client *redis.Client, ttl time.Duration, logger *slog.Logger) domain.CatalogClient {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &catalogCache{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *catalogCache) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	key := "catalog:event:" + eventID
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var ev domain.Event
		if err := json.Unmarshal(data, &ev); err == nil {
			return &ev, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("catalog cache read failed", "key", key, "err", err)
	}

	ev, err := c.next.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, ev)
	return ev, nil
}

func (c *catalogCache) SearchEvents(ctx context.Context, filters domain.SearchFilters) ([]*domain.Event, error) {
	key := "catalog:search:" + SearchKey(filters)
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var events []*domain.Event
		if err := json.Unmarshal(data, &events); err == nil {
			return events, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("catalog cache read failed", "key", key, "err", err)
	}

	events, err := c.next.SearchEvents(ctx, filters)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, events)
	return events, nil
}

func (c *catalogCache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", "key", key, "err", err)
	}
}

// SearchKey derives a stable cache key suffix from the search filters.
func SearchKey(f domain.SearchFilters) string {
	parts := strings.Join([]string{
		f.CountryCode, f.City, f.Category, f.Keyword, strconv.Itoa(f.Size), f.Sort,
	}, "|")
	sum := sha256.Sum256([]byte(parts))
	return hex.EncodeToString(sum[:])
}
