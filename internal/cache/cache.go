// Package cache keeps derived count tables in redis so repeated chart
// requests skip reloading the workbook.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// RedisClient is the subset of the redis client the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type TableCache struct {
	client RedisClient
	ttl    time.Duration
}

func New(client RedisClient, ttl time.Duration) *TableCache {
	return &TableCache{client: client, ttl: ttl}
}

// Open connects to the redis URL and verifies the connection.
func Open(ctx context.Context, url string, ttl time.Duration) (*TableCache, *redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, ttl), client, nil
}

func (c *TableCache) GetTable(ctx context.Context, key string) (*models.CountTable, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var table models.CountTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, false, fmt.Errorf("decode cached table %s: %w", key, err)
	}
	return &table, true, nil
}

func (c *TableCache) SetTable(ctx context.Context, key string, table *models.CountTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", key, err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
