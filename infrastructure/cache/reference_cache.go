package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"jarayid-admin/domain/model"
	"jarayid-admin/infrastructure/logger"
)

const (
	categoriesKey = "reference:categories"

	// Reference data changes rarely; an hour keeps the legacy dashboard
	// API mostly out of the request path.
	defaultReferenceTTL = time.Hour
)

// ReferenceCache caches catalogue responses in Redis. With a nil client
// every lookup is a miss and every store is a no-op.
type ReferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReferenceCache(client *redis.Client) *ReferenceCache {
	return &ReferenceCache{client: client, ttl: defaultReferenceTTL}
}

func (c *ReferenceCache) GetCategories(ctx context.Context) ([]model.Category, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Reference cache read failed")
		}
		return nil, false
	}
	var categories []model.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Reference cache entry malformed, dropping")
		c.client.Del(ctx, categoriesKey)
		return nil, false
	}
	return categories, true
}

func (c *ReferenceCache) SetCategories(ctx context.Context, categories []model.Category) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, categoriesKey, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Reference cache write failed")
	}
}
