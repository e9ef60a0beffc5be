package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

const tariffKeyPrefix = "bandeira:"

// TariffCache keeps tariff records in Redis as JSON under bandeira:<id>.
type TariffCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTariffCache(rdb *redis.Client, ttl time.Duration) *TariffCache {
	return &TariffCache{rdb: rdb, ttl: ttl}
}

func tariffKey(id int64) string { return fmt.Sprintf("%s%d", tariffKeyPrefix, id) }

// Get returns the cached tariff, or nil when it is not cached.
func (c *TariffCache) Get(ctx context.Context, id int64) (*domain.Tariff, error) {
	raw, err := c.rdb.Get(ctx, tariffKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get tariff %d: %w", id, err)
	}
	var t domain.Tariff
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode cached tariff %d: %w", id, err)
	}
	return &t, nil
}

func (c *TariffCache) Set(ctx context.Context, t *domain.Tariff) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, tariffKey(t.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set tariff %d: %w", t.ID, err)
	}
	return nil
}

func (c *TariffCache) Invalidate(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, tariffKey(id)).Err()
}
