package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

type RecordCache struct {
	redis *redis.Client
}

func NewRecordCache(redis *redis.Client) *RecordCache {
	return &RecordCache{redis: redis}
}

func (c *RecordCache) GetRecords(ctx context.Context, key string) ([]models.GameRecord, error) {
	var records []models.GameRecord
	if err := c.get(ctx, recordsKey(key), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *RecordCache) SetRecords(ctx context.Context, key string, records []models.GameRecord, ttl time.Duration) error {
	normalized := make([]models.GameRecord, len(records))
	for i, r := range records {
		r.Date = r.Date.UTC()
		normalized[i] = r
	}
	return c.set(ctx, recordsKey(key), normalized, ttl)
}

func (c *RecordCache) GetOdds(ctx context.Context, sportKey string) (models.OddsPayload, error) {
	var payload models.OddsPayload
	if err := c.get(ctx, OddsKey(sportKey), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *RecordCache) SetOdds(ctx context.Context, sportKey string, payload models.OddsPayload, ttl time.Duration) error {
	return c.set(ctx, OddsKey(sportKey), payload, ttl)
}

func (c *RecordCache) get(ctx context.Context, key string, out any) error {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return derr.ErrNotFound
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal cached %s: %w", key, err)
	}

	return nil
}

func (c *RecordCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s for cache: %w", key, err)
	}

	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func recordsKey(key string) string {
	return "bet-tracker:" + key
}

func OddsKey(sportKey string) string {
	return "bet-tracker:odds:" + strings.ToLower(strings.TrimSpace(sportKey))
}
