package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

const feedKey = "foods:feed"

// FeedCacheStore caches the food feed listing in Redis. Counters change on
// every toggle, so the feed entry is invalidated rather than patched.
type FeedCacheStore struct {
	rdb     *redis.Client
	feedTTL time.Duration
}

func NewFeedCacheStore(rdb *redis.Client) *FeedCacheStore {
	return &FeedCacheStore{
		rdb:     rdb,
		feedTTL: 5 * time.Minute,
	}
}

func (c *FeedCacheStore) GetFeed(ctx context.Context) ([]entity.Food, bool, error) {
	b, err := c.rdb.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var foods []entity.Food
	if err := json.Unmarshal(b, &foods); err != nil {
		return nil, false, nil
	}
	return foods, true, nil
}

func (c *FeedCacheStore) SetFeed(ctx context.Context, foods []entity.Food) error {
	data, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, feedKey, data, c.feedTTL).Err()
}

func (c *FeedCacheStore) InvalidateFeed(ctx context.Context) error {
	return c.rdb.Del(ctx, feedKey).Err()
}
