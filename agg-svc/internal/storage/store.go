package storage

import (
	"context"
	"time"

	"pizzadesk/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const processedTTL = 7 * 24 * time.Hour

// Store maintains the popular-item sorted sets read by analytics-svc.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// MarkProcessed returns false when the order was already counted.
func (s *Store) MarkProcessed(ctx context.Context, orderID uuid.UUID) (bool, error) {
	return s.rdb.SetNX(ctx, "analytics:processed:"+orderID.String(), 1, processedTTL).Result()
}

// Unmark lets a redelivered event be counted again after a failed write.
func (s *Store) Unmark(ctx context.Context, orderID uuid.UUID) error {
	return s.rdb.Del(ctx, "analytics:processed:"+orderID.String()).Err()
}

// IncrementItems folds one order into the all-time and daily sets and bumps
// their order counters, all in one MULTI block.
func (s *Store) IncrementItems(ctx context.Context, tenantID uuid.UUID, day time.Time, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}
	tenant := tenantID.String()
	allTimeKey := config.PopularItemsKey(tenant)
	dailyKey := config.DailyPopularItemsKey(day, tenant)
	dailyCountKey := config.DailyCountedOrdersKey(day, tenant)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for name, n := range counts {
			pipe.ZIncrBy(ctx, allTimeKey, float64(n), name)
			pipe.ZIncrBy(ctx, dailyKey, float64(n), name)
		}
		pipe.Incr(ctx, config.CountedOrdersKey(tenant))
		pipe.Incr(ctx, dailyCountKey)
		pipe.Expire(ctx, dailyKey, config.DailyPopularItemsTTL)
		pipe.Expire(ctx, dailyCountKey, config.DailyPopularItemsTTL)
		return nil
	})
	return err
}
