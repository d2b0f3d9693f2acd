package storage

import (
	"context"
	"errors"
	"time"

	"pizzadesk/analytics-svc/internal/domain"
	"pizzadesk/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Leaderboard reads the popular-item sorted sets maintained by agg-svc.
type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: rdb}
}

// PopularItems returns every member of the tenant's set, unordered. An
// absent key yields an empty slice.
func (l *Leaderboard) PopularItems(ctx context.Context, tenantID uuid.UUID, day *time.Time) ([]domain.PopularItem, error) {
	key := config.PopularItemsKey(tenantID.String())
	if day != nil {
		key = config.DailyPopularItemsKey(*day, tenantID.String())
	}

	members, err := l.rdb.ZRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.PopularItem, 0, len(members))
	for _, m := range members {
		name, _ := m.Member.(string)
		items = append(items, domain.PopularItem{Name: name, SalesCount: int64(m.Score)})
	}
	return items, nil
}

// CountedOrders returns how many orders agg-svc has folded into the set
// PopularItems reads. An absent counter is zero.
func (l *Leaderboard) CountedOrders(ctx context.Context, tenantID uuid.UUID, day *time.Time) (int64, error) {
	key := config.CountedOrdersKey(tenantID.String())
	if day != nil {
		key = config.DailyCountedOrdersKey(*day, tenantID.String())
	}

	n, err := l.rdb.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
