package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"pizzadesk/analytics-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	DefaultPopularLimit = 10
	MaxPopularLimit     = 100
)

type AnalyticsService struct {
	store       StatsStore
	leaderboard LeaderboardReader
}

// NewAnalyticsService accepts a nil leaderboard; popular items then always
// come from PostgreSQL.
func NewAnalyticsService(store StatsStore, leaderboard LeaderboardReader) *AnalyticsService {
	return &AnalyticsService{store: store, leaderboard: leaderboard}
}

// ComputeStats reports count, revenue, average order value and average
// delivery duration for the window. An empty window is all zeros.
func (s *AnalyticsService) ComputeStats(ctx context.Context, q domain.StatsQuery) (domain.Stats, error) {
	if q.TenantID == uuid.Nil {
		return domain.Stats{}, &domain.ValidationError{Field: "tenantId", Reason: "is required"}
	}
	window := q.Window.Normalize()
	if window.Start != nil && window.End != nil && window.End.Before(*window.Start) {
		return domain.Stats{}, &domain.ValidationError{Field: "endDate", Reason: "must not be before startDate"}
	}

	stats, err := s.store.OrderStats(ctx, q.TenantID, window)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("order stats: %w", err)
	}
	stats.TotalRevenue = stats.TotalRevenue.Round(2)
	stats.AverageOrderValue = stats.AverageOrderValue.Round(2)
	stats.AverageDeliveryTimeMinutes = math.Round(stats.AverageDeliveryTimeMinutes*100) / 100
	return stats, nil
}

// PopularItems ranks items by units sold, ties broken by name. PostgreSQL
// is the source of truth; the Redis leaderboard is served only when it has
// counted exactly as many orders as the order table holds, so a dropped or
// skipped event never shortens the ranking.
func (s *AnalyticsService) PopularItems(ctx context.Context, q domain.PopularQuery) ([]domain.PopularItem, error) {
	if q.TenantID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "tenantId", Reason: "is required"}
	}
	limit := q.Limit
	switch {
	case limit == 0:
		limit = DefaultPopularLimit
	case limit < 0:
		return nil, &domain.ValidationError{Field: "limit", Reason: "must be positive"}
	case limit > MaxPopularLimit:
		limit = MaxPopularLimit
	}

	if items, ok := s.completeLeaderboard(ctx, q); ok {
		return rankItems(items, limit), nil
	}

	items, err := s.store.PopularItems(ctx, q.TenantID, q.Day)
	if err != nil {
		return nil, fmt.Errorf("popular items: %w", err)
	}
	return rankItems(items, limit), nil
}

func (s *AnalyticsService) completeLeaderboard(ctx context.Context, q domain.PopularQuery) ([]domain.PopularItem, bool) {
	if s.leaderboard == nil {
		return nil, false
	}
	counted, err := s.leaderboard.CountedOrders(ctx, q.TenantID, q.Day)
	if err != nil {
		log.Printf("Leaderboard unavailable for tenant %s, falling back to database: %v", q.TenantID, err)
		return nil, false
	}
	total, err := s.store.OrderCount(ctx, q.TenantID, q.Day)
	if err != nil {
		log.Printf("Order count failed for tenant %s: %v", q.TenantID, err)
		return nil, false
	}
	if counted != total {
		log.Printf("Leaderboard for tenant %s counted %d of %d orders, using database", q.TenantID, counted, total)
		return nil, false
	}
	items, err := s.leaderboard.PopularItems(ctx, q.TenantID, q.Day)
	if err != nil {
		log.Printf("Leaderboard unavailable for tenant %s, falling back to database: %v", q.TenantID, err)
		return nil, false
	}
	return items, true
}

func rankItems(items []domain.PopularItem, limit int) []domain.PopularItem {
	ranked := make([]domain.PopularItem, 0, len(items))
	for _, it := range items {
		if it.SalesCount > 0 {
			ranked = append(ranked, it)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SalesCount != ranked[j].SalesCount {
			return ranked[i].SalesCount > ranked[j].SalesCount
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *AnalyticsService) IsMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.store.IsTenantMember(ctx, tenantID, userID)
}
