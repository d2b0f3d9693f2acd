package service

import (
	"context"
	"time"

	"pizzadesk/analytics-svc/internal/domain"
	"pizzadesk/analytics-svc/internal/storage"

	"github.com/google/uuid"
)

type StatsStore interface {
	OrderStats(ctx context.Context, tenantID uuid.UUID, window domain.Window) (domain.Stats, error)
	PopularItems(ctx context.Context, tenantID uuid.UUID, day *time.Time) ([]domain.PopularItem, error)
	OrderCount(ctx context.Context, tenantID uuid.UUID, day *time.Time) (int64, error)
	IsTenantMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error)
}

type LeaderboardReader interface {
	PopularItems(ctx context.Context, tenantID uuid.UUID, day *time.Time) ([]domain.PopularItem, error)
	CountedOrders(ctx context.Context, tenantID uuid.UUID, day *time.Time) (int64, error)
}

type AnalyticsInterface interface {
	ComputeStats(ctx context.Context, q domain.StatsQuery) (domain.Stats, error)
	PopularItems(ctx context.Context, q domain.PopularQuery) ([]domain.PopularItem, error)
	IsMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error)
}

var (
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ StatsStore         = (*storage.PostgresStore)(nil)
	_ LeaderboardReader  = (*storage.Leaderboard)(nil)
)
