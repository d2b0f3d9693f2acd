package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzadesk/analytics-svc/internal/domain"
	"pizzadesk/analytics-svc/internal/mocks"
	"pizzadesk/analytics-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	tenantID := uuid.New()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
	before := start.Add(-time.Hour)

	tests := []struct {
		name        string
		window      domain.Window
		storeWindow domain.Window
		stored      domain.Stats
		storeErr    error
		want        domain.Stats
		wantErr     error
		skipStore   bool
	}{
		{
			name:        "rounds money and minutes",
			window:      domain.Window{Start: &start, End: &end},
			storeWindow: domain.Window{Start: &start, End: &end},
			stored: domain.Stats{
				TotalOrders:                3,
				TotalRevenue:               decimal.RequireFromString("100.005"),
				AverageOrderValue:          decimal.RequireFromString("33.33500"),
				AverageDeliveryTimeMinutes: 35.0049,
			},
			want: domain.Stats{
				TotalOrders:                3,
				TotalRevenue:               decimal.RequireFromString("100.01"),
				AverageOrderValue:          decimal.RequireFromString("33.34"),
				AverageDeliveryTimeMinutes: 35,
			},
		},
		{
			name:        "end date alone is ignored",
			window:      domain.Window{End: &end},
			storeWindow: domain.Window{},
			stored:      domain.Stats{TotalRevenue: decimal.Zero, AverageOrderValue: decimal.Zero},
			want:        domain.Stats{TotalRevenue: decimal.Zero, AverageOrderValue: decimal.Zero},
		},
		{
			name:      "end before start",
			window:    domain.Window{Start: &start, End: &before},
			wantErr:   domain.ErrValidation,
			skipStore: true,
		},
		{
			name:        "store failure",
			window:      domain.Window{},
			storeWindow: domain.Window{},
			storeErr:    errors.New("connection reset"),
			wantErr:     errors.New("order stats: connection reset"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStatsStore(t)
			if !testCase.skipStore {
				store.On("OrderStats", mock.Anything, tenantID, testCase.storeWindow).
					Return(testCase.stored, testCase.storeErr).Once()
			}
			svc := service.NewAnalyticsService(store, nil)

			got, err := svc.ComputeStats(context.Background(), domain.StatsQuery{TenantID: tenantID, Window: testCase.window})
			if testCase.wantErr != nil {
				require.Error(t, err)
				if errors.Is(testCase.wantErr, domain.ErrValidation) {
					assert.ErrorIs(t, err, domain.ErrValidation)
				} else {
					assert.EqualError(t, err, testCase.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want.TotalOrders, got.TotalOrders)
			assert.True(t, testCase.want.TotalRevenue.Equal(got.TotalRevenue), got.TotalRevenue.String())
			assert.True(t, testCase.want.AverageOrderValue.Equal(got.AverageOrderValue), got.AverageOrderValue.String())
			assert.InDelta(t, testCase.want.AverageDeliveryTimeMinutes, got.AverageDeliveryTimeMinutes, 0.0001)
		})
	}
}

func TestComputeStatsRequiresTenant(t *testing.T) {
	svc := service.NewAnalyticsService(mocks.NewStatsStore(t), nil)
	_, err := svc.ComputeStats(context.Background(), domain.StatsQuery{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPopularItems(t *testing.T) {
	tenantID := uuid.New()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	fromDB := []domain.PopularItem{{Name: "Calabresa", SalesCount: 5}, {Name: "Margherita", SalesCount: 1}}

	type board struct {
		counted  int64
		countErr error
		items    []domain.PopularItem
		itemsErr error
		read     bool
	}
	type orders struct {
		total    int64
		totalErr error
		counted  bool
		items    []domain.PopularItem
		itemsErr error
		read     bool
	}

	tests := []struct {
		name      string
		query     domain.PopularQuery
		board     board
		orders    orders
		want      []domain.PopularItem
		wantError bool
	}{
		{
			name:  "complete leaderboard ranks with name tie break",
			query: domain.PopularQuery{TenantID: tenantID},
			board: board{counted: 3, read: true, items: []domain.PopularItem{
				{Name: "Pepperoni", SalesCount: 4},
				{Name: "Margherita", SalesCount: 7},
				{Name: "Hawaiian", SalesCount: 4},
			}},
			orders: orders{total: 3, counted: true},
			want: []domain.PopularItem{
				{Name: "Margherita", SalesCount: 7},
				{Name: "Hawaiian", SalesCount: 4},
				{Name: "Pepperoni", SalesCount: 4},
			},
		},
		{
			name:   "leaderboard missing orders defers to database",
			query:  domain.PopularQuery{TenantID: tenantID},
			board:  board{counted: 1},
			orders: orders{total: 2, counted: true, read: true, items: fromDB},
			want:   fromDB,
		},
		{
			name:   "daily leaderboard behind database",
			query:  domain.PopularQuery{TenantID: tenantID, Day: &day},
			board:  board{counted: 0},
			orders: orders{total: 1, counted: true, read: true, items: []domain.PopularItem{{Name: "Margherita", SalesCount: 2}}},
			want:   []domain.PopularItem{{Name: "Margherita", SalesCount: 2}},
		},
		{
			name:   "leaderboard error falls back to database",
			query:  domain.PopularQuery{TenantID: tenantID},
			board:  board{countErr: errors.New("redis down")},
			orders: orders{read: true, items: []domain.PopularItem{{Name: "Diavola", SalesCount: 1}}},
			want:   []domain.PopularItem{{Name: "Diavola", SalesCount: 1}},
		},
		{
			name:   "order count error falls back to database",
			query:  domain.PopularQuery{TenantID: tenantID},
			board:  board{counted: 2},
			orders: orders{totalErr: errors.New("timeout"), counted: true, read: true, items: fromDB},
			want:   fromDB,
		},
		{
			name:   "leaderboard read error after matching counts",
			query:  domain.PopularQuery{TenantID: tenantID},
			board:  board{counted: 2, read: true, itemsErr: errors.New("redis down")},
			orders: orders{total: 2, counted: true, read: true, items: fromDB},
			want:   fromDB,
		},
		{
			name:  "limit truncates",
			query: domain.PopularQuery{TenantID: tenantID, Limit: 1},
			board: board{counted: 2, read: true, items: []domain.PopularItem{
				{Name: "A", SalesCount: 1},
				{Name: "B", SalesCount: 9},
			}},
			orders: orders{total: 2, counted: true},
			want:   []domain.PopularItem{{Name: "B", SalesCount: 9}},
		},
		{
			name:  "non-positive counts are dropped",
			query: domain.PopularQuery{TenantID: tenantID},
			board: board{counted: 1, read: true, items: []domain.PopularItem{
				{Name: "Ghost", SalesCount: 0},
				{Name: "Real", SalesCount: 3},
			}},
			orders: orders{total: 1, counted: true},
			want:   []domain.PopularItem{{Name: "Real", SalesCount: 3}},
		},
		{
			name:      "database failure",
			query:     domain.PopularQuery{TenantID: tenantID},
			board:     board{counted: 0},
			orders:    orders{total: 4, counted: true, read: true, itemsErr: errors.New("timeout")},
			wantError: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStatsStore(t)
			leaderboard := mocks.NewLeaderboardReader(t)
			queryDay := testCase.query.Day

			leaderboard.On("CountedOrders", mock.Anything, tenantID, queryDay).
				Return(testCase.board.counted, testCase.board.countErr).Once()
			if testCase.board.read {
				leaderboard.On("PopularItems", mock.Anything, tenantID, queryDay).
					Return(testCase.board.items, testCase.board.itemsErr).Once()
			}
			if testCase.orders.counted {
				store.On("OrderCount", mock.Anything, tenantID, queryDay).
					Return(testCase.orders.total, testCase.orders.totalErr).Once()
			}
			if testCase.orders.read {
				store.On("PopularItems", mock.Anything, tenantID, queryDay).
					Return(testCase.orders.items, testCase.orders.itemsErr).Once()
			}
			svc := service.NewAnalyticsService(store, leaderboard)

			got, err := svc.PopularItems(context.Background(), testCase.query)
			if testCase.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestPopularItemsLimits(t *testing.T) {
	tenantID := uuid.New()
	many := make([]domain.PopularItem, 0, 150)
	for i := 0; i < 150; i++ {
		many = append(many, domain.PopularItem{Name: uuid.NewString(), SalesCount: int64(i + 1)})
	}

	t.Run("default is ten", func(t *testing.T) {
		store := mocks.NewStatsStore(t)
		store.On("PopularItems", mock.Anything, tenantID, (*time.Time)(nil)).Return(many, nil).Once()
		got, err := service.NewAnalyticsService(store, nil).PopularItems(context.Background(), domain.PopularQuery{TenantID: tenantID})
		require.NoError(t, err)
		assert.Len(t, got, service.DefaultPopularLimit)
		assert.Equal(t, int64(150), got[0].SalesCount)
	})

	t.Run("capped at maximum", func(t *testing.T) {
		store := mocks.NewStatsStore(t)
		store.On("PopularItems", mock.Anything, tenantID, (*time.Time)(nil)).Return(many, nil).Once()
		got, err := service.NewAnalyticsService(store, nil).PopularItems(context.Background(), domain.PopularQuery{TenantID: tenantID, Limit: 500})
		require.NoError(t, err)
		assert.Len(t, got, service.MaxPopularLimit)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := service.NewAnalyticsService(mocks.NewStatsStore(t), nil).PopularItems(context.Background(), domain.PopularQuery{TenantID: tenantID, Limit: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestIsMember(t *testing.T) {
	tenantID := uuid.New()
	store := mocks.NewStatsStore(t)
	store.On("IsTenantMember", mock.Anything, tenantID, "user-1").Return(true, nil).Once()
	svc := service.NewAnalyticsService(store, nil)

	ok, err := svc.IsMember(context.Background(), tenantID, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsMember(context.Background(), tenantID, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
