package storage

import (
	"context"
	"database/sql"
	"time"

	"pizzadesk/analytics-svc/internal/domain"

	"github.com/google/uuid"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// OrderStats aggregates in PostgreSQL. AVG skips NULLs, so orders without
// delivered_at do not count toward the delivery average.
func (s *PostgresStore) OrderStats(ctx context.Context, tenantID uuid.UUID, window domain.Window) (domain.Stats, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(AVG(total), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 60), 0)
		FROM orders
		WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	window = window.Normalize()
	switch {
	case window.Start != nil && window.End != nil:
		query += ` AND created_at >= $2 AND created_at <= $3`
		args = append(args, *window.Start, *window.End)
	case window.Start != nil:
		query += ` AND created_at >= $2`
		args = append(args, *window.Start)
	}

	var stats domain.Stats
	err := s.DB.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalOrders, &stats.TotalRevenue, &stats.AverageOrderValue, &stats.AverageDeliveryTimeMinutes)
	return stats, err
}

// PopularItems sums snapshot quantities by item name straight from the
// orders table.
func (s *PostgresStore) PopularItems(ctx context.Context, tenantID uuid.UUID, day *time.Time) ([]domain.PopularItem, error) {
	query := `
		SELECT item->>'name' AS name, SUM((item->>'quantity')::bigint) AS sales
		FROM orders, jsonb_array_elements(items) AS item
		WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	if day != nil {
		start := day.UTC().Truncate(24 * time.Hour)
		query += ` AND created_at >= $2 AND created_at < $3`
		args = append(args, start, start.Add(24*time.Hour))
	}
	query += ` GROUP BY name ORDER BY sales DESC, name ASC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.PopularItem{}
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.Name, &item.SalesCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// OrderCount counts the tenant's orders, all time or for one UTC day.
func (s *PostgresStore) OrderCount(ctx context.Context, tenantID uuid.UUID, day *time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	if day != nil {
		start := day.UTC().Truncate(24 * time.Hour)
		query += ` AND created_at >= $2 AND created_at < $3`
		args = append(args, start, start.Add(24*time.Hour))
	}

	var n int64
	err := s.DB.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func (s *PostgresStore) IsTenantMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM tenant_users
			WHERE tenant_id = $1 AND user_id = $2
		)
	`, tenantID, userID).Scan(&exists)
	return exists, err
}
