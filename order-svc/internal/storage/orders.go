package storage

import (
	"context"
	"database/sql"
	"time"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, tenant_id, customer_id, order_number, status, items, subtotal, delivery_fee, total,
	payment_method, delivery_address, COALESCE(notes, ''), prepared_at, delivered_at, created_at, updated_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order       domain.Order
		preparedAt  sql.NullTime
		deliveredAt sql.NullTime
	)
	if err := row.Scan(&order.ID, &order.TenantID, &order.CustomerID, &order.OrderNumber, &order.Status,
		&order.Items, &order.Subtotal, &order.DeliveryFee, &order.Total, &order.PaymentMethod,
		&order.DeliveryAddress, &order.Notes, &preparedAt, &deliveredAt, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}
	if preparedAt.Valid {
		t := preparedAt.Time
		order.PreparedAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		order.DeliveredAt = &t
	}
	return &order, nil
}

// NextOrderNumber bumps the tenant's order counter. The row lock taken by
// the UPDATE serializes concurrent creators within one tenant.
func (r *txRepository) NextOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var seq int64
	err := r.q.QueryRowContext(ctx, `
		UPDATE tenants SET order_seq = order_seq + 1
		WHERE id = $1
		RETURNING order_seq
	`, tenantID).Scan(&seq)
	if err != nil {
		return "", notFoundOr(err, "tenant", tenantID.String())
	}
	return domain.FormatOrderNumber(seq), nil
}

func (r *txRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO orders (id, tenant_id, customer_id, order_number, status, items, subtotal, delivery_fee, total,
			payment_method, delivery_address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
	`, order.ID, order.TenantID, order.CustomerID, order.OrderNumber, order.Status, order.Items,
		order.Subtotal, order.DeliveryFee, order.Total, order.PaymentMethod, order.DeliveryAddress,
		nullString(order.Notes), order.CreatedAt)
	switch pqCode(err) {
	case pqForeignKeyViolation:
		return &domain.NotFoundError{Entity: "customer", ID: order.CustomerID.String()}
	case pqNumericOutOfRange:
		return &domain.ValidationError{Field: "total", Reason: "is out of range"}
	}
	return err
}

// IncrementCustomerAggregate adds one order and its total to the customer's
// running totals. The arithmetic happens in PostgreSQL so concurrent
// increments never overwrite each other.
func (r *txRepository) IncrementCustomerAggregate(ctx context.Context, tenantID, customerID uuid.UUID, total decimal.Decimal, at time.Time) (int64, error) {
	result, err := r.q.ExecContext(ctx, `
		UPDATE customers
		SET total_orders = total_orders + 1,
			total_spent = total_spent + $3,
			updated_at = $4
		WHERE id = $1 AND tenant_id = $2
	`, customerID, tenantID, total, at)
	if pqCode(err) == pqNumericOutOfRange {
		return 0, &domain.ValidationError{Field: "total", Reason: "would overflow the customer's total spent"}
	}
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, notFoundOr(err, "order", orderID.String())
	}
	return order, nil
}

// UpdateOrderStatus sets the status and stamps prepared_at/delivered_at
// only when they are still NULL, in a single statement.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.Status, at time.Time) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $2::text,
			updated_at = $3,
			prepared_at = CASE WHEN $2::text = 'ready' THEN COALESCE(prepared_at, $3) ELSE prepared_at END,
			delivered_at = CASE WHEN $2::text = 'delivered' THEN COALESCE(delivered_at, $3) ELSE delivered_at END
		WHERE id = $1
		RETURNING `+orderColumns, orderID, string(status), at))
	if err != nil {
		return nil, notFoundOr(err, "order", orderID.String())
	}
	return order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, tenantID uuid.UUID, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	switch {
	case filter.Status != "":
		query += ` AND status = $2 ORDER BY created_at DESC`
		args = append(args, string(filter.Status))
	case filter.Limit > 0:
		query += ` ORDER BY created_at DESC LIMIT $2`
		args = append(args, filter.Limit)
	default:
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
