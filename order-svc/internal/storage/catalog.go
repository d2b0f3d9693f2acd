package storage

import (
	"context"
	"database/sql"
	"strings"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const tenantColumns = `id, name, slug, COALESCE(phone, ''), COALESCE(address, ''), delivery_fee, delivery_radius,
	min_order_value, avg_delivery_time, open_time, close_time, operating_days, payment_methods, is_active,
	created_at, updated_at`

func scanTenant(row rowScanner) (*domain.Tenant, error) {
	var t domain.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Phone, &t.Address, &t.DeliveryFee, &t.DeliveryRadius,
		&t.MinOrderValue, &t.AvgDeliveryTime, &t.OpenTime, &t.CloseTime, pq.Array(&t.OperatingDays),
		pq.Array(&t.PaymentMethods), &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant inserts the tenant and attaches the creating user as admin.
func (r *PostgresRepository) CreateTenant(ctx context.Context, t *domain.Tenant, userID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO tenants (id, name, slug, phone, address, delivery_fee, delivery_radius, min_order_value,
			avg_delivery_time, open_time, close_time, operating_days, payment_methods, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`, t.ID, t.Name, t.Slug, nullString(t.Phone), nullString(t.Address), t.DeliveryFee, t.DeliveryRadius,
		t.MinOrderValue, t.AvgDeliveryTime, t.OpenTime, t.CloseTime, pq.Array(t.OperatingDays),
		pq.Array(t.PaymentMethods), t.IsActive).Scan(&t.CreatedAt, &t.UpdatedAt)
	if pqCode(err) == pqUniqueViolation {
		return &domain.ValidationError{Field: "slug", Reason: "is already taken"}
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO tenant_users (id, tenant_id, user_id, role)
		VALUES ($1, $2, $3, 'admin')
	`, uuid.New(), t.ID, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListTenantsByUser(ctx context.Context, userID string) ([]domain.Tenant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		WHERE id IN (SELECT tenant_id FROM tenant_users WHERE user_id = $1)
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := []domain.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, *t)
	}
	return tenants, rows.Err()
}

func (r *PostgresRepository) GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, err := scanTenant(r.DB.QueryRowContext(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "tenant", id.String())
	}
	return t, nil
}

func (r *PostgresRepository) GetTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, err := scanTenant(r.DB.QueryRowContext(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE slug = $1`, slug))
	if err != nil {
		return nil, notFoundOr(err, "tenant", slug)
	}
	return t, nil
}

func (r *PostgresRepository) UpdateTenant(ctx context.Context, t *domain.Tenant) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE tenants
		SET name = $2, slug = $3, phone = $4, address = $5, delivery_fee = $6, delivery_radius = $7,
			min_order_value = $8, avg_delivery_time = $9, open_time = $10, close_time = $11,
			operating_days = $12, payment_methods = $13, is_active = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, t.ID, t.Name, t.Slug, nullString(t.Phone), nullString(t.Address), t.DeliveryFee, t.DeliveryRadius,
		t.MinOrderValue, t.AvgDeliveryTime, t.OpenTime, t.CloseTime, pq.Array(t.OperatingDays),
		pq.Array(t.PaymentMethods), t.IsActive).Scan(&t.UpdatedAt)
	if pqCode(err) == pqUniqueViolation {
		return &domain.ValidationError{Field: "slug", Reason: "is already taken"}
	}
	return notFoundOr(err, "tenant", t.ID.String())
}

func (r *PostgresRepository) IsTenantMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM tenant_users
			WHERE tenant_id = $1 AND user_id = $2
		)
	`, tenantID, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, tenant_id, name, COALESCE(description, ''), sort_order, is_active, created_at
		FROM menu_categories
		WHERE tenant_id = $1
		ORDER BY sort_order, name
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.MenuCategory{}
	for rows.Next() {
		var c domain.MenuCategory
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error) {
	var c domain.MenuCategory
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, tenant_id, name, COALESCE(description, ''), sort_order, is_active, created_at
		FROM menu_categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.TenantID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "menu category", id.String())
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.MenuCategory) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_categories (id, tenant_id, name, description, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, c.ID, c.TenantID, c.Name, nullString(c.Description), c.SortOrder, c.IsActive).Scan(&c.CreatedAt)
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.MenuCategory) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_categories
		SET name = $2, description = $3, sort_order = $4, is_active = $5
		WHERE id = $1
	`, c.ID, c.Name, nullString(c.Description), c.SortOrder, c.IsActive)
	return affectedOrNotFound(result, err, "menu category", c.ID)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const menuItemColumns = `id, tenant_id, category_id, name, COALESCE(description, ''), COALESCE(image_url, ''),
	prices, is_available, sort_order, created_at, updated_at`

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(&item.ID, &item.TenantID, &item.CategoryID, &item.Name, &item.Description, &item.ImageURL,
		&item.Prices, &item.IsAvailable, &item.SortOrder, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListMenuItems returns the tenant's items; a non-nil categoryID narrows the
// result to one category.
func (r *PostgresRepository) ListMenuItems(ctx context.Context, tenantID, categoryID uuid.UUID) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	if categoryID != uuid.Nil {
		query += ` AND category_id = $2`
		args = append(args, categoryID)
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "menu item", id.String())
	}
	return item, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (id, tenant_id, category_id, name, description, image_url, prices, is_available, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, item.ID, item.TenantID, item.CategoryID, item.Name, nullString(item.Description), nullString(item.ImageURL),
		item.Prices, item.IsAvailable, item.SortOrder).Scan(&item.CreatedAt, &item.UpdatedAt)
	if pqCode(err) == pqForeignKeyViolation {
		return &domain.NotFoundError{Entity: "menu category", ID: item.CategoryID.String()}
	}
	return err
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET category_id = $2, name = $3, description = $4, image_url = $5, prices = $6,
			is_available = $7, sort_order = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, item.ID, item.CategoryID, item.Name, nullString(item.Description), nullString(item.ImageURL),
		item.Prices, item.IsAvailable, item.SortOrder).Scan(&item.UpdatedAt)
	if pqCode(err) == pqForeignKeyViolation {
		return &domain.NotFoundError{Entity: "menu category", ID: item.CategoryID.String()}
	}
	return notFoundOr(err, "menu item", item.ID.String())
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const customerColumns = `id, tenant_id, name, phone, COALESCE(email, ''), addresses, total_orders, total_spent,
	created_at, updated_at`

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.Email, &c.Addresses, &c.TotalOrders,
		&c.TotalSpent, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) queryCustomers(ctx context.Context, query string, args ...interface{}) ([]domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) ListCustomers(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, tenantID)
}

func (r *PostgresRepository) SearchCustomers(ctx context.Context, tenantID uuid.UUID, query string) ([]domain.Customer, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.queryCustomers(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE tenant_id = $1
			AND (name ILIKE $2 OR phone ILIKE $2 OR email ILIKE $2)
		ORDER BY created_at DESC
	`, tenantID, pattern)
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "customer", id.String())
	}
	return c, nil
}

// CreateCustomer always starts the running totals at zero.
func (r *PostgresRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO customers (id, tenant_id, name, phone, email, addresses)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING total_orders, total_spent, created_at, updated_at
	`, c.ID, c.TenantID, c.Name, c.Phone, nullString(c.Email), c.Addresses).
		Scan(&c.TotalOrders, &c.TotalSpent, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateCustomer writes contact details only; total_orders and total_spent
// are owned by order creation.
func (r *PostgresRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	row := r.DB.QueryRowContext(ctx, `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, addresses = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+customerColumns, c.ID, c.Name, c.Phone, nullString(c.Email), c.Addresses)
	updated, err := scanCustomer(row)
	if err != nil {
		return notFoundOr(err, "customer", c.ID.String())
	}
	*c = *updated
	return nil
}

func affectedOrNotFound(result sql.Result, err error, entity string, id uuid.UUID) error {
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: entity, ID: id.String()}
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
