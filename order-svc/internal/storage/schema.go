package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS tenants (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(100) NOT NULL UNIQUE,
		phone VARCHAR(20),
		address TEXT,
		delivery_fee NUMERIC(10, 2) NOT NULL DEFAULT 5.00,
		delivery_radius INTEGER NOT NULL DEFAULT 10,
		min_order_value NUMERIC(10, 2) NOT NULL DEFAULT 25.00,
		avg_delivery_time INTEGER NOT NULL DEFAULT 45,
		open_time VARCHAR(5) NOT NULL DEFAULT '18:00',
		close_time VARCHAR(5) NOT NULL DEFAULT '23:30',
		operating_days TEXT[] NOT NULL DEFAULT ARRAY['monday','tuesday','wednesday','thursday','friday','saturday','sunday'],
		payment_methods TEXT[] NOT NULL DEFAULT ARRAY['cash','credit','debit','pix'],
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		order_seq BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tenant_users (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		user_id VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (tenant_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_categories (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		category_id UUID NOT NULL REFERENCES menu_categories(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		image_url VARCHAR(500),
		prices JSONB NOT NULL,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		email VARCHAR(255),
		addresses JSONB NOT NULL DEFAULT '[]',
		total_orders INTEGER NOT NULL DEFAULT 0,
		total_spent NUMERIC(10, 2) NOT NULL DEFAULT 0.00,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		order_number VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		items JSONB NOT NULL,
		subtotal NUMERIC(10, 2) NOT NULL,
		delivery_fee NUMERIC(10, 2) NOT NULL DEFAULT 0.00,
		total NUMERIC(10, 2) NOT NULL,
		payment_method VARCHAR(50) NOT NULL,
		delivery_address JSONB,
		notes TEXT,
		prepared_at TIMESTAMPTZ,
		delivered_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (total = subtotal + delivery_fee)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_tenant_created ON orders (tenant_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_tenant_status ON orders (tenant_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_tenant ON customers (tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_tenant_category ON menu_items (tenant_id, category_id)`,
}

// EnsureSchema creates the tables the service needs when they are missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
