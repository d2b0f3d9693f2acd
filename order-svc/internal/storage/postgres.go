package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pizzadesk/order-svc/internal/domain"
	"pizzadesk/order-svc/internal/service"

	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation pq.ErrorCode = "23503"
	pqUniqueViolation     pq.ErrorCode = "23505"
	pqNumericOutOfRange   pq.ErrorCode = "22003"
)

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// WithinTx runs fn inside one database transaction. The transaction commits
// only if fn returns nil.
func (r *PostgresRepository) WithinTx(ctx context.Context, fn func(tx service.OrderTx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&txRepository{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txRepository holds the writes that must share the order transaction.
type txRepository struct {
	q queryer
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func notFoundOr(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: entity, ID: id}
	}
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var (
	_ service.OrderRepository    = (*PostgresRepository)(nil)
	_ service.OrderTx            = (*txRepository)(nil)
	_ service.TenantRepository   = (*PostgresRepository)(nil)
	_ service.MenuRepository     = (*PostgresRepository)(nil)
	_ service.CustomerRepository = (*PostgresRepository)(nil)
)
