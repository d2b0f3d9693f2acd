package service

import (
	"context"
	"time"

	"pizzadesk/agg-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, orderID uuid.UUID) (bool, error)
	Unmark(ctx context.Context, orderID uuid.UUID) error
	IncrementItems(ctx context.Context, tenantID uuid.UUID, day time.Time, counts map[string]int64) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
)
