package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"pizzadesk/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads until ctx is cancelled or the reader is closed. Malformed or
// failing messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			log.Printf("Error reading message: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		if err := c.ProcessOrder(ctx, event); err != nil {
			log.Printf("Error processing order %s: %v", event.OrderID, err)
		}
	}
}

// ProcessOrder counts the items of a created order once per order id.
// Other event types are ignored.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) error {
	if event.Type != domain.EventOrderCreated {
		return nil
	}
	counts := event.ItemCounts()
	if len(counts) == 0 {
		return nil
	}

	first, err := c.Store.MarkProcessed(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	if !first {
		log.Printf("Skipping duplicate order %s", event.OrderID)
		return nil
	}

	day := event.Timestamp
	if day.IsZero() {
		day = time.Now()
	}
	if err := c.Store.IncrementItems(ctx, event.TenantID, day, counts); err != nil {
		if uerr := c.Store.Unmark(ctx, event.OrderID); uerr != nil {
			log.Printf("Failed to unmark order %s: %v", event.OrderID, uerr)
		}
		return fmt.Errorf("increment items: %w", err)
	}

	log.Printf("Counted %d item(s) for tenant %s from order %s", len(counts), event.TenantID, event.OrderID)
	return nil
}
