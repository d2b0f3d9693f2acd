package domain

import (
	"time"

	"github.com/google/uuid"
)

const EventOrderCreated = "order_created"

type OrderItem struct {
	Name     string `json:"name"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is the subset of the order-svc event that aggregation reads.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   uuid.UUID   `json:"order_id"`
	TenantID  uuid.UUID   `json:"tenant_id"`
	Items     []OrderItem `json:"items"`
	Timestamp time.Time   `json:"timestamp"`
}

// ItemCounts sums quantities per item name, skipping blank names and
// non-positive quantities.
func (e OrderEvent) ItemCounts() map[string]int64 {
	counts := make(map[string]int64, len(e.Items))
	for _, it := range e.Items {
		if it.Name == "" || it.Quantity <= 0 {
			continue
		}
		counts[it.Name] += int64(it.Quantity)
	}
	return counts
}
