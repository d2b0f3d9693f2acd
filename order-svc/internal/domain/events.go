package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type EventItem struct {
	Name     string `json:"name"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

type KafkaMessage struct {
	Type        string          `json:"type"`
	OrderID     uuid.UUID       `json:"order_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	OrderNumber string          `json:"order_number"`
	Status      Status          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Items       []EventItem     `json:"items,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

func NewOrderMessage(eventType string, order *Order, at time.Time) KafkaMessage {
	msg := KafkaMessage{
		Type:        eventType,
		OrderID:     order.ID,
		TenantID:    order.TenantID,
		CustomerID:  order.CustomerID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   at,
	}
	if eventType == EventOrderCreated {
		// Daily leaderboards bucket by creation time.
		msg.Timestamp = order.CreatedAt
		msg.Items = make([]EventItem, 0, len(order.Items))
		for _, li := range order.Items {
			msg.Items = append(msg.Items, EventItem{Name: li.Name, Size: li.Size, Quantity: li.Quantity})
		}
	}
	return msg
}
