package service

import (
	"context"
	"errors"
	"log"
	"time"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
)

type OrderService struct {
	repo       OrderRepository
	aggregates *CustomerAggregator
	publisher  OrderPublisher
	qrEncoder  QRGenerator
	now        func() time.Time
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:       repo,
		aggregates: NewCustomerAggregator(),
		publisher:  publisher,
		qrEncoder:  qr,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for lifecycle timestamps.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// Create persists a new pending order and bumps the customer's running
// totals in the same transaction. Client-side subtotal and total are never
// trusted; both are recomputed from the items and fee.
func (s *OrderService) Create(ctx context.Context, scope domain.Scope, in domain.NewOrder) (*domain.Order, error) {
	if scope.TenantID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "tenantId", Reason: "is required"}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	subtotal, total := in.Price()
	now := s.now().UTC()
	order := &domain.Order{
		ID:              uuid.New(),
		TenantID:        scope.TenantID,
		CustomerID:      in.CustomerID,
		Status:          domain.StatusPending,
		Items:           domain.LineItems(in.Items),
		Subtotal:        subtotal,
		DeliveryFee:     in.DeliveryFee.Round(2),
		Total:           total,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.repo.WithinTx(ctx, func(tx OrderTx) error {
		number, err := tx.NextOrderNumber(ctx, order.TenantID)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		return s.aggregates.OnOrderCreated(ctx, tx, order.TenantID, order.CustomerID, order.Total, now)
	})
	if err != nil {
		return nil, storageError("create order", err)
	}

	log.Printf("[%s] Order %s (%s) created for tenant %s, total %s",
		scope.RequestID, order.OrderNumber, order.ID, order.TenantID, order.Total.StringFixed(2))
	s.publish(ctx, domain.EventOrderCreated, order)
	return order, nil
}

// UpdateStatus moves an order to any recognized status. Transitions are not
// ordered; preparedAt and deliveredAt are stamped the first time the order
// enters ready and delivered respectively.
func (s *OrderService) UpdateStatus(ctx context.Context, scope domain.Scope, orderID uuid.UUID, raw string) (*domain.Order, error) {
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.UpdateOrderStatus(ctx, orderID, status, s.now().UTC())
	if err != nil {
		return nil, storageError("update order status", err)
	}

	log.Printf("[%s] Order %s moved to %s", scope.RequestID, order.ID, order.Status)
	s.publish(ctx, domain.EventOrderStatusChanged, order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, scope domain.Scope, filter domain.OrderFilter) ([]domain.Order, error) {
	if scope.TenantID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "tenantId", Reason: "is required"}
	}
	if filter.Status != "" && !filter.Status.Valid() {
		_, err := domain.ParseStatus(string(filter.Status))
		return nil, err
	}
	if filter.Limit < 0 {
		return nil, &domain.ValidationError{Field: "limit", Reason: "must not be negative"}
	}

	orders, err := s.repo.ListOrders(ctx, scope.TenantID, filter)
	if err != nil {
		return nil, storageError("list orders", err)
	}
	return orders, nil
}

// Get hides orders of other tenants when the scope names a tenant.
func (s *OrderService) Get(ctx context.Context, scope domain.Scope, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, storageError("get order", err)
	}
	if scope.TenantID != uuid.Nil && order.TenantID != scope.TenantID {
		return nil, &domain.NotFoundError{Entity: "order", ID: orderID.String()}
	}
	return order, nil
}

// QRCode renders a PNG pointing at the order's tracking page.
func (s *OrderService) QRCode(ctx context.Context, scope domain.Scope, orderID uuid.UUID) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, errors.New("qr generator not configured")
	}
	if _, err := s.Get(ctx, scope, orderID); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(orderID)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	msg := domain.NewOrderMessage(eventType, order, s.now().UTC())
	if err := s.publisher.PublishOrder(ctx, msg); err != nil {
		log.Printf("Failed to publish %s for order %s: %v", eventType, order.ID, err)
	}
}

// storageError passes domain errors through and wraps everything else as a
// persistence failure.
func storageError(op string, err error) error {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
