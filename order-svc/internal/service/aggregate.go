package service

import (
	"context"
	"time"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerAggregator keeps a customer's totalOrders and totalSpent in step
// with the orders created for them. There is no reverse path: cancelling an
// order leaves the totals untouched.
type CustomerAggregator struct{}

func NewCustomerAggregator() *CustomerAggregator {
	return &CustomerAggregator{}
}

// OnOrderCreated must run on the same transaction as the order insert so a
// failure here rolls the order back.
func (a *CustomerAggregator) OnOrderCreated(ctx context.Context, store AggregateStore, tenantID, customerID uuid.UUID, total decimal.Decimal, at time.Time) error {
	affected, err := store.IncrementCustomerAggregate(ctx, tenantID, customerID, total, at)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "customer", ID: customerID.String()}
	}
	return nil
}
