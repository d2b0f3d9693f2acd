package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(10,2) money column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

func (n NewOrder) Validate() error {
	if n.CustomerID == uuid.Nil {
		return &ValidationError{Field: "customerId", Reason: "is required"}
	}
	if len(n.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "must not be empty"}
	}
	for i, li := range n.Items {
		if err := li.Validate(fmt.Sprintf("items[%d]", i)); err != nil {
			return err
		}
	}
	if n.DeliveryFee.IsNegative() {
		return &ValidationError{Field: "deliveryFee", Reason: "must not be negative"}
	}
	if _, total := n.Price(); total.GreaterThan(MaxAmount) {
		return &ValidationError{Field: "total", Reason: "must not exceed " + MaxAmount.StringFixed(2)}
	}
	if strings.TrimSpace(n.PaymentMethod) == "" {
		return &ValidationError{Field: "paymentMethod", Reason: "is required"}
	}
	return n.DeliveryAddress.Validate("deliveryAddress")
}

// Price returns the authoritative subtotal and total for the order.
func (n NewOrder) Price() (subtotal, total decimal.Decimal) {
	subtotal = LineItems(n.Items).Subtotal()
	total = subtotal.Add(n.DeliveryFee.Round(2))
	return subtotal, total
}

// FormatOrderNumber renders the tenant-visible number for a sequence value.
// Only the last six digits are shown, so numbers repeat after a million
// orders within one tenant.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("#%06d", seq%1_000_000)
}
