package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stats summarizes the orders of one tenant inside a window.
type Stats struct {
	TotalOrders                int             `json:"totalOrders"`
	TotalRevenue               decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue          decimal.Decimal `json:"averageOrderValue"`
	AverageDeliveryTimeMinutes float64         `json:"averageDeliveryTimeMinutes"`
}

type PopularItem struct {
	Name       string `json:"name"`
	SalesCount int64  `json:"salesCount"`
}

// Window bounds order creation time. A nil Start means no bound at all; an
// End without a Start is ignored.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Normalize drops an End that has no Start.
func (w Window) Normalize() Window {
	if w.Start == nil {
		return Window{}
	}
	return w
}

type StatsQuery struct {
	TenantID uuid.UUID
	Window   Window
}

// PopularQuery asks for the best sellers of a tenant, all time or for one
// UTC day when Day is set.
type PopularQuery struct {
	TenantID uuid.UUID
	Day      *time.Time
	Limit    int
}

var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }
