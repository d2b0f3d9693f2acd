package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tenant struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name" validate:"required,max=255"`
	Slug            string          `json:"slug" validate:"required,max=100"`
	Phone           string          `json:"phone,omitempty" validate:"max=20"`
	Address         string          `json:"address,omitempty"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	DeliveryRadius  int             `json:"deliveryRadius" validate:"gte=0"`
	MinOrderValue   decimal.Decimal `json:"minOrderValue"`
	AvgDeliveryTime int             `json:"avgDeliveryTime" validate:"gte=0"`
	OpenTime        string          `json:"openTime" validate:"datetime=15:04"`
	CloseTime       string          `json:"closeTime" validate:"datetime=15:04"`
	OperatingDays   []string        `json:"operatingDays" validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	PaymentMethods  []string        `json:"paymentMethods" validate:"dive,required"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewTenantDefaults returns a tenant carrying the defaults a freshly signed
// up pizzeria starts with.
func NewTenantDefaults() Tenant {
	return Tenant{
		DeliveryFee:     decimal.RequireFromString("5.00"),
		DeliveryRadius:  10,
		MinOrderValue:   decimal.RequireFromString("25.00"),
		AvgDeliveryTime: 45,
		OpenTime:        "18:00",
		CloseTime:       "23:30",
		OperatingDays:   []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		PaymentMethods:  []string{"cash", "credit", "debit", "pix"},
		IsActive:        true,
	}
}

type MenuCategory struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenantId"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenantId"`
	CategoryID  uuid.UUID `json:"categoryId" validate:"required"`
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" validate:"max=500"`
	Prices      PriceMap  `json:"prices"`
	IsAvailable bool      `json:"isAvailable"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Customer struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenantId"`
	Name        string          `json:"name" validate:"required,max=255"`
	Phone       string          `json:"phone" validate:"required,max=20"`
	Email       string          `json:"email,omitempty" validate:"omitempty,email"`
	Addresses   Addresses       `json:"addresses"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PrimaryAddress is the first saved address, if any.
func (c Customer) PrimaryAddress() (Address, bool) {
	if len(c.Addresses) == 0 {
		return Address{}, false
	}
	return c.Addresses[0], true
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenantId"`
	CustomerID      uuid.UUID       `json:"customerId"`
	OrderNumber     string          `json:"orderNumber"`
	Status          Status          `json:"status"`
	Items           LineItems       `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	DeliveryAddress Address         `json:"deliveryAddress"`
	Notes           string          `json:"notes,omitempty"`
	PreparedAt      *time.Time      `json:"preparedAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewOrder is what a caller submits. Subtotal and total are always derived
// from the items and fee.
type NewOrder struct {
	CustomerID      uuid.UUID
	Items           []LineItem
	DeliveryFee     decimal.Decimal
	PaymentMethod   string
	DeliveryAddress Address
	Notes           string
}

// OrderFilter selects orders for listing. A status wins over a limit.
type OrderFilter struct {
	Status Status
	Limit  int
}
