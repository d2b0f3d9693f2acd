package service

import (
	"context"
	"time"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateStore applies relative updates to customer running totals.
type AggregateStore interface {
	IncrementCustomerAggregate(ctx context.Context, tenantID, customerID uuid.UUID, total decimal.Decimal, at time.Time) (int64, error)
}

// OrderTx is the transaction-scoped part of the gateway used while an
// order is being created.
type OrderTx interface {
	AggregateStore
	NextOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
	InsertOrder(ctx context.Context, order *domain.Order) error
}

type OrderRepository interface {
	WithinTx(ctx context.Context, fn func(tx OrderTx) error) error
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.Status, at time.Time) (*domain.Order, error)
	ListOrders(ctx context.Context, tenantID uuid.UUID, filter domain.OrderFilter) ([]domain.Order, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.KafkaMessage) error
}

type QRGenerator interface {
	Generate(orderID uuid.UUID) ([]byte, error)
}

type TenantRepository interface {
	CreateTenant(ctx context.Context, tenant *domain.Tenant, userID string) error
	ListTenantsByUser(ctx context.Context, userID string) ([]domain.Tenant, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *domain.Tenant) error
	IsTenantMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error)
}

type MenuRepository interface {
	ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error)
	CreateCategory(ctx context.Context, category *domain.MenuCategory) error
	UpdateCategory(ctx context.Context, category *domain.MenuCategory) error
	DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error)
	ListMenuItems(ctx context.Context, tenantID, categoryID uuid.UUID) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uuid.UUID) (int64, error)
}

type CustomerRepository interface {
	ListCustomers(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, tenantID uuid.UUID, query string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, scope domain.Scope, in domain.NewOrder) (*domain.Order, error)
	UpdateStatus(ctx context.Context, scope domain.Scope, orderID uuid.UUID, status string) (*domain.Order, error)
	List(ctx context.Context, scope domain.Scope, filter domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, scope domain.Scope, orderID uuid.UUID) (*domain.Order, error)
	QRCode(ctx context.Context, scope domain.Scope, orderID uuid.UUID) ([]byte, error)
}

type TenantServiceInterface interface {
	Create(ctx context.Context, scope domain.Scope, tenant *domain.Tenant) error
	ListForCaller(ctx context.Context, scope domain.Scope) ([]domain.Tenant, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	IsMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error)
}

type MenuServiceInterface interface {
	ListCategories(ctx context.Context, scope domain.Scope) ([]domain.MenuCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error)
	CreateCategory(ctx context.Context, scope domain.Scope, category *domain.MenuCategory) error
	UpdateCategory(ctx context.Context, category *domain.MenuCategory) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, scope domain.Scope, categoryID uuid.UUID) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, scope domain.Scope, item *domain.MenuItem) error
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type CustomerServiceInterface interface {
	List(ctx context.Context, scope domain.Scope, search string) ([]domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Create(ctx context.Context, scope domain.Scope, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
}

var (
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ TenantServiceInterface   = (*TenantService)(nil)
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ CustomerServiceInterface = (*CustomerService)(nil)
)
