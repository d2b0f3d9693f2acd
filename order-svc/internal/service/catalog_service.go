package service

import (
	"context"
	"log"
	"strings"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
)

type TenantService struct {
	repo TenantRepository
}

func NewTenantService(repo TenantRepository) *TenantService {
	return &TenantService{repo: repo}
}

// Create registers a pizzeria and makes the caller its admin. Zero-valued
// operational settings fall back to the signup defaults.
func (s *TenantService) Create(ctx context.Context, scope domain.Scope, tenant *domain.Tenant) error {
	if scope.UserID == "" {
		return &domain.ValidationError{Field: "userId", Reason: "is required"}
	}
	applyTenantDefaults(tenant)
	tenant.Slug = strings.ToLower(strings.TrimSpace(tenant.Slug))
	if err := validateStruct(tenant); err != nil {
		return err
	}
	if tenant.DeliveryFee.IsNegative() || tenant.MinOrderValue.IsNegative() {
		return &domain.ValidationError{Field: "deliveryFee", Reason: "must not be negative"}
	}

	tenant.ID = uuid.New()
	if err := s.repo.CreateTenant(ctx, tenant, scope.UserID); err != nil {
		return storageError("create tenant", err)
	}
	log.Printf("[%s] Tenant %s (%s) created by %s", scope.RequestID, tenant.Slug, tenant.ID, scope.UserID)
	return nil
}

func applyTenantDefaults(t *domain.Tenant) {
	d := domain.NewTenantDefaults()
	if t.DeliveryFee.IsZero() {
		t.DeliveryFee = d.DeliveryFee
	}
	if t.DeliveryRadius == 0 {
		t.DeliveryRadius = d.DeliveryRadius
	}
	if t.MinOrderValue.IsZero() {
		t.MinOrderValue = d.MinOrderValue
	}
	if t.AvgDeliveryTime == 0 {
		t.AvgDeliveryTime = d.AvgDeliveryTime
	}
	if t.OpenTime == "" {
		t.OpenTime = d.OpenTime
	}
	if t.CloseTime == "" {
		t.CloseTime = d.CloseTime
	}
	if len(t.OperatingDays) == 0 {
		t.OperatingDays = d.OperatingDays
	}
	if len(t.PaymentMethods) == 0 {
		t.PaymentMethods = d.PaymentMethods
	}
	t.IsActive = true
}

func (s *TenantService) ListForCaller(ctx context.Context, scope domain.Scope) ([]domain.Tenant, error) {
	if scope.UserID == "" {
		return nil, &domain.ValidationError{Field: "userId", Reason: "is required"}
	}
	tenants, err := s.repo.ListTenantsByUser(ctx, scope.UserID)
	if err != nil {
		return nil, storageError("list tenants", err)
	}
	return tenants, nil
}

func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, err := s.repo.GetTenant(ctx, id)
	if err != nil {
		return nil, storageError("get tenant", err)
	}
	return t, nil
}

func (s *TenantService) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, err := s.repo.GetTenantBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, storageError("get tenant by slug", err)
	}
	return t, nil
}

func (s *TenantService) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.Slug = strings.ToLower(strings.TrimSpace(tenant.Slug))
	if err := validateStruct(tenant); err != nil {
		return err
	}
	if tenant.DeliveryFee.IsNegative() || tenant.MinOrderValue.IsNegative() {
		return &domain.ValidationError{Field: "deliveryFee", Reason: "must not be negative"}
	}
	if err := s.repo.UpdateTenant(ctx, tenant); err != nil {
		return storageError("update tenant", err)
	}
	return nil
}

func (s *TenantService) IsMember(ctx context.Context, tenantID uuid.UUID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.repo.IsTenantMember(ctx, tenantID, userID)
	if err != nil {
		return false, storageError("check tenant membership", err)
	}
	return ok, nil
}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) ListCategories(ctx context.Context, scope domain.Scope) ([]domain.MenuCategory, error) {
	categories, err := s.repo.ListCategories(ctx, scope.TenantID)
	if err != nil {
		return nil, storageError("list categories", err)
	}
	return categories, nil
}

func (s *MenuService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, storageError("get category", err)
	}
	return c, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, scope domain.Scope, category *domain.MenuCategory) error {
	if err := validateStruct(category); err != nil {
		return err
	}
	category.ID = uuid.New()
	category.TenantID = scope.TenantID
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return storageError("create category", err)
	}
	return nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, category *domain.MenuCategory) error {
	if err := validateStruct(category); err != nil {
		return err
	}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return storageError("update category", err)
	}
	return nil
}

// DeleteCategory also removes the category's menu items.
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return storageError("delete category", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: "menu category", ID: id.String()}
	}
	return nil
}

// ListItems returns every item of the tenant, or only those of one category
// when categoryID is set.
func (s *MenuService) ListItems(ctx context.Context, scope domain.Scope, categoryID uuid.UUID) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, scope.TenantID, categoryID)
	if err != nil {
		return nil, storageError("list menu items", err)
	}
	return items, nil
}

func (s *MenuService) GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, storageError("get menu item", err)
	}
	return item, nil
}

func (s *MenuService) CreateItem(ctx context.Context, scope domain.Scope, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.checkCategory(ctx, scope.TenantID, item.CategoryID); err != nil {
		return err
	}
	item.ID = uuid.New()
	item.TenantID = scope.TenantID
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return storageError("create menu item", err)
	}
	return nil
}

func (s *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.checkCategory(ctx, item.TenantID, item.CategoryID); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return storageError("update menu item", err)
	}
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return storageError("delete menu item", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: "menu item", ID: id.String()}
	}
	return nil
}

// checkCategory reports a category of another tenant as not found.
func (s *MenuService) checkCategory(ctx context.Context, tenantID, categoryID uuid.UUID) error {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return storageError("get category", err)
	}
	if category.TenantID != tenantID {
		return &domain.NotFoundError{Entity: "menu category", ID: categoryID.String()}
	}
	return nil
}

func validateMenuItem(item *domain.MenuItem) error {
	if err := validateStruct(item); err != nil {
		return err
	}
	return item.Prices.Validate()
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// List returns the tenant's customers; a non-empty search narrows them to
// those whose name, phone or email contains the text.
func (s *CustomerService) List(ctx context.Context, scope domain.Scope, search string) ([]domain.Customer, error) {
	var (
		customers []domain.Customer
		err       error
	)
	if q := strings.TrimSpace(search); q != "" {
		customers, err = s.repo.SearchCustomers(ctx, scope.TenantID, q)
	} else {
		customers, err = s.repo.ListCustomers(ctx, scope.TenantID)
	}
	if err != nil {
		return nil, storageError("list customers", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, storageError("get customer", err)
	}
	return c, nil
}

func (s *CustomerService) Create(ctx context.Context, scope domain.Scope, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	customer.ID = uuid.New()
	customer.TenantID = scope.TenantID
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return storageError("create customer", err)
	}
	return nil
}

// Update never touches totalOrders or totalSpent.
func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return storageError("update customer", err)
	}
	return nil
}

func validateCustomer(c *domain.Customer) error {
	if err := validateStruct(c); err != nil {
		return err
	}
	return c.Addresses.Validate()
}
