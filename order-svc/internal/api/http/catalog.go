package httpapi

import (
	"net/http"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *Handler) createTenant(w http.ResponseWriter, r *http.Request) {
	var tenant domain.Tenant
	if !decodeJSON(w, r, &tenant) {
		return
	}
	if err := h.Tenants.Create(r.Context(), scopeFrom(r), &tenant); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (h *Handler) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.Tenants.ListForCaller(r.Context(), scopeFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

// getTenantBySlug is public: storefronts resolve a pizzeria by slug before
// any user is known.
func (h *Handler) getTenantBySlug(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.Tenants.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *Handler) updateTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !h.authorize(w, r, id) {
		return
	}
	tenant, err := h.Tenants.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !decodeJSON(w, r, tenant) {
		return
	}
	tenant.ID = id
	if err := h.Tenants.Update(r.Context(), tenant); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.ListCategories(r.Context(), scopeFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	category := domain.MenuCategory{IsActive: true}
	if !decodeJSON(w, r, &category) {
		return
	}
	if err := h.Menu.CreateCategory(r.Context(), scopeFrom(r), &category); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) loadCategory(w http.ResponseWriter, r *http.Request) (*domain.MenuCategory, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	category, err := h.Menu.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return category, h.authorize(w, r, category.TenantID)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := h.loadCategory(w, r)
	if !ok {
		return
	}
	id, tenantID := category.ID, category.TenantID
	if !decodeJSON(w, r, category) {
		return
	}
	category.ID, category.TenantID = id, tenantID
	if err := h.Menu.UpdateCategory(r.Context(), category); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := h.loadCategory(w, r)
	if !ok {
		return
	}
	if err := h.Menu.DeleteCategory(r.Context(), category.ID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	var categoryID uuid.UUID
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Invalid categoryId", http.StatusBadRequest)
			return
		}
		categoryID = id
	}
	items, err := h.Menu.ListItems(r.Context(), scopeFrom(r), categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	item := domain.MenuItem{IsAvailable: true}
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := h.Menu.CreateItem(r.Context(), scopeFrom(r), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) loadMenuItem(w http.ResponseWriter, r *http.Request) (*domain.MenuItem, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	item, err := h.Menu.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return item, h.authorize(w, r, item.TenantID)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadMenuItem(w, r)
	if !ok {
		return
	}
	id, tenantID := item.ID, item.TenantID
	if !decodeJSON(w, r, item) {
		return
	}
	item.ID, item.TenantID = id, tenantID
	if err := h.Menu.UpdateItem(r.Context(), item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadMenuItem(w, r)
	if !ok {
		return
	}
	if err := h.Menu.DeleteItem(r.Context(), item.ID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context(), scopeFrom(r), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeJSON(w, r, &customer) {
		return
	}
	if err := h.Customers.Create(r.Context(), scopeFrom(r), &customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) loadCustomer(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	customer, err := h.Customers.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return customer, h.authorize(w, r, customer.TenantID)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// updateCustomer applies contact changes; aggregate fields in the body are
// ignored.
func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}
	id, tenantID := customer.ID, customer.TenantID
	if !decodeJSON(w, r, customer) {
		return
	}
	customer.ID, customer.TenantID = id, tenantID
	if err := h.Customers.Update(r.Context(), customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
