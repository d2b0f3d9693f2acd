package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"pizzadesk/order-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Tenants   service.TenantServiceInterface
	Menu      service.MenuServiceInterface
	Customers service.CustomerServiceInterface
	Orders    service.OrderServiceInterface
}

func NewHandler(tenants service.TenantServiceInterface, menu service.MenuServiceInterface,
	customers service.CustomerServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{
		Tenants:   tenants,
		Menu:      menu,
		Customers: customers,
		Orders:    orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/tenants", h.requireUser(h.createTenant)).Methods("POST")
	r.HandleFunc("/api/tenants", h.requireUser(h.listTenants)).Methods("GET")
	r.HandleFunc("/api/tenants/{slug}", h.getTenantBySlug).Methods("GET")
	r.HandleFunc("/api/tenants/{id}", h.updateTenant).Methods("PUT")

	r.HandleFunc("/api/tenants/{tenantId}/menu/categories", h.tenantScoped(h.listCategories)).Methods("GET")
	r.HandleFunc("/api/tenants/{tenantId}/menu/categories", h.tenantScoped(h.createCategory)).Methods("POST")
	r.HandleFunc("/api/menu/categories/{id}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/menu/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/tenants/{tenantId}/menu/items", h.tenantScoped(h.listMenuItems)).Methods("GET")
	r.HandleFunc("/api/tenants/{tenantId}/menu/items", h.tenantScoped(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu/items/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/items/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/tenants/{tenantId}/customers", h.tenantScoped(h.listCustomers)).Methods("GET")
	r.HandleFunc("/api/tenants/{tenantId}/customers", h.tenantScoped(h.createCustomer)).Methods("POST")
	r.HandleFunc("/api/customers/{id}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.updateCustomer).Methods("PUT")

	r.HandleFunc("/api/tenants/{tenantId}/orders", h.tenantScoped(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/tenants/{tenantId}/orders", h.tenantScoped(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
