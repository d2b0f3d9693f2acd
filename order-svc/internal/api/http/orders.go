package httpapi

import (
	"net/http"
	"strconv"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// createOrderRequest deliberately has no subtotal or total: the server
// derives both, so client values are dropped while decoding.
type createOrderRequest struct {
	CustomerID      uuid.UUID         `json:"customerId"`
	Items           []domain.LineItem `json:"items"`
	DeliveryFee     decimal.Decimal   `json:"deliveryFee"`
	PaymentMethod   string            `json:"paymentMethod"`
	DeliveryAddress domain.Address    `json:"deliveryAddress"`
	Notes           string            `json:"notes"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.Orders.Create(r.Context(), scopeFrom(r), domain.NewOrder{
		CustomerID:      req.CustomerID,
		Items:           req.Items,
		DeliveryFee:     req.DeliveryFee,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.OrderFilter{Status: domain.Status(query.Get("status"))}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	orders, err := h.Orders.List(r.Context(), scopeFrom(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// loadOrder fetches the order named in the path and checks the caller
// belongs to its tenant. The returned request carries the tenant scope.
func (h *Handler) loadOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, *http.Request, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, r, false
	}
	order, err := h.Orders.Get(r.Context(), scopeFrom(r), id)
	if err != nil {
		writeError(w, r, err)
		return nil, r, false
	}
	if !h.authorize(w, r, order.TenantID) {
		return nil, r, false
	}
	return order, withTenant(r, order.TenantID), true
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, _, ok := h.loadOrder(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &payload) {
		return
	}
	if payload.Status == "" {
		http.Error(w, "Status is required", http.StatusBadRequest)
		return
	}

	order, r, ok := h.loadOrder(w, r)
	if !ok {
		return
	}
	updated, err := h.Orders.UpdateStatus(r.Context(), scopeFrom(r), order.ID, payload.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	order, r, ok := h.loadOrder(w, r)
	if !ok {
		return
	}
	png, err := h.Orders.QRCode(r.Context(), scopeFrom(r), order.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
