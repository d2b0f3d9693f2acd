package httpapi

import (
	"context"
	"net/http"

	"pizzadesk/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	headerUserID    = "X-User-ID"
	headerRequestID = "X-Request-ID"
)

type scopeKey struct{}

// withRequestScope attaches the caller identity and a request id to every
// request. The id is echoed back so gateway and service logs line up.
func withRequestScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, reqID)

		scope := domain.Scope{
			UserID:    r.Header.Get(headerUserID),
			RequestID: reqID,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), scopeKey{}, scope)))
	})
}

func scopeFrom(r *http.Request) domain.Scope {
	if scope, ok := r.Context().Value(scopeKey{}).(domain.Scope); ok {
		return scope
	}
	return domain.Scope{
		UserID:    r.Header.Get(headerUserID),
		RequestID: r.Header.Get(headerRequestID),
	}
}

func requestID(r *http.Request) string {
	return scopeFrom(r).RequestID
}

func withTenant(r *http.Request, tenantID uuid.UUID) *http.Request {
	scope := scopeFrom(r)
	scope.TenantID = tenantID
	return r.WithContext(context.WithValue(r.Context(), scopeKey{}, scope))
}

// tenantScoped guards routes carrying {tenantId}: the caller must be
// identified and attached to the tenant.
func (h *Handler) tenantScoped(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := uuid.Parse(mux.Vars(r)["tenantId"])
		if err != nil {
			http.Error(w, "Invalid tenant id", http.StatusBadRequest)
			return
		}
		if !h.authorize(w, r, tenantID) {
			return
		}
		next(w, withTenant(r, tenantID))
	}
}

// authorize writes 401 or 403 and reports false when the caller may not act
// on the tenant.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) bool {
	userID := scopeFrom(r).UserID
	if userID == "" {
		http.Error(w, "Missing user identity", http.StatusUnauthorized)
		return false
	}
	ok, err := h.Tenants.IsMember(r.Context(), tenantID, userID)
	if err != nil {
		writeError(w, r, err)
		return false
	}
	if !ok {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (h *Handler) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if scopeFrom(r).UserID == "" {
			http.Error(w, "Missing user identity", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
