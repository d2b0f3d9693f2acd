package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"pizzadesk/analytics-svc/internal/domain"
	"pizzadesk/analytics-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "service": "analytics-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/tenants/{tenantId}/analytics/stats", h.tenantScoped(h.getStats)).Methods("GET")
	r.HandleFunc("/api/tenants/{tenantId}/analytics/popular-items", h.tenantScoped(h.getPopularItems)).Methods("GET")
}

// tenantScoped rejects callers without X-User-ID (401) or not attached to
// the tenant in the path (403).
func (h *Handler) tenantScoped(next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := uuid.Parse(mux.Vars(r)["tenantId"])
		if err != nil {
			http.Error(w, "Invalid tenant id", http.StatusBadRequest)
			return
		}
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			http.Error(w, "Missing user identity", http.StatusUnauthorized)
			return
		}
		ok, err := h.Analytics.IsMember(r.Context(), tenantID, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !ok {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r, tenantID)
	}
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) {
	query := r.URL.Query()
	start, err := parseDate(query.Get("startDate"), false)
	if err != nil {
		http.Error(w, "startDate: "+err.Error(), http.StatusBadRequest)
		return
	}
	end, err := parseDate(query.Get("endDate"), true)
	if err != nil {
		http.Error(w, "endDate: "+err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.Analytics.ComputeStats(r.Context(), domain.StatsQuery{
		TenantID: tenantID,
		Window:   domain.Window{Start: start, End: end},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, stats)
}

func (h *Handler) getPopularItems(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) {
	query := r.URL.Query()
	q := domain.PopularQuery{TenantID: tenantID}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		q.Limit = limit
	}
	if raw := query.Get("date"); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "date must use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		q.Day = &day
	}

	items, err := h.Analytics.PopularItems(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, items)
}

// parseDate accepts RFC 3339 timestamps or bare dates. A bare end date
// covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errors.New("must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
	http.Error(w, "Failed to fetch analytics", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
