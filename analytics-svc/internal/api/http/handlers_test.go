package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "pizzadesk/analytics-svc/internal/api/http"
	"pizzadesk/analytics-svc/internal/domain"
	"pizzadesk/analytics-svc/internal/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, svc *mocks.AnalyticsInterface, target, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	httpapi.NewRouter(httpapi.NewHandler(svc)).ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	tenantID := uuid.New()
	base := "/api/tenants/" + tenantID.String() + "/analytics/stats"
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(2024, 5, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	tests := []struct {
		name     string
		query    string
		userID   string
		member   *bool
		window   *domain.Window
		stats    domain.Stats
		err      error
		wantCode int
	}{
		{
			name:     "missing identity",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not a member",
			userID:   "stranger",
			member:   boolPtr(false),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "bare dates cover whole end day",
			query:    "?startDate=2024-05-01&endDate=2024-05-31",
			userID:   "owner",
			member:   boolPtr(true),
			window:   &domain.Window{Start: &start, End: &endOfDay},
			stats:    domain.Stats{TotalOrders: 2, TotalRevenue: decimal.RequireFromString("110.00"), AverageOrderValue: decimal.RequireFromString("55.00"), AverageDeliveryTimeMinutes: 35},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid start date",
			query:    "?startDate=yesterday",
			userID:   "owner",
			member:   boolPtr(true),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "validation error from service",
			query:    "?startDate=2024-05-31&endDate=2024-05-01",
			userID:   "owner",
			member:   boolPtr(true),
			window:   &domain.Window{},
			err:      &domain.ValidationError{Field: "endDate", Reason: "must not be before startDate"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "storage failure",
			userID:   "owner",
			member:   boolPtr(true),
			window:   &domain.Window{},
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := mocks.NewAnalyticsInterface(t)
			if testCase.member != nil {
				svc.On("IsMember", mock.Anything, tenantID, testCase.userID).Return(*testCase.member, nil).Once()
			}
			if testCase.window != nil {
				matcher := mock.MatchedBy(func(q domain.StatsQuery) bool {
					if q.TenantID != tenantID {
						return false
					}
					if testCase.window.Start == nil {
						return true
					}
					return q.Window.Start.Equal(*testCase.window.Start) && q.Window.End.Equal(*testCase.window.End)
				})
				svc.On("ComputeStats", mock.Anything, matcher).Return(testCase.stats, testCase.err).Once()
			}

			w := serve(t, svc, base+testCase.query, testCase.userID)
			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "connection refused")
			}
			if testCase.wantCode == http.StatusOK {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, float64(2), body["totalOrders"])
				assert.Equal(t, "110", body["totalRevenue"])
				assert.Equal(t, float64(35), body["averageDeliveryTimeMinutes"])
			}
		})
	}
}

func TestGetPopularItems(t *testing.T) {
	tenantID := uuid.New()
	base := "/api/tenants/" + tenantID.String() + "/analytics/popular-items"
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    string
		want     *domain.PopularQuery
		wantCode int
	}{
		{
			name:     "defaults",
			want:     &domain.PopularQuery{TenantID: tenantID},
			wantCode: http.StatusOK,
		},
		{
			name:     "limit and day",
			query:    "?limit=3&date=2024-05-02",
			want:     &domain.PopularQuery{TenantID: tenantID, Limit: 3, Day: &day},
			wantCode: http.StatusOK,
		},
		{
			name:     "bad limit",
			query:    "?limit=abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero limit",
			query:    "?limit=0",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad date",
			query:    "?date=02/05/2024",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := mocks.NewAnalyticsInterface(t)
			svc.On("IsMember", mock.Anything, tenantID, "owner").Return(true, nil).Once()
			if testCase.want != nil {
				svc.On("PopularItems", mock.Anything, *testCase.want).
					Return([]domain.PopularItem{{Name: "Margherita", SalesCount: 4}}, nil).Once()
			}

			w := serve(t, svc, base+testCase.query, "owner")
			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.JSONEq(t, `[{"name":"Margherita","salesCount":4}]`, w.Body.String())
			}
		})
	}
}

func TestInvalidTenantID(t *testing.T) {
	w := serve(t, mocks.NewAnalyticsInterface(t), "/api/tenants/not-a-uuid/analytics/stats", "owner")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	w := serve(t, mocks.NewAnalyticsInterface(t), "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"analytics-svc"}`, w.Body.String())
}

func boolPtr(b bool) *bool { return &b }
