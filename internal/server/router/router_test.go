package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/lawncare/internal/config"
	"github.com/mamadbah2/lawncare/internal/domain/models"
	"github.com/mamadbah2/lawncare/internal/server/handlers"
	"github.com/mamadbah2/lawncare/internal/server/middleware"
	"github.com/mamadbah2/lawncare/internal/service/planner"
	"github.com/mamadbah2/lawncare/internal/timing"
)

func newTestEngine(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	svc := planner.NewService(config.PlannerConfig{DefaultRegion: timing.RegionCentral, ScheduleCacheSize: 4}, nil)
	return New(handlers.NewTimingHandler(svc, nil), limiter, nil)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthzAndMetrics(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec := get(t, engine, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	get(t, engine, "/api/v1/timing?activity=seeding")
	rec = get(t, engine, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lawncare_planner_queries_total")
}

func TestTimingRoute(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec := get(t, engine, "/api/v1/timing?activity=Seeding&region=central")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TimingWindowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "seeding", resp.Activity)
	assert.Equal(t, 4, resp.StartMonth)
	assert.Equal(t, 6, resp.EndMonth)
	assert.Equal(t, 55.0, resp.TempMinF)
	assert.Equal(t, 80.0, resp.TempMaxF)
}

func TestTimingRouteErrors(t *testing.T) {
	engine := newTestEngine(t, nil)

	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/api/v1/timing", http.StatusBadRequest, "invalid_request"},
		{"/api/v1/timing?activity=mowing", http.StatusBadRequest, "unknown_activity"},
		{"/api/v1/timing?activity=seeding&region=arctic", http.StatusBadRequest, "unknown_region"},
		{"/api/v1/optimal?activity=seeding&month=13&temp=70", http.StatusBadRequest, "invalid_month"},
		{"/api/v1/optimal?activity=seeding&month=5&temp=900", http.StatusBadRequest, "invalid_temperature"},
		{"/api/v1/optimal?activity=seeding&month=5", http.StatusBadRequest, "invalid_request"},
		{"/api/v1/next-window?activity=seeding&from=06/15/2024", http.StatusBadRequest, "invalid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, engine, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestOptimalRoute(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec := get(t, engine, "/api/v1/optimal?activity=fertilizing&region=northern&month=5&temp=70")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Optimal)
	assert.Equal(t, "optimal", resp.Status)

	rec = get(t, engine, "/api/v1/optimal?activity=winterizing&region=central&month=6&temp=85")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Optimal)
	assert.Equal(t, "not_recommended", resp.Status)
}

func TestConditionsRoute(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec := get(t, engine, "/api/v1/conditions?region=southern&month=12&temp=50")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConditionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "southern", resp.Region)
	require.Len(t, resp.Activities, 8)
	assert.Equal(t, "winterizing", resp.Activities[7].Activity)
	assert.Equal(t, "optimal", resp.Activities[7].Status)
}

func TestNextWindowRoute(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec := get(t, engine, "/api/v1/next-window?activity=overseeding&region=southern&from=2024-06-15")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NextWindowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-08-01", resp.StartDate)
	assert.Equal(t, "2024-11-30", resp.EndDate)
	assert.GreaterOrEqual(t, resp.LengthDays, 30)

	rec = get(t, engine, "/api/v1/next-window?region=central&from=2024-06-15")
	require.Equal(t, http.StatusOK, rec.Code)

	var all models.NextWindowsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all.Windows, 8)
	assert.Equal(t, "2024-06-15", all.From)
}

func TestScheduleRoute(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec := get(t, engine, "/api/v1/schedule?region=central")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Months, 12)
	assert.Subset(t, resp.Months[4], []string{"seeding", "fertilizing", "dethatching", "aeration"})

	rec = get(t, engine, "/api/v1/schedule?region=southern&month=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var month models.MonthScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &month))
	var names []string
	for _, a := range month.Activities {
		names = append(names, a.Activity)
	}
	assert.Contains(t, names, "winterizing")
}

func TestRateLimitedAPI(t *testing.T) {
	engine := newTestEngine(t, middleware.NewRateLimiter(0.001, 1))

	first := get(t, engine, "/api/v1/timing?activity=seeding")
	assert.Equal(t, http.StatusOK, first.Code)

	second := get(t, engine, "/api/v1/timing?activity=seeding")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// Health checks are outside the limited group.
	assert.Equal(t, http.StatusOK, get(t, engine, "/healthz").Code)
}
