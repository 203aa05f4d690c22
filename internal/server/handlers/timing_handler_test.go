package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/lawncare/internal/domain/models"
	"github.com/mamadbah2/lawncare/internal/timing"
)

type stubPlanner struct {
	Planner
	now  time.Time
	next timing.NextWindow
	err  error
	from time.Time
}

func (s *stubPlanner) Now() time.Time { return s.now }

func (s *stubPlanner) TimingWindow(string, string) (timing.TimingWindow, error) {
	return timing.TimingWindow{}, s.err
}

func (s *stubPlanner) NextWindow(_, _ string, from time.Time) (timing.NextWindow, error) {
	s.from = from
	return s.next, s.err
}

func serve(h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	h(c)
	return rec
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: %q", timing.ErrUnknownActivity, "mowing"), http.StatusBadRequest, "unknown_activity"},
		{timing.ErrUnknownRegion, http.StatusBadRequest, "unknown_region"},
		{timing.ErrInvalidMonth, http.StatusBadRequest, "invalid_month"},
		{timing.ErrInvalidTemperature, http.StatusBadRequest, "invalid_temperature"},
		{timing.ErrNoWindowFound, http.StatusNotFound, "no_window_found"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		status, code := classifyError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestWindowInternalError(t *testing.T) {
	h := NewTimingHandler(&stubPlanner{err: errors.New("boom")}, nil)

	rec := serve(h.Window, "/api/v1/timing?activity=seeding")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal", resp.Code)
}

func TestNextWindowNotFound(t *testing.T) {
	h := NewTimingHandler(&stubPlanner{err: timing.ErrNoWindowFound}, nil)

	rec := serve(h.NextWindow, "/api/v1/next-window?activity=seeding")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNextWindowParsesFromInPlannerLocation(t *testing.T) {
	loc := time.FixedZone("CST", -6*60*60)
	stub := &stubPlanner{
		now: time.Date(2024, time.June, 15, 9, 0, 0, 0, loc),
		next: timing.NextWindow{
			Activity:       timing.ActivityOverseeding,
			Region:         timing.RegionSouthern,
			Start:          time.Date(2024, time.August, 1, 0, 0, 0, 0, loc),
			End:            time.Date(2024, time.November, 30, 0, 0, 0, 0, loc),
			DaysUntilStart: 47,
			LengthDays:     122,
			Temperature:    timing.TemperatureRange{MinF: 60, MaxF: 85},
		},
	}
	h := NewTimingHandler(stub, nil)

	rec := serve(h.NextWindow, "/api/v1/next-window?activity=overseeding&region=southern&from=2024-06-15")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, loc, stub.from.Location())
	assert.Equal(t, 15, stub.from.Day())

	var resp models.NextWindowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "overseeding", resp.Activity)
	assert.Equal(t, "2024-08-01", resp.StartDate)
	assert.Equal(t, "2024-11-30", resp.EndDate)
	assert.Equal(t, 47, resp.DaysUntilStart)
	assert.Equal(t, "60°F - 85°F", resp.OptimalRange)
}

func TestNextWindowDefaultsToNow(t *testing.T) {
	now := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	stub := &stubPlanner{now: now}
	h := NewTimingHandler(stub, nil)

	rec := serve(h.NextWindow, "/api/v1/next-window?activity=seeding")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, now.Equal(stub.from))
}
