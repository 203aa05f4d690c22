package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/lawncare/internal/config"
	"github.com/mamadbah2/lawncare/internal/timing"
)

func newTestService(t *testing.T, region timing.Region) *Service {
	t.Helper()
	svc := NewService(config.PlannerConfig{DefaultRegion: region, ScheduleCacheSize: 4}, nil)
	svc.now = func() time.Time { return time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestTimingWindowParsesRawInput(t *testing.T) {
	svc := newTestService(t, timing.RegionCentral)

	window, err := svc.TimingWindow("SEEDING", "")
	require.NoError(t, err)
	assert.Equal(t, timing.RegionCentral, window.Region)
	assert.Equal(t, timing.MonthRange{Start: time.April, End: time.June}, window.Months)

	window, err = svc.TimingWindow("weed control", "Southern")
	require.NoError(t, err)
	assert.Equal(t, timing.ActivityWeedControl, window.Activity)
	assert.Equal(t, timing.RegionSouthern, window.Region)
}

func TestTimingWindowErrors(t *testing.T) {
	svc := newTestService(t, timing.RegionCentral)

	_, err := svc.TimingWindow("mowing", "central")
	assert.ErrorIs(t, err, timing.ErrUnknownActivity)
	assert.True(t, IsInvalidInput(err))

	_, err = svc.TimingWindow("seeding", "polar")
	assert.ErrorIs(t, err, timing.ErrUnknownRegion)
}

func TestDefaultRegionFallback(t *testing.T) {
	svc := newTestService(t, timing.RegionNorthern)

	window, err := svc.TimingWindow("seeding", "  ")
	require.NoError(t, err)
	assert.Equal(t, timing.RegionNorthern, window.Region)

	svc = NewService(config.PlannerConfig{DefaultRegion: timing.Region(99)}, nil)
	assert.Equal(t, timing.DefaultRegion, svc.DefaultRegion())
}

func TestIsOptimal(t *testing.T) {
	svc := newTestService(t, timing.RegionCentral)

	ok, err := svc.IsOptimal("fertilizing", "northern", 5, 70)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsOptimal("winterizing", "central", 6, 85)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.IsOptimal("winterizing", "central", 13, 85)
	assert.ErrorIs(t, err, timing.ErrInvalidMonth)

	_, err = svc.IsOptimal("winterizing", "central", 6, 200)
	assert.ErrorIs(t, err, timing.ErrInvalidTemperature)
}

func TestConditionsCoversEveryActivity(t *testing.T) {
	svc := newTestService(t, timing.RegionCentral)

	assessments, err := svc.Conditions("central", 4, 60)
	require.NoError(t, err)
	require.Len(t, assessments, len(timing.Activities()))

	for i, a := range assessments {
		assert.Equal(t, timing.Activities()[i], a.Window.Activity)
	}
	assert.Equal(t, timing.StatusOptimal, assessments[timing.ActivitySeeding].Status)

	_, err = svc.Conditions("central", 0, 60)
	assert.ErrorIs(t, err, timing.ErrInvalidMonth)
}

func TestNextWindowDefaultsToNow(t *testing.T) {
	svc := newTestService(t, timing.RegionSouthern)

	next, err := svc.NextWindow("overseeding", "", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), next.Start)
	assert.GreaterOrEqual(t, next.LengthDays, 30)
}

func TestNextWindowsSortedBySoonest(t *testing.T) {
	svc := newTestService(t, timing.RegionCentral)

	windows, err := svc.NextWindows("central", time.Time{})
	require.NoError(t, err)
	require.Len(t, windows, len(timing.Activities()))

	for i := 1; i < len(windows); i++ {
		assert.False(t, windows[i].Start.Before(windows[i-1].Start))
	}
	// Windows already open in mid June skip to their next cycle; overseeding opens first.
	assert.Equal(t, time.August, windows[0].Start.Month())
}

func TestMonthlyScheduleIsMemoizedAndCopied(t *testing.T) {
	svc := newTestService(t, timing.RegionCentral)

	first, err := svc.MonthlySchedule("central")
	require.NoError(t, err)
	require.Contains(t, first[time.April], timing.ActivitySeeding)

	first[time.April] = nil

	second, err := svc.MonthlySchedule("central")
	require.NoError(t, err)
	assert.Contains(t, second[time.April], timing.ActivitySeeding)

	_, ok := svc.schedules.GetIfPresent(timing.RegionCentral)
	assert.True(t, ok)
}

func TestActivitiesForMonth(t *testing.T) {
	svc := newTestService(t, timing.RegionSouthern)

	windows, err := svc.ActivitiesForMonth("", 12)
	require.NoError(t, err)

	var names []timing.Activity
	for _, w := range windows {
		names = append(names, w.Activity)
		assert.True(t, w.Months.Contains(time.December))
	}
	assert.Contains(t, names, timing.ActivityWinterizing)

	_, err = svc.ActivitiesForMonth("", 0)
	assert.ErrorIs(t, err, timing.ErrInvalidMonth)
}
