package planner

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
	"go.uber.org/zap"

	"github.com/mamadbah2/lawncare/internal/config"
	"github.com/mamadbah2/lawncare/internal/observability"
	"github.com/mamadbah2/lawncare/internal/timing"
)

const (
	opTimingWindow = "timing_window"
	opAssess       = "assess"
	opConditions   = "conditions"
	opNextWindow   = "next_window"
	opNextWindows  = "next_windows"
	opSchedule     = "monthly_schedule"
	opMonth        = "activities_for_month"
)

// Service is the raw-input boundary over the timing engine used by the HTTP API, the CLI and the
// digest job.
type Service struct {
	defaultRegion timing.Region
	schedules     *otter.Cache[timing.Region, timing.Schedule]
	logger        *zap.Logger
	now           func() time.Time
}

// NewService wires a new planner service instance.
func NewService(cfg config.PlannerConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.DefaultRegion.Valid() {
		cfg.DefaultRegion = timing.DefaultRegion
	}
	size := cfg.ScheduleCacheSize
	if size <= 0 {
		size = 16
	}

	return &Service{
		defaultRegion: cfg.DefaultRegion,
		schedules: otter.Must(&otter.Options[timing.Region, timing.Schedule]{
			MaximumSize: size,
		}),
		logger: logger,
		now:    time.Now,
	}
}

// DefaultRegion returns the region used when callers leave it blank.
func (s *Service) DefaultRegion() timing.Region {
	return s.defaultRegion
}

// Now returns the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// ResolveRegion parses a region name; blank input resolves to the default region.
func (s *Service) ResolveRegion(raw string) (timing.Region, error) {
	if strings.TrimSpace(raw) == "" {
		return s.defaultRegion, nil
	}
	return timing.ParseRegion(raw)
}

// TimingWindow returns the effective window for the named activity and region.
func (s *Service) TimingWindow(activity, region string) (timing.TimingWindow, error) {
	a, r, err := s.resolve(activity, region)
	if err != nil {
		return timing.TimingWindow{}, s.observe(opTimingWindow, err)
	}

	window, err := timing.Window(a, r)
	return window, s.observe(opTimingWindow, err)
}

// Assess checks a month (1-12) and temperature against the window for activity in region.
func (s *Service) Assess(activity, region string, month int, tempF float64) (timing.Assessment, error) {
	a, r, err := s.resolve(activity, region)
	if err != nil {
		return timing.Assessment{}, s.observe(opAssess, err)
	}

	assessment, err := timing.Assess(a, r, time.Month(month), tempF)
	if err == nil {
		s.logger.Debug("conditions assessed",
			zap.Stringer("activity", a),
			zap.Stringer("region", r),
			zap.Int("month", month),
			zap.Float64("temperature_f", tempF),
			zap.Stringer("status", assessment.Status))
	}
	return assessment, s.observe(opAssess, err)
}

// IsOptimal reports whether the conditions are optimal for the activity.
func (s *Service) IsOptimal(activity, region string, month int, tempF float64) (bool, error) {
	assessment, err := s.Assess(activity, region, month, tempF)
	if err != nil {
		return false, err
	}
	return assessment.Status == timing.StatusOptimal, nil
}

// Conditions assesses every activity for the given month and temperature in region.
func (s *Service) Conditions(region string, month int, tempF float64) ([]timing.Assessment, error) {
	r, err := s.ResolveRegion(region)
	if err != nil {
		return nil, s.observe(opConditions, err)
	}

	out := make([]timing.Assessment, 0, len(timing.Activities()))
	for _, activity := range timing.Activities() {
		assessment, err := timing.Assess(activity, r, time.Month(month), tempF)
		if err != nil {
			return nil, s.observe(opConditions, err)
		}
		out = append(out, assessment)
	}
	return out, s.observe(opConditions, nil)
}

// NextWindow finds the next opening of the activity window after from. A zero from means now.
func (s *Service) NextWindow(activity, region string, from time.Time) (timing.NextWindow, error) {
	a, r, err := s.resolve(activity, region)
	if err != nil {
		return timing.NextWindow{}, s.observe(opNextWindow, err)
	}
	if from.IsZero() {
		from = s.now()
	}

	next, err := timing.FindNextWindow(a, r, from)
	return next, s.observe(opNextWindow, err)
}

// NextWindows finds the next opening of every activity in region, soonest first.
func (s *Service) NextWindows(region string, from time.Time) ([]timing.NextWindow, error) {
	r, err := s.ResolveRegion(region)
	if err != nil {
		return nil, s.observe(opNextWindows, err)
	}
	if from.IsZero() {
		from = s.now()
	}

	out := make([]timing.NextWindow, 0, len(timing.Activities()))
	for _, activity := range timing.Activities() {
		next, err := timing.FindNextWindow(activity, r, from)
		if err != nil {
			return nil, s.observe(opNextWindows, err)
		}
		out = append(out, next)
	}
	slices.SortStableFunc(out, func(a, b timing.NextWindow) int {
		return a.Start.Compare(b.Start)
	})
	return out, s.observe(opNextWindows, nil)
}

// MonthlySchedule returns the twelve month schedule for region. Results are memoized per region;
// callers receive their own copy.
func (s *Service) MonthlySchedule(region string) (timing.Schedule, error) {
	r, err := s.ResolveRegion(region)
	if err != nil {
		return nil, s.observe(opSchedule, err)
	}

	schedule, err := s.schedule(r)
	if err != nil {
		return nil, s.observe(opSchedule, err)
	}
	return cloneSchedule(schedule), s.observe(opSchedule, nil)
}

// ActivitiesForMonth returns the windows of every activity scheduled in month for region.
func (s *Service) ActivitiesForMonth(region string, month int) ([]timing.TimingWindow, error) {
	r, err := s.ResolveRegion(region)
	if err != nil {
		return nil, s.observe(opMonth, err)
	}
	if err := timing.ValidateMonth(time.Month(month)); err != nil {
		return nil, s.observe(opMonth, err)
	}

	schedule, err := s.schedule(r)
	if err != nil {
		return nil, s.observe(opMonth, err)
	}

	activities := schedule[time.Month(month)]
	out := make([]timing.TimingWindow, 0, len(activities))
	for _, activity := range activities {
		window, err := timing.Window(activity, r)
		if err != nil {
			return nil, s.observe(opMonth, err)
		}
		out = append(out, window)
	}
	return out, s.observe(opMonth, nil)
}

func (s *Service) schedule(region timing.Region) (timing.Schedule, error) {
	if cached, ok := s.schedules.GetIfPresent(region); ok {
		observability.RecordScheduleCache(true)
		return cached, nil
	}
	observability.RecordScheduleCache(false)

	schedule, err := timing.MonthlySchedule(region)
	if err != nil {
		return nil, err
	}
	s.schedules.Set(region, schedule)
	s.logger.Debug("monthly schedule computed", zap.Stringer("region", region))
	return schedule, nil
}

func (s *Service) resolve(activity, region string) (timing.Activity, timing.Region, error) {
	a, err := timing.ParseActivity(activity)
	if err != nil {
		return 0, 0, err
	}
	r, err := s.ResolveRegion(region)
	if err != nil {
		return 0, 0, err
	}
	return a, r, nil
}

func (s *Service) observe(operation string, err error) error {
	switch {
	case err == nil:
		observability.RecordQuery(operation, observability.OutcomeOK)
		return nil
	case IsInvalidInput(err):
		observability.RecordQuery(operation, observability.OutcomeInvalidInput)
	default:
		observability.RecordQuery(operation, observability.OutcomeError)
		s.logger.Warn("timing query failed", zap.String("operation", operation), zap.Error(err))
	}
	return err
}

// IsInvalidInput reports whether err stems from caller supplied values rather than the engine.
func IsInvalidInput(err error) bool {
	return errors.Is(err, timing.ErrUnknownActivity) ||
		errors.Is(err, timing.ErrUnknownRegion) ||
		errors.Is(err, timing.ErrInvalidMonth) ||
		errors.Is(err, timing.ErrInvalidTemperature)
}

func cloneSchedule(in timing.Schedule) timing.Schedule {
	out := maps.Clone(in)
	for month, activities := range out {
		out[month] = slices.Clone(activities)
	}
	return out
}
