package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/lawncare/internal/domain/models"
	"github.com/mamadbah2/lawncare/internal/timing"
)

const dateLayout = "2006-01-02"

// Planner describes the planning operations the HTTP layer relies on.
type Planner interface {
	ResolveRegion(raw string) (timing.Region, error)
	Now() time.Time
	TimingWindow(activity, region string) (timing.TimingWindow, error)
	Assess(activity, region string, month int, tempF float64) (timing.Assessment, error)
	Conditions(region string, month int, tempF float64) ([]timing.Assessment, error)
	NextWindow(activity, region string, from time.Time) (timing.NextWindow, error)
	NextWindows(region string, from time.Time) ([]timing.NextWindow, error)
	MonthlySchedule(region string) (timing.Schedule, error)
	ActivitiesForMonth(region string, month int) ([]timing.TimingWindow, error)
}

// TimingHandler exposes the timing engine over HTTP.
type TimingHandler struct {
	svc    Planner
	logger *zap.Logger
}

// NewTimingHandler constructs the HTTP handler adapter.
func NewTimingHandler(svc Planner, logger *zap.Logger) *TimingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimingHandler{svc: svc, logger: logger}
}

// Window returns the effective timing window for an activity and region.
func (h *TimingHandler) Window(c *gin.Context) {
	var q models.TimingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	window, err := h.svc.TimingWindow(q.Activity, q.Region)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toWindowResponse(window))
}

// Optimal checks whether a month and temperature are optimal for an activity.
func (h *TimingHandler) Optimal(c *gin.Context) {
	var q models.OptimalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	assessment, err := h.svc.Assess(q.Activity, q.Region, *q.Month, *q.Temperature)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toAssessmentResponse(assessment))
}

// Conditions assesses every activity for a month and temperature.
func (h *TimingHandler) Conditions(c *gin.Context) {
	var q models.ConditionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	region, err := h.svc.ResolveRegion(q.Region)
	if err != nil {
		h.fail(c, err)
		return
	}

	assessments, err := h.svc.Conditions(q.Region, *q.Month, *q.Temperature)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := models.ConditionsResponse{
		Region:       region.String(),
		Month:        *q.Month,
		TemperatureF: *q.Temperature,
		Activities:   make([]models.AssessmentResponse, 0, len(assessments)),
	}
	for _, a := range assessments {
		resp.Activities = append(resp.Activities, toAssessmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// NextWindow returns the next window for one activity, or for every activity when none is named.
func (h *TimingHandler) NextWindow(c *gin.Context) {
	var q models.NextWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	from := h.svc.Now()
	if q.From != "" {
		parsed, err := time.ParseInLocation(dateLayout, q.From, from.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "from must be formatted YYYY-MM-DD", Code: "invalid_date"})
			return
		}
		from = parsed
	}

	if q.Activity == "" {
		h.allNextWindows(c, q.Region, from)
		return
	}

	next, err := h.svc.NextWindow(q.Activity, q.Region, from)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toNextWindowResponse(next))
}

func (h *TimingHandler) allNextWindows(c *gin.Context, region string, from time.Time) {
	resolved, err := h.svc.ResolveRegion(region)
	if err != nil {
		h.fail(c, err)
		return
	}

	windows, err := h.svc.NextWindows(region, from)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := models.NextWindowsResponse{
		Region:  resolved.String(),
		From:    from.Format(dateLayout),
		Windows: make([]models.NextWindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, toNextWindowResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

// Schedule returns the yearly schedule for a region, or a single month when month is given.
func (h *TimingHandler) Schedule(c *gin.Context) {
	var q models.ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	region, err := h.svc.ResolveRegion(q.Region)
	if err != nil {
		h.fail(c, err)
		return
	}

	if q.Month != nil {
		windows, err := h.svc.ActivitiesForMonth(q.Region, *q.Month)
		if err != nil {
			h.fail(c, err)
			return
		}

		resp := models.MonthScheduleResponse{
			Region:     region.String(),
			Month:      *q.Month,
			Activities: make([]models.MonthActivity, 0, len(windows)),
		}
		for _, w := range windows {
			resp.Activities = append(resp.Activities, models.MonthActivity{
				Activity:    w.Activity.String(),
				Name:        w.Activity.Title(),
				TempMinF:    w.Temperature.MinF,
				TempMaxF:    w.Temperature.MaxF,
				Description: w.Description,
			})
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	schedule, err := h.svc.MonthlySchedule(q.Region)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := models.ScheduleResponse{Region: region.String(), Months: make(map[int][]string, len(schedule))}
	for month, activities := range schedule {
		names := make([]string, 0, len(activities))
		for _, a := range activities {
			names = append(names, a.String())
		}
		resp.Months[int(month)] = names
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TimingHandler) badRequest(c *gin.Context, err error) {
	h.logger.Debug("invalid query", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Code: "invalid_request"})
}

func (h *TimingHandler) fail(c *gin.Context, err error) {
	status, code := classifyError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("timing request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, models.ErrorResponse{Error: err.Error(), Code: code})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, timing.ErrUnknownActivity):
		return http.StatusBadRequest, "unknown_activity"
	case errors.Is(err, timing.ErrUnknownRegion):
		return http.StatusBadRequest, "unknown_region"
	case errors.Is(err, timing.ErrInvalidMonth):
		return http.StatusBadRequest, "invalid_month"
	case errors.Is(err, timing.ErrInvalidTemperature):
		return http.StatusBadRequest, "invalid_temperature"
	case errors.Is(err, timing.ErrNoWindowFound):
		return http.StatusNotFound, "no_window_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func toWindowResponse(w timing.TimingWindow) models.TimingWindowResponse {
	return models.TimingWindowResponse{
		Activity:     w.Activity.String(),
		Name:         w.Activity.Title(),
		Region:       w.Region.String(),
		Category:     w.Category.String(),
		StartMonth:   int(w.Months.Start),
		EndMonth:     int(w.Months.End),
		WrapsYear:    w.Months.Wraps(),
		TempMinF:     w.Temperature.MinF,
		TempMaxF:     w.Temperature.MaxF,
		Description:  w.Description,
		OptimalRange: w.Temperature.String(),
	}
}

func toAssessmentResponse(a timing.Assessment) models.AssessmentResponse {
	return models.AssessmentResponse{
		Activity:      a.Window.Activity.String(),
		Region:        a.Window.Region.String(),
		Month:         int(a.Month),
		TemperatureF:  a.TemperatureF,
		Optimal:       a.Status == timing.StatusOptimal,
		Status:        a.Status.String(),
		MonthOK:       a.MonthOK,
		TemperatureOK: a.TemperatureOK,
		Window:        toWindowResponse(a.Window),
	}
}

func toNextWindowResponse(n timing.NextWindow) models.NextWindowResponse {
	return models.NextWindowResponse{
		Activity:       n.Activity.String(),
		Region:         n.Region.String(),
		StartDate:      n.Start.Format(dateLayout),
		EndDate:        n.End.Format(dateLayout),
		DaysUntilStart: n.DaysUntilStart,
		LengthDays:     n.LengthDays,
		TempMinF:       n.Temperature.MinF,
		TempMaxF:       n.Temperature.MaxF,
		OptimalRange:   n.Temperature.String(),
		Description:    n.Description,
	}
}
