package models

// TimingQuery binds the activity/region query parameters.
type TimingQuery struct {
	Activity string `form:"activity" binding:"required"`
	Region   string `form:"region"`
}

// OptimalQuery binds the parameters of an optimal-conditions check.
type OptimalQuery struct {
	Activity    string   `form:"activity" binding:"required"`
	Region      string   `form:"region"`
	Month       *int     `form:"month" binding:"required"`
	Temperature *float64 `form:"temp" binding:"required"`
}

// ConditionsQuery binds the parameters of an all-activity conditions check.
type ConditionsQuery struct {
	Region      string   `form:"region"`
	Month       *int     `form:"month" binding:"required"`
	Temperature *float64 `form:"temp" binding:"required"`
}

// NextWindowQuery binds the parameters of a next window lookup. From is YYYY-MM-DD.
type NextWindowQuery struct {
	Activity string `form:"activity"`
	Region   string `form:"region"`
	From     string `form:"from"`
}

// ScheduleQuery binds the parameters of a schedule request.
type ScheduleQuery struct {
	Region string `form:"region"`
	Month  *int   `form:"month"`
}

// TimingWindowResponse describes a resolved timing window.
type TimingWindowResponse struct {
	Activity     string  `json:"activity"`
	Name         string  `json:"name"`
	Region       string  `json:"region"`
	Category     string  `json:"category"`
	StartMonth   int     `json:"start_month"`
	EndMonth     int     `json:"end_month"`
	WrapsYear    bool    `json:"wraps_year"`
	TempMinF     float64 `json:"temp_min"`
	TempMaxF     float64 `json:"temp_max"`
	Description  string  `json:"description"`
	OptimalRange string  `json:"optimal_temp_range"`
}

// AssessmentResponse describes the outcome of checking conditions for one activity.
type AssessmentResponse struct {
	Activity      string               `json:"activity"`
	Region        string               `json:"region"`
	Month         int                  `json:"month"`
	TemperatureF  float64              `json:"temperature_f"`
	Optimal       bool                 `json:"optimal"`
	Status        string               `json:"status"`
	MonthOK       bool                 `json:"month_ok"`
	TemperatureOK bool                 `json:"temperature_ok"`
	Window        TimingWindowResponse `json:"window"`
}

// ConditionsResponse lists assessments for every activity.
type ConditionsResponse struct {
	Region       string               `json:"region"`
	Month        int                  `json:"month"`
	TemperatureF float64              `json:"temperature_f"`
	Activities   []AssessmentResponse `json:"activities"`
}

// NextWindowResponse mirrors a next window lookup.
type NextWindowResponse struct {
	Activity       string  `json:"activity"`
	Region         string  `json:"region"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DaysUntilStart int     `json:"days_until_start"`
	LengthDays     int     `json:"window_length_days"`
	TempMinF       float64 `json:"temp_min"`
	TempMaxF       float64 `json:"temp_max"`
	OptimalRange   string  `json:"optimal_temp_range"`
	Description    string  `json:"description"`
}

// NextWindowsResponse lists the next window of every activity, soonest first.
type NextWindowsResponse struct {
	Region  string               `json:"region"`
	From    string               `json:"from"`
	Windows []NextWindowResponse `json:"windows"`
}

// ScheduleResponse is the twelve month schedule keyed by month number.
type ScheduleResponse struct {
	Region string           `json:"region"`
	Months map[int][]string `json:"months"`
}

// MonthActivity is one activity recommended in a month.
type MonthActivity struct {
	Activity    string  `json:"activity"`
	Name        string  `json:"name"`
	TempMinF    float64 `json:"temp_min"`
	TempMaxF    float64 `json:"temp_max"`
	Description string  `json:"description"`
}

// MonthScheduleResponse lists the activities of a single month.
type MonthScheduleResponse struct {
	Region     string          `json:"region"`
	Month      int             `json:"month"`
	Activities []MonthActivity `json:"activities"`
}
