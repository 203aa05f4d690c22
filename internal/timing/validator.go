package timing

import (
	"fmt"
	"time"
)

// ActivityStatus is the outcome of checking conditions against a window.
type ActivityStatus uint8

const (
	StatusOptimal ActivityStatus = iota
	StatusSuboptimal
	StatusNotRecommended
)

func (s ActivityStatus) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusSuboptimal:
		return "suboptimal"
	case StatusNotRecommended:
		return "not_recommended"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// MarshalText encodes the status as its name.
func (s ActivityStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Assessment explains a classification: which of the two checks passed and against what window.
type Assessment struct {
	Window        TimingWindow   `json:"window"`
	Month         time.Month     `json:"month"`
	TemperatureF  float64        `json:"temperature_f"`
	MonthOK       bool           `json:"month_ok"`
	TemperatureOK bool           `json:"temperature_ok"`
	Status        ActivityStatus `json:"status"`
}

// Assess checks month and temperature against the effective window for activity in region.
func Assess(activity Activity, region Region, month time.Month, tempF float64) (Assessment, error) {
	if err := ValidateMonth(month); err != nil {
		return Assessment{}, err
	}
	if err := ValidateTemperature(tempF); err != nil {
		return Assessment{}, err
	}

	window, err := Window(activity, region)
	if err != nil {
		return Assessment{}, err
	}

	monthOK := window.Months.Contains(month)
	tempOK := window.Temperature.Contains(tempF)

	return Assessment{
		Window:        window,
		Month:         month,
		TemperatureF:  tempF,
		MonthOK:       monthOK,
		TemperatureOK: tempOK,
		Status:        statusFor(monthOK, tempOK),
	}, nil
}

// Classify returns Optimal when both month and temperature fit, Suboptimal when exactly one
// does and NotRecommended otherwise.
func Classify(activity Activity, region Region, month time.Month, tempF float64) (ActivityStatus, error) {
	a, err := Assess(activity, region, month, tempF)
	if err != nil {
		return 0, err
	}
	return a.Status, nil
}

// IsOptimal reports whether conditions are optimal for activity in region.
func IsOptimal(activity Activity, region Region, month time.Month, tempF float64) (bool, error) {
	status, err := Classify(activity, region, month, tempF)
	if err != nil {
		return false, err
	}
	return status == StatusOptimal, nil
}

func statusFor(monthOK, tempOK bool) ActivityStatus {
	switch {
	case monthOK && tempOK:
		return StatusOptimal
	case monthOK || tempOK:
		return StatusSuboptimal
	default:
		return StatusNotRecommended
	}
}
