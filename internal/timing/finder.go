package timing

import (
	"fmt"
	"time"
)

// maxScanSteps bounds the forward search to one full year plus one month.
const maxScanSteps = 13

// NextWindow describes the next opening of an activity window.
type NextWindow struct {
	Activity       Activity         `json:"activity"`
	Region         Region           `json:"region"`
	Start          time.Time        `json:"start_date"`
	End            time.Time        `json:"end_date"`
	DaysUntilStart int              `json:"days_until_start"`
	LengthDays     int              `json:"window_length_days"`
	Temperature    TemperatureRange `json:"temperature"`
	Description    string           `json:"description"`
}

// FindNextWindow returns the next time the activity window opens after from. When from already
// falls inside the window the current cycle is skipped. Start is the first day of the opening
// month and End the last day of the closing month, both in from's location. Granularity is whole
// months.
func FindNextWindow(activity Activity, region Region, from time.Time) (NextWindow, error) {
	window, err := Window(activity, region)
	if err != nil {
		return NextWindow{}, err
	}

	start, end, err := scanWindow(window.Months.Contains, from)
	if err != nil {
		return NextWindow{}, fmt.Errorf("%s in %s: %w", activity, region, err)
	}

	return NextWindow{
		Activity:       activity,
		Region:         region,
		Start:          start,
		End:            end,
		DaysUntilStart: max(0, daysBetween(from, start)),
		LengthDays:     daysBetween(start, end) + 1,
		Temperature:    window.Temperature,
		Description:    window.Description,
	}, nil
}

// scanWindow walks forward month by month from the month of from. A month opens the window when
// it is a member and the month before it is not.
func scanWindow(contains func(time.Month) bool, from time.Time) (time.Time, time.Time, error) {
	origin := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())

	var start time.Time
	for step := 1; step <= maxScanSteps; step++ {
		candidate := origin.AddDate(0, step, 0)
		previous := origin.AddDate(0, step-1, 0)
		if contains(candidate.Month()) && !contains(previous.Month()) {
			start = candidate
			break
		}
	}

	if start.IsZero() {
		// A window covering every month never opens; the next cycle starts next month.
		if !coversYear(contains) {
			return time.Time{}, time.Time{}, ErrNoWindowFound
		}
		start = origin.AddDate(0, 1, 0)
	}

	last := start
	for step := 1; step < 12; step++ {
		next := start.AddDate(0, step, 0)
		if !contains(next.Month()) {
			break
		}
		last = next
	}

	// Day zero of the following month is the last day of this one.
	end := time.Date(last.Year(), last.Month()+1, 0, 0, 0, 0, 0, last.Location())
	return start, end, nil
}

func coversYear(contains func(time.Month) bool) bool {
	for m := time.January; m <= time.December; m++ {
		if !contains(m) {
			return false
		}
	}
	return true
}

// daysBetween counts calendar days from a to b, ignoring clock time and DST shifts.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
