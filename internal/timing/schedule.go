package timing

import "time"

// Schedule maps each calendar month to the activities recommended in it, in catalog order.
type Schedule map[time.Month][]Activity

// ScheduledActivity pairs an activity with its status under given conditions.
type ScheduledActivity struct {
	Activity Activity       `json:"activity"`
	Status   ActivityStatus `json:"status"`
}

// ActivitiesForMonth lists activities whose window includes month in region. Temperature is not
// considered.
func ActivitiesForMonth(region Region, month time.Month) ([]Activity, error) {
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}

	out := make([]Activity, 0, activityCount)
	for _, activity := range Activities() {
		window, err := Window(activity, region)
		if err != nil {
			return nil, err
		}
		if window.Months.Contains(month) {
			out = append(out, activity)
		}
	}
	return out, nil
}

// MonthlySchedule builds the twelve month activity table for region.
func MonthlySchedule(region Region) (Schedule, error) {
	schedule := make(Schedule, 12)
	for month := time.January; month <= time.December; month++ {
		activities, err := ActivitiesForMonth(region, month)
		if err != nil {
			return nil, err
		}
		schedule[month] = activities
	}
	return schedule, nil
}

// MonthPlan classifies every activity for the given month and temperature in region.
func MonthPlan(region Region, month time.Month, tempF float64) ([]ScheduledActivity, error) {
	plan := make([]ScheduledActivity, 0, activityCount)
	for _, activity := range Activities() {
		status, err := Classify(activity, region, month, tempF)
		if err != nil {
			return nil, err
		}
		plan = append(plan, ScheduledActivity{Activity: activity, Status: status})
	}
	return plan, nil
}
