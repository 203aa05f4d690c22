package timing

import "fmt"

type catalogEntry struct {
	months      MonthRange
	temperature TemperatureRange
	description string
	category    Category
}

// catalog holds the central region baseline for every activity.
var catalog = [activityCount]catalogEntry{
	ActivitySeeding: {
		months:      MonthRange{Start: 4, End: 6},
		temperature: TemperatureRange{MinF: 55, MaxF: 80},
		description: "Spring seeding window",
		category:    CategorySpringEstablishment,
	},
	ActivityFertilizing: {
		months:      MonthRange{Start: 3, End: 11},
		temperature: TemperatureRange{MinF: 50, MaxF: 90},
		description: "Extended growing season",
		category:    CategoryGrowingSeason,
	},
	ActivityDethatching: {
		months:      MonthRange{Start: 3, End: 5},
		temperature: TemperatureRange{MinF: 45, MaxF: 75},
		description: "Early spring dethatching",
		category:    CategorySpringEstablishment,
	},
	ActivityAeration: {
		months:      MonthRange{Start: 4, End: 6},
		temperature: TemperatureRange{MinF: 50, MaxF: 80},
		description: "Spring to early summer",
		category:    CategoryGrowingSeason,
	},
	ActivityOverseeding: {
		months:      MonthRange{Start: 8, End: 10},
		temperature: TemperatureRange{MinF: 55, MaxF: 80},
		description: "Extended fall window",
		category:    CategoryFallRecovery,
	},
	ActivityWeedControl: {
		months:      MonthRange{Start: 3, End: 10},
		temperature: TemperatureRange{MinF: 45, MaxF: 90},
		description: "Extended weed control season",
		category:    CategoryGrowingSeason,
	},
	ActivityGrubControl: {
		months:      MonthRange{Start: 6, End: 9},
		temperature: TemperatureRange{MinF: 65, MaxF: 90},
		description: "Extended grub season",
		category:    CategoryGrowingSeason,
	},
	ActivityWinterizing: {
		months:      MonthRange{Start: 10, End: 11},
		temperature: TemperatureRange{MinF: 40, MaxF: 60},
		description: "Mid to late fall preparation",
		category:    CategoryColdHardening,
	},
}

// BaseWindow returns the central region window for an activity.
func BaseWindow(activity Activity) (MonthRange, TemperatureRange, string, error) {
	if !activity.Valid() {
		return MonthRange{}, TemperatureRange{}, "", fmt.Errorf("%w: %s", ErrUnknownActivity, activity)
	}
	entry := catalog[activity]
	return entry.months, entry.temperature, entry.description, nil
}

// CategoryOf returns the seasonal category of an activity.
func CategoryOf(activity Activity) (Category, error) {
	if !activity.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownActivity, activity)
	}
	return catalog[activity].category, nil
}
