package timing

// TimingWindow is the effective window for an activity in a region.
type TimingWindow struct {
	Activity    Activity         `json:"activity"`
	Region      Region           `json:"region"`
	Months      MonthRange       `json:"months"`
	Temperature TemperatureRange `json:"temperature"`
	Description string           `json:"description"`
	Category    Category         `json:"category"`
}

// Window resolves the effective timing window for activity in region.
func Window(activity Activity, region Region) (TimingWindow, error) {
	months, temps, description, err := BaseWindow(activity)
	if err != nil {
		return TimingWindow{}, err
	}

	adjustedMonths, err := AdjustMonths(activity, months, region)
	if err != nil {
		return TimingWindow{}, err
	}
	adjustedTemps, err := AdjustTemperature(activity, temps, region)
	if err != nil {
		return TimingWindow{}, err
	}

	return TimingWindow{
		Activity:    activity,
		Region:      region,
		Months:      adjustedMonths,
		Temperature: adjustedTemps,
		Description: regionalDescription(activity, region, description),
		Category:    catalog[activity].category,
	}, nil
}
