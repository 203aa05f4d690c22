package timing

import (
	"fmt"
	"time"
)

// regionalOffset shifts a central window for one region. Start and end move independently, so
// a northern window can open later and close earlier than the central one.
type regionalOffset struct {
	start, end  int
	minF, maxF  float64
	description string
}

// regionalOffsets is indexed by activity then region. The central column is always zero.
var regionalOffsets = [activityCount][regionCount]regionalOffset{
	ActivitySeeding: {
		RegionNorthern: {start: 0, end: -1, minF: -5, maxF: -5, description: "Cool season grass seeding in spring"},
		RegionSouthern: {start: -1, end: -1, minF: 5, maxF: 5, description: "Early spring seeding for warm season"},
	},
	ActivityFertilizing: {
		RegionNorthern: {start: 1, end: -1, minF: -5, maxF: -5, description: "Growing season fertilization"},
		RegionSouthern: {start: -1, end: 0, minF: 5, maxF: 5, description: "Year-round growing potential"},
	},
	ActivityDethatching: {
		RegionNorthern: {start: 1, end: 0, minF: 5, maxF: -5, description: "Spring dethatching when soil workable"},
		RegionSouthern: {start: -1, end: -1, minF: 5, maxF: 5, description: "Late winter to early spring"},
	},
	ActivityAeration: {
		RegionNorthern: {start: 0, end: -1, minF: -5, maxF: -5, description: "Spring aeration for cool season"},
		// Warm season turf is aerated once it is actively growing.
		RegionSouthern: {start: 1, end: 1, minF: 10, maxF: 10, description: "Late spring to early summer"},
	},
	ActivityOverseeding: {
		RegionNorthern: {start: 0, end: -1, minF: 5, maxF: -5, description: "Fall overseeding optimal"},
		RegionSouthern: {start: 0, end: 1, minF: 5, maxF: 5, description: "Fall into early winter"},
	},
	ActivityWeedControl: {
		RegionNorthern: {start: 1, end: -1, minF: 5, maxF: -5, description: "Pre and post-emergent timing"},
		RegionSouthern: {start: -1, end: 1, minF: 5, maxF: 5, description: "Nearly year-round control needed"},
	},
	ActivityGrubControl: {
		RegionNorthern: {start: 1, end: -1, minF: 5, maxF: -5, description: "Summer grub control"},
		RegionSouthern: {start: -1, end: 1, minF: 5, maxF: 5, description: "Long grub control period"},
	},
	ActivityWinterizing: {
		RegionNorthern: {start: 0, end: 0, minF: -5, maxF: -5, description: "Prepare for harsh winter"},
		RegionSouthern: {start: 2, end: 2, minF: 5, maxF: 5, description: "Minimal winterization needed"},
	},
}

func offsetFor(activity Activity, region Region) (regionalOffset, error) {
	if !activity.Valid() {
		return regionalOffset{}, fmt.Errorf("%w: %s", ErrUnknownActivity, activity)
	}
	if !region.Valid() {
		return regionalOffset{}, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	return regionalOffsets[activity][region], nil
}

// AdjustMonths shifts a base month range for the region the activity is performed in.
func AdjustMonths(activity Activity, base MonthRange, region Region) (MonthRange, error) {
	off, err := offsetFor(activity, region)
	if err != nil {
		return MonthRange{}, err
	}
	return MonthRange{
		Start: shiftMonth(base.Start, off.start),
		End:   shiftMonth(base.End, off.end),
	}, nil
}

// AdjustTemperature shifts a base temperature range for the region.
func AdjustTemperature(activity Activity, base TemperatureRange, region Region) (TemperatureRange, error) {
	off, err := offsetFor(activity, region)
	if err != nil {
		return TemperatureRange{}, err
	}
	return TemperatureRange{MinF: base.MinF + off.minF, MaxF: base.MaxF + off.maxF}, nil
}

// regionalDescription returns the region specific note, falling back to the base description.
func regionalDescription(activity Activity, region Region, base string) string {
	if off, err := offsetFor(activity, region); err == nil && off.description != "" {
		return off.description
	}
	return base
}

// shiftMonth moves month by offset, wrapping within 1-12.
func shiftMonth(month time.Month, offset int) time.Month {
	return time.Month(((int(month)-1+offset)%12+12)%12 + 1)
}
