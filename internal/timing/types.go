// Package timing computes regional lawn care timing windows, validates conditions against them,
// finds the next window opening and builds yearly activity schedules.
//
// Everything here is pure: tables are read-only and every value is built fresh per call.
package timing

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Activity enumerates supported lawn care activities.
type Activity uint8

const (
	ActivitySeeding Activity = iota
	ActivityFertilizing
	ActivityDethatching
	ActivityAeration
	ActivityOverseeding
	ActivityWeedControl
	ActivityGrubControl
	ActivityWinterizing

	activityCount
)

var activityNames = [activityCount]string{
	ActivitySeeding:     "seeding",
	ActivityFertilizing: "fertilizing",
	ActivityDethatching: "dethatching",
	ActivityAeration:    "aeration",
	ActivityOverseeding: "overseeding",
	ActivityWeedControl: "weed_control",
	ActivityGrubControl: "grub_control",
	ActivityWinterizing: "winterizing",
}

// Activities returns every supported activity in catalog order.
func Activities() []Activity {
	out := make([]Activity, 0, activityCount)
	for a := Activity(0); a < activityCount; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a is one of the enumerated activities.
func (a Activity) Valid() bool { return a < activityCount }

func (a Activity) String() string {
	if !a.Valid() {
		return fmt.Sprintf("activity(%d)", uint8(a))
	}
	return activityNames[a]
}

// Title renders the activity for humans, e.g. "Weed Control".
func (a Activity) Title() string {
	if !a.Valid() {
		return a.String()
	}
	words := strings.Split(activityNames[a], "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// MarshalText encodes the activity as its canonical name.
func (a Activity) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownActivity, uint8(a))
	}
	return []byte(activityNames[a]), nil
}

// UnmarshalText decodes any spelling accepted by ParseActivity.
func (a *Activity) UnmarshalText(text []byte) error {
	parsed, err := ParseActivity(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Region enumerates climate regions.
type Region uint8

const (
	RegionNorthern Region = iota
	RegionCentral
	RegionSouthern

	regionCount
)

// DefaultRegion is used when callers do not name a region.
const DefaultRegion = RegionCentral

var regionNames = [regionCount]string{
	RegionNorthern: "northern",
	RegionCentral:  "central",
	RegionSouthern: "southern",
}

// Regions returns every supported region from north to south.
func Regions() []Region {
	return []Region{RegionNorthern, RegionCentral, RegionSouthern}
}

// Valid reports whether r is one of the enumerated regions.
func (r Region) Valid() bool { return r < regionCount }

func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("region(%d)", uint8(r))
	}
	return regionNames[r]
}

// Title renders the region for humans, e.g. "Southern".
func (r Region) Title() string {
	if !r.Valid() {
		return r.String()
	}
	name := regionNames[r]
	return strings.ToUpper(name[:1]) + name[1:]
}

// MarshalText encodes the region as its canonical name.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegion, uint8(r))
	}
	return []byte(regionNames[r]), nil
}

// UnmarshalText decodes any spelling accepted by ParseRegion.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Category groups activities by the part of the season they serve. Regional offsets move
// spring establishment work earlier in the south and cold hardening work later.
type Category uint8

const (
	CategorySpringEstablishment Category = iota
	CategoryGrowingSeason
	CategoryFallRecovery
	CategoryColdHardening
)

func (c Category) String() string {
	switch c {
	case CategorySpringEstablishment:
		return "spring_establishment"
	case CategoryGrowingSeason:
		return "growing_season"
	case CategoryFallRecovery:
		return "fall_recovery"
	case CategoryColdHardening:
		return "cold_hardening"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// MarshalText encodes the category as its name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MonthRange is an inclusive span of calendar months. Start > End means the span crosses the
// year boundary (e.g. November through February).
type MonthRange struct {
	Start time.Month `json:"start_month"`
	End   time.Month `json:"end_month"`
}

// Wraps reports whether the range crosses the year boundary.
func (m MonthRange) Wraps() bool { return m.Start > m.End }

// Contains reports whether month falls inside the range, both ends inclusive.
func (m MonthRange) Contains(month time.Month) bool {
	if m.Start <= m.End {
		return m.Start <= month && month <= m.End
	}
	return month >= m.Start || month <= m.End
}

// Months returns the number of calendar months covered.
func (m MonthRange) Months() int {
	if m.Start <= m.End {
		return int(m.End-m.Start) + 1
	}
	return int(12-m.Start) + int(m.End) + 1
}

func (m MonthRange) String() string {
	return fmt.Sprintf("%s-%s", m.Start, m.End)
}

// TemperatureRange is a closed interval in degrees Fahrenheit.
type TemperatureRange struct {
	MinF float64 `json:"min_f"`
	MaxF float64 `json:"max_f"`
}

// Contains reports whether tempF lies within [MinF, MaxF].
func (t TemperatureRange) Contains(tempF float64) bool {
	return t.MinF <= tempF && tempF <= t.MaxF
}

func (t TemperatureRange) String() string {
	return fmt.Sprintf("%g°F - %g°F", t.MinF, t.MaxF)
}

// Physical bounds accepted for an observed temperature.
const (
	MinTemperatureF = -50.0
	MaxTemperatureF = 150.0
)

// ValidateMonth returns ErrInvalidMonth unless month is within 1-12.
func ValidateMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	return nil
}

// ValidateTemperature returns ErrInvalidTemperature for NaN, infinities and values outside the
// physical bounds.
func ValidateTemperature(tempF float64) error {
	if math.IsNaN(tempF) || math.IsInf(tempF, 0) {
		return fmt.Errorf("%w: not a finite number", ErrInvalidTemperature)
	}
	if tempF < MinTemperatureF || tempF > MaxTemperatureF {
		return fmt.Errorf("%w: %g°F outside [%g, %g]", ErrInvalidTemperature, tempF, MinTemperatureF, MaxTemperatureF)
	}
	return nil
}
