package timing

import "errors"

// ErrUnknownActivity indicates the activity is not one of the supported lawn care activities.
var ErrUnknownActivity = errors.New("unknown activity")

// ErrUnknownRegion indicates the region is not one of the supported climate regions.
var ErrUnknownRegion = errors.New("unknown region")

// ErrInvalidMonth indicates a month outside 1-12.
var ErrInvalidMonth = errors.New("invalid month")

// ErrInvalidTemperature indicates a non-finite temperature or one outside the physical bounds.
var ErrInvalidTemperature = errors.New("invalid temperature")

// ErrNoWindowFound indicates the forward scan found no month inside the window.
var ErrNoWindowFound = errors.New("no window found")
