package timing

import (
	"fmt"
	"strings"
)

// ParseActivity resolves free-form input such as "seeding", "Weed Control" or "GRUB-CONTROL".
func ParseActivity(raw string) (Activity, error) {
	key := normalizeName(raw)
	for a := Activity(0); a < activityCount; a++ {
		if normalizeName(activityNames[a]) == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, raw)
}

// ParseRegion resolves free-form input such as "northern" or "Southern".
func ParseRegion(raw string) (Region, error) {
	key := normalizeName(raw)
	for r := Region(0); r < regionCount; r++ {
		if regionNames[r] == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, raw)
}

// normalizeName lowercases and drops separators so "weed_control" and "Weed Control" compare equal.
func normalizeName(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
