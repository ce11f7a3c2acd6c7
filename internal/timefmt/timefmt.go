// Package timefmt formats "HH:MM" time-of-day strings for display.
//
// Provider timings arrive as 24-hour strings, sometimes with a timezone
// suffix like "15:02 (BST)". Formatting applies the session's daylight-saving
// offset at most once: stored values that were already adjusted carry a flag
// so a redisplay never drifts the time further.
package timefmt

import (
	"fmt"
	"strings"
)

// Mode selects the clock convention for display.
type Mode string

const (
	Mode12h Mode = "12h"
	Mode24h Mode = "24h"
)

// TimeOfDay is an hour/minute pair, comparable by minutes since midnight.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Parse extracts a TimeOfDay from an "HH:MM" string, tolerating surrounding
// whitespace and a trailing timezone suffix. The boolean is false for empty
// or malformed input.
func Parse(raw string) (TimeOfDay, bool) {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, false
	}

	var hour, min int
	if _, err := fmt.Sscanf(parts[0], "%d", &hour); err != nil {
		return TimeOfDay{}, false
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &min); err != nil {
		return TimeOfDay{}, false
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: min}, true
}

// Format renders raw "HH:MM" input in the requested mode.
//
// dstOffset is added to the hour (modulo 24) before any 12/24-hour
// derivation, unless alreadyAdjusted reports that the stored value has the
// offset baked in. Empty or malformed input formats to "" -- a missing time
// must never break rendering.
func Format(raw string, mode Mode, dstOffset int, alreadyAdjusted bool) string {
	t, ok := Parse(raw)
	if !ok {
		return ""
	}

	if !alreadyAdjusted {
		t.Hour = ((t.Hour+dstOffset)%24 + 24) % 24
	}

	if mode == Mode12h {
		period := "AM"
		if t.Hour >= 12 {
			period = "PM"
		}
		hour12 := t.Hour % 12
		if hour12 == 0 {
			hour12 = 12
		}
		return fmt.Sprintf("%d:%02d %s", hour12, t.Minute, period)
	}

	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
