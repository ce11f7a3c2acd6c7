// Package schedule derives the visual state of a day's prayers: which are
// past, which is active, and how far the Sehr->Iftar fast has progressed.
// Everything here is a pure function over explicit inputs; nothing is
// persisted and nothing touches the network.
package schedule

import (
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/api"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/timefmt"
)

// TrackedPrayers are the five prayers in canonical order. Completion tracking
// and classification operate on exactly this set; Sunrise and Sunset are
// display-only markers.
var TrackedPrayers = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Tag classifies one prayer relative to the wall clock.
type Tag string

const (
	TagPast   Tag = "past"
	TagActive Tag = "active"
	TagFuture Tag = "future"
)

// DayTimes holds one day's timings as "HH:MM" strings, plus the markers used
// for display. Adjusted records whether the session's daylight-saving offset
// has already been applied, so a redisplay never applies it twice.
type DayTimes struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Sunset  string `json:"sunset"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`

	Adjusted bool `json:"adjusted,omitempty"`
}

// FromTimings converts a provider response into a DayTimes.
func FromTimings(t api.Timings) DayTimes {
	return DayTimes{
		Fajr:    t.Fajr,
		Sunrise: t.Sunrise,
		Dhuhr:   t.Dhuhr,
		Asr:     t.Asr,
		Sunset:  t.Sunset,
		Maghrib: t.Maghrib,
		Isha:    t.Isha,
	}
}

// Of returns the named prayer's raw time string.
func (d DayTimes) Of(name string) string {
	switch name {
	case "Fajr":
		return d.Fajr
	case "Sunrise":
		return d.Sunrise
	case "Dhuhr":
		return d.Dhuhr
	case "Asr":
		return d.Asr
	case "Sunset":
		return d.Sunset
	case "Maghrib":
		return d.Maghrib
	case "Isha":
		return d.Isha
	}
	return ""
}

// Adjust returns a copy with the daylight-saving offset applied to every
// field. Calling Adjust on an already-adjusted DayTimes is a no-op.
func (d DayTimes) Adjust(offsetHours int) DayTimes {
	if d.Adjusted || offsetHours == 0 {
		out := d
		out.Adjusted = true
		return out
	}

	shift := func(raw string) string {
		t, ok := timefmt.Parse(raw)
		if !ok {
			return raw
		}
		t.Hour = ((t.Hour+offsetHours)%24 + 24) % 24
		return t.String()
	}

	return DayTimes{
		Fajr:     shift(d.Fajr),
		Sunrise:  shift(d.Sunrise),
		Dhuhr:    shift(d.Dhuhr),
		Asr:      shift(d.Asr),
		Sunset:   shift(d.Sunset),
		Maghrib:  shift(d.Maghrib),
		Isha:     shift(d.Isha),
		Adjusted: true,
	}
}

// Classification is the per-prayer state for one displayed day. Recomputed
// whenever the displayed date or the wall clock advances; never persisted.
type Classification struct {
	PerPrayer map[string]Tag
	// Active is the currently relevant prayer, or "" when the displayed
	// day is not today.
	Active string
}

// Classify tags each tracked prayer as past, active, or future.
//
// A displayed day before today is entirely past and a day after today is
// entirely future, regardless of the clock. On the current day the last
// prayer whose time has arrived is the active one; before Fajr the active
// prayer defaults to Fajr, since the next prayer is the relevant one.
func Classify(now, displayed time.Time, times DayTimes) Classification {
	c := Classification{PerPrayer: make(map[string]Tag, len(TrackedPrayers))}

	switch compareDay(displayed, now) {
	case -1:
		for _, name := range TrackedPrayers {
			c.PerPrayer[name] = TagPast
		}
		return c
	case 1:
		for _, name := range TrackedPrayers {
			c.PerPrayer[name] = TagFuture
		}
		return c
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	// Scan in canonical order: the last prayer whose time has arrived wins
	// the active slot. Unparseable times are treated as not yet arrived.
	activeIdx := 0
	for i, name := range TrackedPrayers {
		t, ok := timefmt.Parse(times.Of(name))
		if ok && nowMinutes >= t.Minutes() {
			c.PerPrayer[name] = TagPast
			activeIdx = i
		} else {
			c.PerPrayer[name] = TagFuture
		}
	}

	c.Active = TrackedPrayers[activeIdx]
	c.PerPrayer[c.Active] = TagActive
	return c
}

// compareDay orders two instants by calendar day: -1 when a's day precedes
// b's, 1 when it follows, 0 for the same day. Each instant is read in its
// own location.
func compareDay(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	av := ay*10000 + int(am)*100 + ad
	bv := by*10000 + int(bm)*100 + bd
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}
