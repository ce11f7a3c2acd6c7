// Package session holds the per-invocation state the core computations read:
// an immutable configuration snapshot and the currently displayed date.
//
// The configuration is built once from flags, the config file, and defaults,
// then passed explicitly into each computation. Nothing in the core reads
// settings from ambient globals, so a settings change is a new Config, not a
// mutation observed mid-render.
package session

import (
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/timefmt"
)

// Config is the immutable session configuration.
type Config struct {
	TimeFormat timefmt.Mode // "12h" or "24h"
	DSTOffset  int          // hours added to provider times, usually 0 or 1
	Method     int          // calculation method id, -1 for API default
	AsrSchool  int          // 0=Shafi, 1=Hanafi, -1 for API default
	Latitude   float64
	Longitude  float64
	Timezone   string
}

// View tracks which calendar day is on screen. Provider responses arrive
// asynchronously relative to navigation, so a response is only applied when
// it still targets the displayed date; anything else is stale and dropped.
type View struct {
	displayed time.Time
}

// NewView creates a View showing the given date.
func NewView(date time.Time) *View {
	return &View{displayed: dayOf(date)}
}

// Displayed returns the date currently on screen.
func (v *View) Displayed() time.Time {
	return v.displayed
}

// Navigate moves the displayed date by a whole number of days and returns
// the new date.
func (v *View) Navigate(days int) time.Time {
	v.displayed = v.displayed.AddDate(0, 0, days)
	return v.displayed
}

// Show jumps the view to a specific date.
func (v *View) Show(date time.Time) {
	v.displayed = dayOf(date)
}

// Accept reports whether a provider response for targetDate may be applied.
// A response that no longer matches the displayed date is stale: the user
// navigated away while the call was in flight.
func (v *View) Accept(targetDate time.Time) bool {
	return dayOf(targetDate).Equal(v.displayed)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
