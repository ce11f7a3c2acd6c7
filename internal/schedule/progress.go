package schedule

import (
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/timefmt"
)

// Progress computes the fraction of the fast elapsed between the dawn and
// sunset anchors for the displayed day, as a percentage clamped to [0,100].
//
// Days before today report 100, days after today report 0. A zero or
// inverted dawn/sunset span (or an unparseable anchor) reports 0 rather
// than failing: a broken anchor must never break rendering.
func Progress(now, displayed time.Time, dawn, sunset string) float64 {
	switch compareDay(displayed, now) {
	case -1:
		return 100
	case 1:
		return 0
	}

	start, ok := timefmt.Parse(dawn)
	if !ok {
		return 0
	}
	end, ok := timefmt.Parse(sunset)
	if !ok {
		return 0
	}

	total := end.Minutes() - start.Minutes()
	if total <= 0 {
		return 0
	}

	nowMinutes := float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60
	pct := (nowMinutes - float64(start.Minutes())) / float64(total) * 100

	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
