package schedule

import (
	"fmt"
	"math"
	"time"
)

// ApproxTimes synthesizes a rough prayer timetable from the season and
// latitude, for use when the provider is unreachable and nothing is cached.
//
// The model is deliberately simple: solar declination from the day of year,
// sunrise/sunset from the standard half-arc formula with solar noon pinned to
// 12:00 local, Fajr 90 minutes before sunrise, Asr halfway from Dhuhr to
// sunset, Isha 90 minutes after sunset. It keeps the display populated; it is
// not astronomically precise and is never preferred over provider data.
func ApproxTimes(date time.Time, latitude float64) DayTimes {
	const deg = math.Pi / 180

	doy := float64(date.YearDay())
	decl := 23.44 * math.Sin(2*math.Pi*(284+doy)/365.25)

	// Half the daylight arc, in hours. Clamp for polar latitudes where the
	// sun never rises or never sets.
	cosH := -math.Tan(latitude*deg) * math.Tan(decl*deg)
	if cosH > 1 {
		cosH = 1
	} else if cosH < -1 {
		cosH = -1
	}
	halfArc := math.Acos(cosH) / deg / 15

	sunrise := 12 - halfArc
	sunset := 12 + halfArc

	return DayTimes{
		Fajr:    clock(sunrise - 1.5),
		Sunrise: clock(sunrise),
		Dhuhr:   clock(12 + 10.0/60),
		Asr:     clock((12 + 10.0/60 + sunset) / 2),
		Sunset:  clock(sunset),
		Maghrib: clock(sunset),
		Isha:    clock(sunset + 1.5),
	}
}

// clock renders fractional hours as "HH:MM", wrapping into [0,24).
func clock(hours float64) string {
	minutes := int(math.Round(hours * 60))
	minutes = ((minutes % 1440) + 1440) % 1440

	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
