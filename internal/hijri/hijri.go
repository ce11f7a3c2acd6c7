// Package hijri converts Gregorian dates to the Islamic (Hijri) calendar.
//
// Conversion prefers, in order: the hardcoded Ramadan override table
// (regionally observed moon-sighting dates), a remote gToH provider when the
// caller has one, and finally the arithmetic (Kuwaiti/Umm al-Qura style)
// algorithm implemented here. The override table always wins; see overrides.go.
package hijri

import (
	"fmt"
	"time"
)

// Months lists the 12 Islamic month names in calendar order.
var Months = []string{
	"Muharram", "Safar", "Rabi Al-Awwal", "Rabi Al-Thani",
	"Jumada Al-Awwal", "Jumada Al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu Al-Qi'dah", "Dhu Al-Hijjah",
}

// Date is a Hijri calendar date. Produced by conversion, never mutated.
type Date struct {
	Day   int    // 1-30
	Month string // one of Months
	Year  int
}

// Format renders the date as "D Month YYYY AH", matching the provider's
// display convention. A zero Date formats to "".
func (d Date) Format() string {
	if d.Day == 0 || d.Month == "" || d.Year == 0 {
		return ""
	}
	return fmt.Sprintf("%d %s %d AH", d.Day, d.Month, d.Year)
}

// ToHijri converts a Gregorian date using the arithmetic tabular algorithm:
// Julian day number, then 30-year cycles of 10631 days with the standard
// intercalation correction terms. Accurate to within a day across 1900-2100;
// used when neither an override window nor the provider applies.
func ToHijri(t time.Time) Date {
	jd := julianDay(t.Year(), int(t.Month()), t.Day())

	l := jd - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	m := (24 * l) / 709
	d := l - (709*m)/24
	y := 30*n + j - 30

	return Date{Day: d, Month: Months[m-1], Year: y}
}

// julianDay computes the Julian day number for a proleptic Gregorian date.
// Months are shifted so March is the first month of the computational year,
// which pushes leap days to the end and keeps the century corrections simple.
func julianDay(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}
