package tracker

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The month table lays its columns out as:
// Date | Sehr | Fajr | Zuhr | Asr | Iftar | Maghrib | Isha.
// Sehr and Iftar mirror Fajr and Maghrib and are not independently
// completable, so only five columns map to canonical prayers.
var columnForPrayer = map[string]int{
	"Fajr":    2,
	"Dhuhr":   3,
	"Asr":     4,
	"Maghrib": 6,
	"Isha":    7,
}

var prayerForColumn = invert(columnForPrayer)

// The prayer boxes label Dhuhr as ZUHR; both spellings identify the same
// canonical prayer.
var boxLabelForPrayer = map[string]string{
	"Fajr":    "FAJR",
	"Dhuhr":   "ZUHR",
	"Asr":     "ASR",
	"Maghrib": "MAGHRIB",
	"Isha":    "ISHA",
}

var prayerForBoxLabel = invert(boxLabelForPrayer)

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// boxDateLayout is the human-readable full date used in box identifiers,
// e.g. "March 1, 2025".
const boxDateLayout = "January 2, 2006"

// TableCellID projects a (date, prayer) pair onto its "row-col" table cell
// identifier, relative to a Ramadan window start. The boolean is false when
// the date falls outside the window or the prayer has no column.
func TableCellID(windowStart, date time.Time, days int, prayer string) (string, bool) {
	row := daysBetween(windowStart, date)
	if row < 0 || row >= days {
		return "", false
	}
	col, ok := columnForPrayer[prayer]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d-%d", row, col), true
}

// ParseTableCellID resolves a "row-col" identifier back to its canonical
// (date, prayer) pair.
func ParseTableCellID(id string, windowStart time.Time, days int) (time.Time, string, bool) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, "", false
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil || row < 0 || row >= days {
		return time.Time{}, "", false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, "", false
	}

	prayer, ok := prayerForColumn[col]
	if !ok {
		return time.Time{}, "", false
	}
	return windowStart.AddDate(0, 0, row), prayer, true
}

// BoxID projects a (date, prayer) pair onto its "<full date>-<LABEL>" box
// identifier.
func BoxID(date time.Time, prayer string) (string, bool) {
	label, ok := boxLabelForPrayer[prayer]
	if !ok {
		return "", false
	}
	return date.Format(boxDateLayout) + "-" + label, true
}

// ParseBoxID resolves a box identifier back to its canonical pair.
func ParseBoxID(id string) (time.Time, string, bool) {
	idx := strings.LastIndex(id, "-")
	if idx <= 0 {
		return time.Time{}, "", false
	}

	prayer, ok := prayerForBoxLabel[id[idx+1:]]
	if !ok {
		return time.Time{}, "", false
	}

	date, err := time.ParseInLocation(boxDateLayout, id[:idx], time.UTC)
	if err != nil {
		return time.Time{}, "", false
	}
	return date, prayer, true
}

// TableCellIDs derives the table view's completed-cell identifiers for a
// Ramadan window from the canonical store.
func (s *Store) TableCellIDs(windowStart time.Time, days int) []string {
	var out []string
	for i := 0; i < days; i++ {
		date := windowStart.AddDate(0, 0, i)
		for _, prayer := range s.Completed(date) {
			if id, ok := TableCellID(windowStart, date, days, prayer); ok {
				out = append(out, id)
			}
		}
	}
	return out
}

// BoxIDs derives the box view's completed identifiers for one date.
func (s *Store) BoxIDs(date time.Time) []string {
	var out []string
	for _, prayer := range s.Completed(date) {
		if id, ok := BoxID(date, prayer); ok {
			out = append(out, id)
		}
	}
	return out
}

// ImportLegacy merges the two view-keyed identifier lists of the old
// persistence format into the canonical store. Entries from either list mark
// the same (date, prayer) fact; unrecognized identifiers are skipped.
func (s *Store) ImportLegacy(tableIDs, boxIDs []string, windowStart time.Time, days int) error {
	for _, id := range tableIDs {
		if date, prayer, ok := ParseTableCellID(id, windowStart, days); ok {
			if err := s.SetCompleted(date, prayer, true); err != nil {
				return err
			}
		}
	}
	for _, id := range boxIDs {
		if date, prayer, ok := ParseBoxID(id); ok {
			if err := s.SetCompleted(date, prayer, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
