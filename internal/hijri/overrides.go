package hijri

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
)

//go:embed overrides.yaml
var overridesYAML []byte

// Window pins a known Ramadan period to fixed Gregorian dates.
type Window struct {
	Name      string `yaml:"name"`
	Start     string `yaml:"start"` // YYYY-MM-DD, Ramadan day 1
	End       string `yaml:"end"`   // YYYY-MM-DD, inclusive
	Days      int    `yaml:"days"`  // length of Ramadan; later days roll into Shawwal
	HijriYear int    `yaml:"hijri_year"`

	start time.Time
	end   time.Time
}

// Contains reports whether the window covers the given date.
func (w *Window) Contains(t time.Time) bool {
	d := midnight(t)
	return !d.Before(w.start) && !d.After(w.end)
}

// Table is the set of configured override windows.
type Table struct {
	Windows []*Window `yaml:"windows"`
}

// Overrides is the built-in table loaded from the embedded YAML document.
// Loading is done at init so a malformed table fails fast at startup.
var Overrides = mustLoadTable(overridesYAML)

// LoadTable parses an override table from YAML and validates its windows.
func LoadTable(data []byte) (*Table, error) {
	var tbl Table
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return nil, fmt.Errorf("parsing override table: %w", err)
	}

	for _, w := range tbl.Windows {
		start, err := time.ParseInLocation("2006-01-02", w.Start, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("window %q: invalid start date %q", w.Name, w.Start)
		}
		end, err := time.ParseInLocation("2006-01-02", w.End, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("window %q: invalid end date %q", w.Name, w.End)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("window %q: end %s before start %s", w.Name, w.End, w.Start)
		}
		if w.Days <= 0 {
			w.Days = 30
		}
		w.start = start
		w.end = end
	}

	return &tbl, nil
}

func mustLoadTable(data []byte) *Table {
	tbl, err := LoadTable(data)
	if err != nil {
		panic(err)
	}
	return tbl
}

// Resolve returns the pinned Hijri date for t if it falls inside a configured
// window. The boolean is false when no window covers t, in which case callers
// fall through to the provider or the arithmetic path.
func (tbl *Table) Resolve(t time.Time) (Date, bool) {
	for _, w := range tbl.Windows {
		if !w.Contains(t) {
			continue
		}

		day := int(midnight(t).Sub(w.start).Hours()/24) + 1
		if day <= w.Days {
			return Date{Day: day, Month: "Ramadan", Year: w.HijriYear}, true
		}
		// Past the 30-day count: roll into Shawwal.
		return Date{Day: day - w.Days, Month: "Shawwal", Year: w.HijriYear}, true
	}
	return Date{}, false
}

// RamadanWindow returns the override window covering t, if any. The month
// checklist uses this to lay out its 30 rows.
func (tbl *Table) RamadanWindow(t time.Time) (start time.Time, days int, ok bool) {
	for _, w := range tbl.Windows {
		if w.Contains(t) {
			return w.start, w.Days, true
		}
	}
	return time.Time{}, 0, false
}

// midnight truncates t to its calendar day in UTC for window comparisons.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
