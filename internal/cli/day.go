package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/cache"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/display"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/schedule"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/session"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/timefmt"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/tracker"
	"github.com/spf13/cobra"
)

// runDay renders the default day view: prayer times with past/active/future
// styling, completion marks, the Hijri date, and the fasting progress bar.
func runDay(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	sc := sessionConfig(cfg)

	now := time.Now()
	displayed, err := displayedDate(cmd, now)
	if err != nil {
		return err
	}

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	loc := resolveLocation(sc.Latitude, sc.Longitude, c)
	result := fetchTimings(displayed, loc, sc.Method, sc.AsrSchool, c)

	// Apply the daylight-saving shift once; formatting below must not
	// apply it again.
	times := result.Times.Adjust(sc.DSTOffset)

	cls := schedule.Classify(now, displayed, times)
	pct := schedule.Progress(now, displayed, times.Fajr, times.Sunset)

	store, err := tracker.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := importLegacyState(store, cfg.DataDir); err != nil {
		return err
	}

	hijriStr := hijriLabel(displayed, result)

	if FlagJSON {
		return printDayJSON(displayed, hijriStr, loc, times, cls, pct, store, result.Approximate, sc)
	}

	printDayRich(displayed, hijriStr, loc, times, cls, pct, store, result.Approximate, sc)
	return nil
}

// fmtTime renders a raw "HH:MM" provider time in the session's display mode.
// The DayTimes handed to the renderer is already shifted, so the formatter
// must not shift again.
func fmtTime(raw string, sc session.Config) string {
	return timefmt.Format(raw, sc.TimeFormat, sc.DSTOffset, true)
}

// printDayRich renders the colored terminal day view.
func printDayRich(displayed time.Time, hijriStr string, loc resolvedLocation, times schedule.DayTimes, cls schedule.Classification, pct float64, store *tracker.Store, approximate bool, sc session.Config) {
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Ramadan Tracker"))
	fmt.Println()

	fmt.Printf("  %s\n", displayed.Format("Monday, 02 January 2006"))
	fmt.Printf("  %s\n", display.Cyan(hijriStr))
	if loc.City != "" {
		fmt.Printf("  %s\n", display.Gray(loc.City+", "+loc.Country))
	}
	if approximate {
		fmt.Printf("  %s\n", display.Yellow("times are approximate (offline)"))
	}
	fmt.Println()

	// Sehr and Iftar mirror Fajr and Maghrib; they bracket the fast and are
	// not independently completable.
	fmt.Printf("  %s\n", display.Dim(fmt.Sprintf("%-8s  %8s", "Sehr", fmtTime(times.Fajr, sc))))

	for _, name := range schedule.TrackedPrayers {
		timeStr := fmtTime(times.Of(name), sc)
		mark := display.Checkmark(store.IsCompleted(displayed, name))
		line := fmt.Sprintf("%-8s  %8s  %s", name, timeStr, mark)

		switch cls.PerPrayer[name] {
		case schedule.TagPast:
			fmt.Println("  " + display.Dim(fmt.Sprintf("%-8s  %8s", name, timeStr)) + "  " + mark)
		case schedule.TagActive:
			fmt.Println("  " + display.Accent(fmt.Sprintf("%-8s  %8s", name, timeStr)) + "  " + mark + display.Accent("  ◀"))
		default:
			fmt.Println("  " + line)
		}

		if name == "Asr" {
			fmt.Printf("  %s\n", display.Dim(fmt.Sprintf("%-8s  %8s", "Iftar", fmtTime(times.Maghrib, sc))))
		}
	}

	fmt.Println()
	fmt.Printf("  Fast  %s\n", display.Bar(pct, 20))

	if store.AllCompleted(displayed) {
		fmt.Println()
		fmt.Printf("  %s\n", display.Green("All prayers completed ✔"))
	}
	fmt.Println()
}

// dayJSON is the JSON output structure for the day view.
type dayJSON struct {
	Date        string            `json:"date"`
	Hijri       string            `json:"hijri"`
	Location    dayJSONLocation   `json:"location"`
	Times       map[string]string `json:"times"`
	Sehr        string            `json:"sehr"`
	Iftar       string            `json:"iftar"`
	Status      map[string]string `json:"status"`
	Active      string            `json:"active,omitempty"`
	Progress    float64           `json:"progress"`
	Completed   []string          `json:"completed"`
	AllDone     bool              `json:"all_completed"`
	Approximate bool              `json:"approximate,omitempty"`
}

type dayJSONLocation struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// printDayJSON renders structured JSON output for the day view.
func printDayJSON(displayed time.Time, hijriStr string, loc resolvedLocation, times schedule.DayTimes, cls schedule.Classification, pct float64, store *tracker.Store, approximate bool, sc session.Config) error {
	fmtd := make(map[string]string)
	status := make(map[string]string)
	for _, name := range schedule.TrackedPrayers {
		fmtd[name] = fmtTime(times.Of(name), sc)
		status[name] = string(cls.PerPrayer[name])
	}
	fmtd["Sunrise"] = fmtTime(times.Sunrise, sc)
	fmtd["Sunset"] = fmtTime(times.Sunset, sc)

	completed := store.Completed(displayed)
	if completed == nil {
		completed = []string{}
	}

	out := dayJSON{
		Date:  displayed.Format("2006-01-02"),
		Hijri: hijriStr,
		Location: dayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Latitude:  loc.Lat,
			Longitude: loc.Lon,
		},
		Times:       fmtd,
		Sehr:        fmtTime(times.Fajr, sc),
		Iftar:       fmtTime(times.Maghrib, sc),
		Status:      status,
		Active:      cls.Active,
		Progress:    pct,
		Completed:   completed,
		AllDone:     store.AllCompleted(displayed),
		Approximate: approximate,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
