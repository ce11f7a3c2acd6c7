package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/api"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/display"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/hijri"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/schedule"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/tracker"
	"github.com/spf13/cobra"
)

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show the Ramadan completion checklist",
		Long: "Display the full-month checklist for the Ramadan containing the\n" +
			"displayed date, or the next upcoming Ramadan when outside the month.",
		RunE: runMonth,
	}
}

// ramadanWindowFor locates the Ramadan window relevant to a date: the window
// containing it, or the next upcoming one. The override table wins; outside
// its coverage the arithmetic calendar decides.
func ramadanWindowFor(date time.Time) (time.Time, int, bool) {
	if start, days, ok := hijri.Overrides.RamadanWindow(date); ok {
		return start, days, true
	}

	var start time.Time
	if d := hijri.ToHijri(date); d.Month == "Ramadan" {
		start = date.AddDate(0, 0, -(d.Day - 1))
	} else {
		found := false
		for i := 1; i <= 366; i++ {
			t := date.AddDate(0, 0, i)
			if h := hijri.ToHijri(t); h.Month == "Ramadan" && h.Day == 1 {
				start = t
				found = true
				break
			}
		}
		if !found {
			return time.Time{}, 0, false
		}
	}

	// Arithmetic Ramadan alternates between 29 and 30 days.
	days := 29
	if hijri.ToHijri(start.AddDate(0, 0, 29)).Month == "Ramadan" {
		days = 30
	}
	return start, days, true
}

// providerRamadanWindow asks the provider for the observed Gregorian span of
// Ramadan in a Hijri year. Used to refine the arithmetic window; failures
// just mean the arithmetic answer stands.
func providerRamadanWindow(hijriYear int) (time.Time, int, bool) {
	client := api.NewClient()
	cal, err := client.FetchRamadanCalendar(hijriYear)
	if err != nil {
		log.Debug().Err(err).Int("year", hijriYear).Msg("calendar provider unavailable, keeping arithmetic window")
		return time.Time{}, 0, false
	}

	start, err := time.Parse("02-01-2006", cal.Data[0].Date.Gregorian.Date)
	if err != nil {
		log.Debug().Err(err).Msg("calendar provider returned unparseable start date")
		return time.Time{}, 0, false
	}
	return start, len(cal.Data), true
}

func runMonth(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	now := time.Now()
	displayed, err := displayedDate(cmd, now)
	if err != nil {
		return err
	}

	start, days, ok := ramadanWindowFor(displayed)
	if !ok {
		return fmt.Errorf("could not locate a Ramadan window near %s", displayed.Format("2006-01-02"))
	}

	// Outside the override table's coverage the window is only arithmetic;
	// let the provider's observed calendar refine it when reachable.
	if _, _, fromOverride := hijri.Overrides.RamadanWindow(displayed); !fromOverride {
		if ps, pd, ok := providerRamadanWindow(hijri.ToHijri(start).Year); ok {
			start, days = ps, pd
		}
	}

	store, err := tracker.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := importLegacyState(store, cfg.DataDir); err != nil {
		return err
	}

	if FlagJSON {
		return printMonthJSON(start, days, store)
	}

	printMonthRich(start, days, now, store)
	return nil
}

// printMonthRich renders the checklist grid with today's row highlighted.
func printMonthRich(start time.Time, days int, now time.Time, store *tracker.Store) {
	hijriYear := hijri.ToHijri(start).Year
	if d, ok := hijri.Overrides.Resolve(start); ok {
		hijriYear = d.Year
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("Ramadan %d", hijriYear)))
	fmt.Println()

	tbl := display.NewTable([]string{"Day", "Date", "Fajr", "Zuhr", "Asr", "Maghrib", "Isha", "All"})

	completedDays := 0
	today := now.Format("2006-01-02")
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		row := []string{
			fmt.Sprintf("%d", i+1),
			date.Format("02 Jan"),
		}
		for _, name := range schedule.TrackedPrayers {
			row = append(row, display.Checkmark(store.IsCompleted(date, name)))
		}
		all := store.AllCompleted(date)
		row = append(row, display.Checkmark(all))
		if all {
			completedDays++
		}

		tbl.AddRow(row)
		if date.Format("2006-01-02") == today {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Print(tbl.Render())
	fmt.Println()
	fmt.Printf("  %d of %d days fully completed\n", completedDays, days)
	fmt.Println()
}

// monthJSON is the JSON output structure for the month checklist.
type monthJSON struct {
	Start string         `json:"start"`
	Days  int            `json:"days"`
	Rows  []monthJSONDay `json:"rows"`
}

type monthJSONDay struct {
	Day       int      `json:"day"`
	Date      string   `json:"date"`
	Completed []string `json:"completed"`
	AllDone   bool     `json:"all_completed"`
}

func printMonthJSON(start time.Time, days int, store *tracker.Store) error {
	out := monthJSON{
		Start: start.Format("2006-01-02"),
		Days:  days,
	}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		completed := store.Completed(date)
		if completed == nil {
			completed = []string{}
		}
		out.Rows = append(out.Rows, monthJSONDay{
			Day:       i + 1,
			Date:      date.Format("2006-01-02"),
			Completed: completed,
			AllDone:   store.AllCompleted(date),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
