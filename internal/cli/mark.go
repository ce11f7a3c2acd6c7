package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/display"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/schedule"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/tracker"
	"github.com/spf13/cobra"
)

var flagMarkAll bool

func newMarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark <prayer>",
		Short: "Toggle a prayer's completion state",
		Long: "Toggle the completion state of a prayer for the displayed date\n" +
			"(today by default, or the date selected with --date/--offset).\n\n" +
			"Prayer names: " + strings.Join(schedule.TrackedPrayers, ", ") + " (Zuhr is accepted for Dhuhr).\n" +
			"With --all, reports whether every prayer of the day is completed.",
		Args: cobra.MaximumNArgs(1),
		RunE: runMark,
	}

	cmd.Flags().BoolVar(&flagMarkAll, "all", false, "Report whether all prayers are completed for the date")

	return cmd
}

// canonicalPrayerName maps user input onto the canonical prayer name.
// Matching is case-insensitive and accepts the Zuhr spelling.
func canonicalPrayerName(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "zuhr" {
		normalized = "dhuhr"
	}
	for _, name := range schedule.TrackedPrayers {
		if strings.ToLower(name) == normalized {
			return name, true
		}
	}
	return "", false
}

func runMark(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	displayed, err := displayedDate(cmd, time.Now())
	if err != nil {
		return err
	}

	store, err := tracker.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := importLegacyState(store, cfg.DataDir); err != nil {
		return err
	}

	dateStr := displayed.Format("02 Jan 2006")

	if flagMarkAll {
		if store.AllCompleted(displayed) {
			fmt.Printf("All prayers completed for %s %s\n", dateStr, display.Green("✔"))
		} else {
			done := len(store.Completed(displayed))
			fmt.Printf("%d of %d prayers completed for %s\n", done, len(schedule.TrackedPrayers), dateStr)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a prayer name is required; valid names: %s", strings.Join(schedule.TrackedPrayers, ", "))
	}
	prayer, ok := canonicalPrayerName(args[0])
	if !ok {
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(schedule.TrackedPrayers, ", "))
	}

	completed, err := store.Toggle(displayed, prayer)
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("%s marked completed for %s %s\n", prayer, dateStr, display.Green("✔"))
	} else {
		fmt.Printf("%s unmarked for %s\n", prayer, dateStr)
	}

	if store.AllCompleted(displayed) {
		fmt.Println(display.Green("All prayers completed for " + dateStr + "!"))
	}
	return nil
}
