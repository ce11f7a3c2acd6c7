package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/api"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/hijri"
	"github.com/spf13/cobra"
)

func newHijriCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hijri [YYYY-MM-DD]",
		Short: "Convert a Gregorian date to Hijri",
		Long: "Print the Hijri date for today or for a given Gregorian date.\n" +
			"Observation-corrected dates are used where available; otherwise the\n" +
			"provider is consulted, with a local arithmetic conversion as fallback.",
		Args: cobra.MaximumNArgs(1),
		RunE: runHijri,
	}
}

func runHijri(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if len(args) == 1 {
		d, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
		}
		date = d
	} else {
		d, err := displayedDate(cmd, date)
		if err != nil {
			return err
		}
		date = d
	}

	label, source := resolveHijri(date)

	if FlagJSON {
		out := struct {
			Gregorian string `json:"gregorian"`
			Hijri     string `json:"hijri"`
			Source    string `json:"source"`
		}{
			Gregorian: date.Format("2006-01-02"),
			Hijri:     label,
			Source:    source,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s = %s\n", date.Format("02 Jan 2006"), label)
	return nil
}

// resolveHijri converts a date with the full precedence chain and reports
// which source answered.
func resolveHijri(date time.Time) (label, source string) {
	if d, ok := hijri.Overrides.Resolve(date); ok {
		return d.Format(), "override"
	}

	client := api.NewClient()
	if hd, err := client.FetchHijri(date); err == nil {
		if s := hd.Format(); s != "" {
			return s, "provider"
		}
	} else {
		log.Debug().Err(err).Msg("hijri provider unavailable, using arithmetic conversion")
	}

	return hijri.ToHijri(date).Format(), "arithmetic"
}
