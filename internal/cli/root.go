// Package cli wires the ramadan-tracker commands: the default day view, the
// month checklist, completion marking, Hijri lookup, and configuration.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/config"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/session"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/timefmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across all subcommands.
var (
	FlagDate       string
	FlagOffset     int
	FlagLatitude   float64
	FlagLongitude  float64
	FlagMethod     int
	FlagSchool     int
	FlagDST        int
	FlagJSON       bool
	FlagCacheDir   string
	FlagDataDir    string
	FlagTimeFormat string
	FlagVerbose    bool
)

// loadedConfig holds the config loaded during PersistentPreRunE.
// Available to all subcommand handlers.
var loadedConfig *config.Config

// NewRootCmd creates the root command for the ramadan-tracker CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ramadan-tracker",
		Short:   "Ramadan prayer and fasting tracker CLI",
		Long:    "Track daily prayers and the Sehr-to-Iftar fast through Ramadan,\nwith Hijri dates and prayer times powered by the Al Adhan API.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg
			return nil
		},
		// Default action: show the day view.
		RunE:          runDay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagDate, "date", "", "Show a specific date (YYYY-MM-DD, default: today)")
	pf.IntVar(&FlagOffset, "offset", 0, "Show a date N days from today (negative for past)")
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude")
	pf.IntVar(&FlagMethod, "method", -1, "Override calculation method (0-23)")
	pf.IntVar(&FlagSchool, "school", -1, "Override Asr school (0=Shafi, 1=Hanafi)")
	pf.IntVar(&FlagDST, "dst", 0, "Hours to add to every displayed time")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Cache directory (default: ~/.cache/ramadan-tracker/)")
	pf.StringVar(&FlagDataDir, "data-dir", "", "Completion data directory (default: ~/.local/share/ramadan-tracker/)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.BoolVar(&FlagVerbose, "verbose", false, "Enable debug logging")

	// Register subcommands.
	rootCmd.AddCommand(newMarkCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newHijriCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// setupLogging configures zerolog for human-readable stderr output.
// Degraded-mode fallbacks (approximate times, default coordinates) are
// reported through this logger so the main output stays clean.
func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if FlagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		empty := config.Config{}
		cfg = &empty
	}

	// Apply defaults for unset config values.
	defaults := config.Defaults()

	// Merge: CLI flags override config, config overrides defaults.
	// For each field, if the CLI flag was explicitly set, use it.
	// Otherwise use the config value. If config is also unset, use default.

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "latitude") {
		cfg.Latitude = FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Longitude = FlagLongitude
	}
	if flagWasSet(flags, root, "method") {
		cfg.Method = &FlagMethod
	} else if cfg.Method == nil {
		cfg.Method = defaults.Method
	}
	if flagWasSet(flags, root, "school") {
		cfg.School = &FlagSchool
	} else if cfg.School == nil {
		cfg.School = defaults.School
	}
	if flagWasSet(flags, root, "dst") {
		cfg.DSTOffset = &FlagDST
	} else if cfg.DSTOffset == nil {
		cfg.DSTOffset = defaults.DSTOffset
	}
	if flagWasSet(flags, root, "cache-dir") {
		cfg.CacheDir = FlagCacheDir
	}
	if flagWasSet(flags, root, "data-dir") {
		cfg.DataDir = FlagDataDir
	}

	// Time format: CLI flag > config > default ("12h").
	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFormat = FlagTimeFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaults.TimeFormat
	}

	return cfg
}

// sessionConfig projects the merged file config onto the typed session config
// used by the rendering pipeline.
func sessionConfig(cfg *config.Config) session.Config {
	mode := timefmt.Mode12h
	if cfg.TimeFormat == "24h" {
		mode = timefmt.Mode24h
	}
	return session.Config{
		TimeFormat: mode,
		DSTOffset:  cfg.DSTOrDefault(0),
		Method:     cfg.MethodOrDefault(-1),
		AsrSchool:  cfg.SchoolOrDefault(-1),
		Latitude:   cfg.Latitude,
		Longitude:  cfg.Longitude,
	}
}

// displayedDate resolves the date the command should render.
// Priority: --date > --offset relative to today > today.
func displayedDate(cmd *cobra.Command, now time.Time) (time.Time, error) {
	view := session.NewView(now)

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "date") {
		d, err := time.Parse("2006-01-02", FlagDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", FlagDate)
		}
		view.Show(d)
	}
	if flagWasSet(flags, root, "offset") {
		view.Navigate(FlagOffset)
	}

	return view.Displayed(), nil
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
