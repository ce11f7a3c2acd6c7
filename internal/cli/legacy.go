package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/tracker"
)

// legacyStateFile is the old persistence format: two identifier lists, one
// per view, instead of the canonical (date, prayer) map.
const legacyStateFile = "state.json"

type legacyState struct {
	Table []string `json:"table"`
	Boxes []string `json:"boxes"`
}

// importLegacyState migrates an old dual-keyed state file into the canonical
// store, then renames the file so the migration runs once. A missing or
// unreadable legacy file is not an error.
func importLegacyState(s *tracker.Store, dir string) error {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".local", "share", "ramadan-tracker")
	}
	path := filepath.Join(dir, legacyStateFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var legacy legacyState
	if err := json.Unmarshal(data, &legacy); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("legacy state file is unreadable, skipping import")
		return nil
	}

	// Table cell identifiers are row offsets relative to a Ramadan window.
	start, days, ok := ramadanWindowFor(time.Now())
	if !ok {
		days = 30
	}

	if err := s.ImportLegacy(legacy.Table, legacy.Boxes, start, days); err != nil {
		return err
	}

	if err := os.Rename(path, path+".imported"); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not rename imported legacy state file")
	}

	log.Debug().
		Int("table_entries", len(legacy.Table)).
		Int("box_entries", len(legacy.Boxes)).
		Msg("imported legacy completion state")
	return nil
}
