// Package tracker persists which prayers have been completed.
//
// The store is the single source of truth, keyed canonically by
// (ISO date, prayer name). The month-table cells and the per-day prayer
// boxes are projections derived from it (see keys.go); either view mutates
// state by writing through the canonical key, never by talking to the other
// view directly.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/schedule"
)

const storeFile = "completions.json"

// dateKey is the canonical date identity: ISO "YYYY-MM-DD".
func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// Store maps dates to the set of completed prayers.
type Store struct {
	path string
	days map[string][]string // ISO date -> completed prayer names
}

// Open loads the store rooted in the given directory, creating it if needed.
// A missing or unparseable file yields an empty store, never an error: stale
// or corrupt completion state must not block rendering.
func Open(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "share", "ramadan-tracker")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}

	s := &Store{path: filepath.Join(dir, storeFile)}
	s.days = readDays(s.path)
	return s, nil
}

// readDays loads the persisted map, treating any failure as absent state.
func readDays(path string) map[string][]string {
	days := make(map[string][]string)

	data, err := os.ReadFile(path)
	if err != nil {
		return days
	}
	if err := json.Unmarshal(data, &days); err != nil {
		return make(map[string][]string)
	}
	return days
}

// IsCompleted reports whether the prayer is marked completed for the date.
func (s *Store) IsCompleted(date time.Time, prayer string) bool {
	return slices.Contains(s.days[dateKey(date)], prayer)
}

// Completed returns the completed prayers for the date, in canonical order.
func (s *Store) Completed(date time.Time) []string {
	var out []string
	for _, name := range schedule.TrackedPrayers {
		if s.IsCompleted(date, name) {
			out = append(out, name)
		}
	}
	return out
}

// AllCompleted reports whether every tracked prayer is completed for the
// date; used to flag a fully completed day.
func (s *Store) AllCompleted(date time.Time) bool {
	for _, name := range schedule.TrackedPrayers {
		if !s.IsCompleted(date, name) {
			return false
		}
	}
	return true
}

// Toggle flips the completion state for (date, prayer) and persists that
// date's entries. It returns the new state. Unknown prayer names error
// rather than polluting the store.
func (s *Store) Toggle(date time.Time, prayer string) (bool, error) {
	if !slices.Contains(schedule.TrackedPrayers, prayer) {
		return false, fmt.Errorf("unknown prayer name: %s", prayer)
	}

	completed := !s.IsCompleted(date, prayer)
	s.set(date, prayer, completed)

	if err := s.saveDate(date); err != nil {
		return completed, err
	}
	return completed, nil
}

// SetCompleted writes an explicit state; used by imports.
func (s *Store) SetCompleted(date time.Time, prayer string, completed bool) error {
	if !slices.Contains(schedule.TrackedPrayers, prayer) {
		return fmt.Errorf("unknown prayer name: %s", prayer)
	}
	s.set(date, prayer, completed)
	return s.saveDate(date)
}

func (s *Store) set(date time.Time, prayer string, completed bool) {
	key := dateKey(date)
	cur := s.days[key]

	if completed {
		if !slices.Contains(cur, prayer) {
			s.days[key] = append(cur, prayer)
		}
		return
	}

	cur = slices.DeleteFunc(slices.Clone(cur), func(p string) bool { return p == prayer })
	if len(cur) == 0 {
		delete(s.days, key)
		return
	}
	s.days[key] = cur
}

// saveDate persists one date's entries with read-modify-write semantics:
// the on-disk map is re-read and only this date's slot replaced, so a stale
// in-memory copy can never clobber other dates written elsewhere.
func (s *Store) saveDate(date time.Time) error {
	key := dateKey(date)

	onDisk := readDays(s.path)
	if entries, ok := s.days[key]; ok {
		onDisk[key] = entries
	} else {
		delete(onDisk, key)
	}

	data, err := json.Marshal(onDisk)
	if err != nil {
		return fmt.Errorf("failed to marshal completions: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write completions file: %w", err)
	}
	return nil
}
