package cli

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Command structure
// ---------------------------------------------------------------------------

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd("test")

	expected := []string{"mark", "month", "hijri", "config", "methods"}
	for _, name := range expected {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestNewRootCmd_PersistentFlags(t *testing.T) {
	root := NewRootCmd("test")
	pf := root.PersistentFlags()

	for _, name := range []string{
		"date", "offset", "latitude", "longitude", "method", "school",
		"dst", "json", "cache-dir", "data-dir", "time-format", "verbose",
	} {
		if pf.Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
}

func TestNewRootCmd_FlagDefaults(t *testing.T) {
	root := NewRootCmd("test")
	pf := root.PersistentFlags()

	if got := pf.Lookup("method").DefValue; got != "-1" {
		t.Errorf("--method default = %q, want -1", got)
	}
	if got := pf.Lookup("school").DefValue; got != "-1" {
		t.Errorf("--school default = %q, want -1", got)
	}
	if got := pf.Lookup("dst").DefValue; got != "0" {
		t.Errorf("--dst default = %q, want 0", got)
	}
	if got := pf.Lookup("offset").DefValue; got != "0" {
		t.Errorf("--offset default = %q, want 0", got)
	}
}

// ---------------------------------------------------------------------------
// displayedDate
// ---------------------------------------------------------------------------

func TestDisplayedDate_Default(t *testing.T) {
	root := NewRootCmd("test")
	now := time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)

	got, err := displayedDate(root, now)
	if err != nil {
		t.Fatalf("displayedDate error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != 3 || got.Day() != 2 {
		t.Errorf("displayedDate = %v, want 2026-03-02", got)
	}
}

func TestDisplayedDate_DateFlag(t *testing.T) {
	root := NewRootCmd("test")
	if err := root.PersistentFlags().Set("date", "2026-02-18"); err != nil {
		t.Fatal(err)
	}

	got, err := displayedDate(root, time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("displayedDate error: %v", err)
	}
	if got.Format("2006-01-02") != "2026-02-18" {
		t.Errorf("displayedDate = %s, want 2026-02-18", got.Format("2006-01-02"))
	}
}

func TestDisplayedDate_OffsetFlag(t *testing.T) {
	root := NewRootCmd("test")
	if err := root.PersistentFlags().Set("offset", "-1"); err != nil {
		t.Fatal(err)
	}

	got, err := displayedDate(root, time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("displayedDate error: %v", err)
	}
	if got.Format("2006-01-02") != "2026-03-01" {
		t.Errorf("displayedDate = %s, want 2026-03-01", got.Format("2006-01-02"))
	}
}

func TestDisplayedDate_InvalidDate(t *testing.T) {
	root := NewRootCmd("test")
	if err := root.PersistentFlags().Set("date", "18-02-2026"); err != nil {
		t.Fatal(err)
	}

	if _, err := displayedDate(root, time.Now()); err == nil {
		t.Error("expected error for malformed --date")
	}
}

// ---------------------------------------------------------------------------
// Calculation methods table
// ---------------------------------------------------------------------------

func TestCalculationMethods_NoDuplicateIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, m := range CalculationMethods {
		if seen[m.ID] {
			t.Errorf("duplicate calculation method ID: %d", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestCalculationMethods_IDsAreValid(t *testing.T) {
	for _, m := range CalculationMethods {
		if m.ID < 0 || m.ID > 23 {
			t.Errorf("method ID %d out of range 0-23", m.ID)
		}
		if m.Name == "" {
			t.Errorf("method ID %d has empty name", m.ID)
		}
	}
}
