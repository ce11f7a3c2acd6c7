package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/api"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/hijri"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/tracker"
)

// ---------------------------------------------------------------------------
// canonicalPrayerName
// ---------------------------------------------------------------------------

func TestCanonicalPrayerName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Fajr", "Fajr", true},
		{"fajr", "Fajr", true},
		{"FAJR", "Fajr", true},
		{"Dhuhr", "Dhuhr", true},
		{"zuhr", "Dhuhr", true},
		{"Zuhr", "Dhuhr", true},
		{"asr", "Asr", true},
		{"maghrib", "Maghrib", true},
		{"isha", "Isha", true},
		{" isha ", "Isha", true},
		{"sunrise", "", false},
		{"sehr", "", false},
		{"iftar", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := canonicalPrayerName(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("canonicalPrayerName(%q) = (%q, %v), want (%q, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

// ---------------------------------------------------------------------------
// ramadanWindowFor
// ---------------------------------------------------------------------------

func TestRamadanWindowFor_OverrideWindow(t *testing.T) {
	// 2026-03-01 falls inside the observation-corrected 1447 window.
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	start, days, ok := ramadanWindowFor(date)
	if !ok {
		t.Fatal("expected a window")
	}
	if start.Format("2006-01-02") != "2026-02-18" {
		t.Errorf("start = %s, want 2026-02-18", start.Format("2006-01-02"))
	}
	if days <= 0 || days > 30 {
		t.Errorf("days = %d, want 1..30", days)
	}
}

func TestRamadanWindowFor_Arithmetic(t *testing.T) {
	// 2030 is outside the override table, so the arithmetic calendar decides.
	date := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

	start, days, ok := ramadanWindowFor(date)
	if !ok {
		t.Fatal("expected a window")
	}
	if days != 29 && days != 30 {
		t.Errorf("days = %d, want 29 or 30", days)
	}

	h := hijri.ToHijri(start)
	if h.Month != "Ramadan" || h.Day != 1 {
		t.Errorf("window start converts to %d %s, want 1 Ramadan", h.Day, h.Month)
	}

	// Every day of the window must still be Ramadan.
	lastDay := hijri.ToHijri(start.AddDate(0, 0, days-1))
	if lastDay.Month != "Ramadan" {
		t.Errorf("window end converts to %s, want Ramadan", lastDay.Month)
	}
}

func TestRamadanWindowFor_InsideArithmeticRamadan(t *testing.T) {
	// Find an arithmetic Ramadan far outside the override table, then ask
	// for the window from a date in its middle.
	probe := time.Date(2032, 1, 1, 0, 0, 0, 0, time.UTC)
	start, _, ok := ramadanWindowFor(probe)
	if !ok {
		t.Fatal("expected a window")
	}

	mid := start.AddDate(0, 0, 10)
	gotStart, _, ok := ramadanWindowFor(mid)
	if !ok {
		t.Fatal("expected a window from mid-Ramadan date")
	}
	if !gotStart.Equal(start) {
		t.Errorf("window from mid-Ramadan starts %s, want %s",
			gotStart.Format("2006-01-02"), start.Format("2006-01-02"))
	}
}

// ---------------------------------------------------------------------------
// hijriLabel
// ---------------------------------------------------------------------------

func TestHijriLabel_OverrideWins(t *testing.T) {
	// 2025-03-01 is 1 Ramadan 1446 in the override table. Provider data
	// saying otherwise must be ignored.
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	result := &fetchResult{
		DateInfo: api.DateInfo{
			Hijri: api.HijriDate{
				Day:   "2",
				Month: api.HijriMonth{Number: 9, En: "Ramadan"},
				Year:  "1446",
			},
		},
	}

	got := hijriLabel(date, result)
	want := "1 Ramadan 1446 AH"
	if got != want {
		t.Errorf("hijriLabel = %q, want %q", got, want)
	}
}

func TestHijriLabel_ProviderOutsideOverrides(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	result := &fetchResult{
		DateInfo: api.DateInfo{
			Hijri: api.HijriDate{
				Day:   "8",
				Month: api.HijriMonth{Number: 12, En: "Dhu Al-Hijjah"},
				Year:  "1445",
			},
		},
	}

	got := hijriLabel(date, result)
	want := "8 Dhu Al-Hijjah 1445 AH"
	if got != want {
		t.Errorf("hijriLabel = %q, want %q", got, want)
	}
}

func TestHijriLabel_ArithmeticFallback(t *testing.T) {
	// No override and no provider data: the arithmetic conversion answers.
	date := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	got := hijriLabel(date, nil)
	want := hijri.ToHijri(date).Format()
	if got != want {
		t.Errorf("hijriLabel = %q, want %q", got, want)
	}
	if got == "" {
		t.Error("hijriLabel should never be empty")
	}
}

// ---------------------------------------------------------------------------
// importLegacyState
// ---------------------------------------------------------------------------

func TestImportLegacyState_Boxes(t *testing.T) {
	dir := t.TempDir()

	legacy := legacyState{
		Boxes: []string{
			"March 1, 2025-FAJR",
			"March 1, 2025-ZUHR",
			"March 2, 2025-MAGHRIB",
			"not-a-valid-id",
		},
	}
	data, _ := json.Marshal(legacy)
	path := filepath.Join(dir, legacyStateFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := tracker.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := importLegacyState(store, dir); err != nil {
		t.Fatalf("importLegacyState error: %v", err)
	}

	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	if !store.IsCompleted(d1, "Fajr") {
		t.Error("Fajr should be imported for 2025-03-01")
	}
	if !store.IsCompleted(d1, "Dhuhr") {
		t.Error("ZUHR box should import as Dhuhr for 2025-03-01")
	}
	if !store.IsCompleted(d2, "Maghrib") {
		t.Error("Maghrib should be imported for 2025-03-02")
	}

	// The legacy file must be renamed so the import runs once.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("legacy state file should be renamed after import")
	}
	if _, err := os.Stat(path + ".imported"); err != nil {
		t.Errorf("renamed legacy file missing: %v", err)
	}
}

func TestImportLegacyState_MissingFile(t *testing.T) {
	dir := t.TempDir()

	store, err := tracker.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := importLegacyState(store, dir); err != nil {
		t.Errorf("missing legacy file should not error, got: %v", err)
	}
}

func TestImportLegacyState_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, legacyStateFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := tracker.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := importLegacyState(store, dir); err != nil {
		t.Errorf("malformed legacy file should not error, got: %v", err)
	}
}
