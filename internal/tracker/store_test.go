package tracker

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

var d1 = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
var d2 = time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

// ---------------------------------------------------------------------------
// Toggle / IsCompleted / AllCompleted
// ---------------------------------------------------------------------------

func TestToggle(t *testing.T) {
	s := openStore(t, t.TempDir())

	got, err := s.Toggle(d1, "Fajr")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !got {
		t.Error("first toggle should complete")
	}
	if !s.IsCompleted(d1, "Fajr") {
		t.Error("IsCompleted = false after completing toggle")
	}

	// Toggling twice returns to the original state.
	got, err = s.Toggle(d1, "Fajr")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got {
		t.Error("second toggle should uncomplete")
	}
	if s.IsCompleted(d1, "Fajr") {
		t.Error("IsCompleted = true after uncompleting toggle")
	}
}

func TestToggle_UnknownPrayer(t *testing.T) {
	s := openStore(t, t.TempDir())
	if _, err := s.Toggle(d1, "Sunrise"); err == nil {
		t.Error("expected error for untracked prayer")
	}
	if _, err := s.Toggle(d1, "Tahajjud"); err == nil {
		t.Error("expected error for unknown prayer")
	}
}

func TestToggle_DatesIndependent(t *testing.T) {
	s := openStore(t, t.TempDir())

	if _, err := s.Toggle(d1, "Asr"); err != nil {
		t.Fatal(err)
	}
	if s.IsCompleted(d2, "Asr") {
		t.Error("completion leaked to a different date")
	}
}

func TestAllCompleted(t *testing.T) {
	s := openStore(t, t.TempDir())

	for _, name := range []string{"Fajr", "Dhuhr", "Asr", "Maghrib"} {
		if _, err := s.Toggle(d1, name); err != nil {
			t.Fatal(err)
		}
	}
	if s.AllCompleted(d1) {
		t.Error("AllCompleted true with Isha missing")
	}

	if _, err := s.Toggle(d1, "Isha"); err != nil {
		t.Fatal(err)
	}
	if !s.AllCompleted(d1) {
		t.Error("AllCompleted false with all five completed")
	}

	// Marking any one incomplete flips it back.
	if _, err := s.Toggle(d1, "Dhuhr"); err != nil {
		t.Fatal(err)
	}
	if s.AllCompleted(d1) {
		t.Error("AllCompleted true after uncompleting Dhuhr")
	}
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := openStore(t, dir)
	for _, name := range []string{"Fajr", "Maghrib"} {
		if _, err := s.Toggle(d1, name); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Toggle(d2, "Isha"); err != nil {
		t.Fatal(err)
	}

	reloaded := openStore(t, dir)
	if got := reloaded.Completed(d1); !slices.Equal(got, []string{"Fajr", "Maghrib"}) {
		t.Errorf("Completed(d1) = %v, want [Fajr Maghrib]", got)
	}
	if got := reloaded.Completed(d2); !slices.Equal(got, []string{"Isha"}) {
		t.Errorf("Completed(d2) = %v, want [Isha]", got)
	}
}

func TestSaveDate_DoesNotClobberOtherDates(t *testing.T) {
	dir := t.TempDir()

	// Two store handles over the same file, as two UI surfaces would be.
	a := openStore(t, dir)
	b := openStore(t, dir)

	if _, err := a.Toggle(d1, "Fajr"); err != nil {
		t.Fatal(err)
	}
	// b's in-memory view has never seen d1; its save of d2 must still
	// preserve d1 on disk.
	if _, err := b.Toggle(d2, "Asr"); err != nil {
		t.Fatal(err)
	}

	final := openStore(t, dir)
	if !final.IsCompleted(d1, "Fajr") {
		t.Error("d1 entry clobbered by unrelated save of d2")
	}
	if !final.IsCompleted(d2, "Asr") {
		t.Error("d2 entry missing")
	}
}

func TestOpen_MalformedFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, storeFile), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := openStore(t, dir)
	if s.IsCompleted(d1, "Fajr") {
		t.Error("malformed file produced completions")
	}

	// The store must still be writable afterwards.
	if _, err := s.Toggle(d1, "Fajr"); err != nil {
		t.Fatalf("Toggle after malformed load: %v", err)
	}
}
