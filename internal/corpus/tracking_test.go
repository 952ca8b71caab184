package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lifehandler/feedgen/internal/corpus"
)

func TestFileTracker_EmptyWhenMissing(t *testing.T) {
	tracker := corpus.NewFileTracker(filepath.Join(t.TempDir(), "tracking.json"))

	covered, err := tracker.Covered(t.Context())
	if err != nil {
		t.Fatalf("Covered() error = %v", err)
	}
	if len(covered) != 0 {
		t.Errorf("Covered() = %v, want empty set", covered)
	}
}

func TestFileTracker_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking.json")
	tracker := corpus.NewFileTracker(path)

	if err := tracker.Add(t.Context(), []string{"aaaa", "bbbb"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := tracker.Add(t.Context(), []string{"bbbb", "cccc"}); err != nil {
		t.Fatalf("second Add() error = %v", err)
	}

	covered, err := tracker.Covered(t.Context())
	if err != nil {
		t.Fatalf("Covered() error = %v", err)
	}
	for _, key := range []string{"aaaa", "bbbb", "cccc"} {
		if !covered[key] {
			t.Errorf("Covered()[%q] = false, want true", key)
		}
	}
	if len(covered) != 3 {
		t.Errorf("Covered() size = %d, want 3", len(covered))
	}
}

func TestFileTracker_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking.json")

	if err := corpus.NewFileTracker(path).Add(t.Context(), []string{"dddd"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	covered, err := corpus.NewFileTracker(path).Covered(t.Context())
	if err != nil {
		t.Fatalf("Covered() error = %v", err)
	}
	if !covered["dddd"] {
		t.Error("tracking set lost across reopen")
	}
}

func TestFileTracker_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := corpus.NewFileTracker(path).Covered(t.Context()); err == nil {
		t.Error("Covered() should fail on a corrupt tracking artifact")
	}
}
