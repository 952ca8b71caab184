package question_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lifehandler/feedgen/internal/question"
)

func TestDefaultVocabulary(t *testing.T) {
	v := question.DefaultVocabulary()

	if len(v.Markers) == 0 {
		t.Fatal("DefaultVocabulary() has no markers")
	}
	if len(v.Antonyms) == 0 {
		t.Fatal("DefaultVocabulary() has no antonyms")
	}
	if v.Qualifier != "(partially)" {
		t.Errorf("Qualifier = %q, want (partially)", v.Qualifier)
	}

	// Antonym pairs are symmetric in the default table.
	if v.Antonyms[0].Word != "increase" || v.Antonyms[0].Opposite != "decrease" {
		t.Errorf("Antonyms[0] = %+v, want increase/decrease first", v.Antonyms[0])
	}
}

func TestLoadVocabulary_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := `markers:
  - pivotal
  - crucial
antonyms:
  - word: fast
    opposite: slow
qualifier: "(in part)"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := question.LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}

	if len(v.Markers) != 2 || v.Markers[0] != "pivotal" {
		t.Errorf("Markers = %v, want override applied", v.Markers)
	}
	if len(v.Antonyms) != 1 || v.Antonyms[0].Word != "fast" || v.Antonyms[0].Opposite != "slow" {
		t.Errorf("Antonyms = %v, want override applied", v.Antonyms)
	}
	if v.Qualifier != "(in part)" {
		t.Errorf("Qualifier = %q, want override applied", v.Qualifier)
	}
}

func TestLoadVocabulary_PartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	if err := os.WriteFile(path, []byte("markers: [pivotal]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := question.LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}

	if len(v.Markers) != 1 {
		t.Errorf("Markers = %v, want the single override", v.Markers)
	}
	if len(v.Antonyms) != len(question.DefaultVocabulary().Antonyms) {
		t.Error("Antonyms should keep defaults when not overridden")
	}
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	if _, err := question.LoadVocabulary(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadVocabulary() should fail for a missing file")
	}
}

func TestLoadVocabulary_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	if err := os.WriteFile(path, []byte("markers: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := question.LoadVocabulary(path); err == nil {
		t.Error("LoadVocabulary() should fail for invalid YAML")
	}
}
