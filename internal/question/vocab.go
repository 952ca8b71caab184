// Package question synthesizes multiple-choice comprehension questions from
// learning posts: heuristic concept extraction, rule-based distractor
// generation, and answer shuffling.
package question

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AntonymPair maps a word to its opposite for distractor substitution.
// Order matters: pairs are tried in sequence.
type AntonymPair struct {
	Word     string `yaml:"word"`
	Opposite string `yaml:"opposite"`
}

// Vocabulary holds the fixed word lists the heuristics run on. The defaults
// match the shipped corpus; a YAML file can override any of the fields.
type Vocabulary struct {
	Markers   []string      `yaml:"markers"`
	Antonyms  []AntonymPair `yaml:"antonyms"`
	Qualifier string        `yaml:"qualifier"`
}

// DefaultVocabulary returns the built-in importance markers and antonym
// table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Markers: []string{
			"important", "key", "critical", "essential", "must", "should",
			"always", "never", "principle", "rule", "framework", "strategy",
			"method", "technique", "process",
		},
		Antonyms: []AntonymPair{
			{"increase", "decrease"}, {"decrease", "increase"},
			{"high", "low"}, {"low", "high"},
			{"good", "bad"}, {"bad", "good"},
			{"more", "less"}, {"less", "more"},
			{"always", "never"}, {"never", "always"},
			{"should", "should not"}, {"must", "must not"},
			{"effective", "ineffective"}, {"successful", "unsuccessful"},
			{"improve", "worsen"}, {"strength", "weakness"},
		},
		Qualifier: "(partially)",
	}
}

// LoadVocabulary reads a vocabulary override from a YAML file. Fields left
// empty in the file keep their defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	v := DefaultVocabulary()

	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("read vocabulary file: %w", err)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return v, fmt.Errorf("parse vocabulary file: %w", err)
	}

	if len(override.Markers) > 0 {
		v.Markers = override.Markers
	}
	if len(override.Antonyms) > 0 {
		v.Antonyms = override.Antonyms
	}
	if override.Qualifier != "" {
		v.Qualifier = override.Qualifier
	}

	return v, nil
}
