package question

import (
	"regexp"
	"strings"
)

// fallbackConcepts caps how many leading sentences stand in for concepts
// when no importance marker matches.
const fallbackConcepts = 3

var conceptSplitRe = regexp.MustCompile(`[.!?]+`)

// ExtractConcepts selects the sentences of a post likely to carry a testable
// claim: any sentence containing an importance marker, or the first few
// sentences when none does. Substring scan only, never semantic.
func (v Vocabulary) ExtractConcepts(content string) []string {
	var sentences []string
	for _, s := range conceptSplitRe.Split(content, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	var concepts []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, marker := range v.Markers {
			if strings.Contains(lower, marker) {
				concepts = append(concepts, s)
				break
			}
		}
	}

	if len(concepts) > 0 {
		return concepts
	}
	if len(sentences) > fallbackConcepts {
		return sentences[:fallbackConcepts]
	}
	return sentences
}
