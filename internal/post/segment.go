// Package post turns normalized chapter text into learning posts: sentence
// segmentation followed by greedy packing under a character budget.
package post

import (
	"regexp"
	"strings"
)

// minSentenceChars filters trivially short fragments out of the sentence
// stream; anything this short carries no standalone claim.
const minSentenceChars = 20

var sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)

// SplitSentences splits chapter text on runs of terminal punctuation followed
// by whitespace, trims each fragment, and drops the non-substantial ones.
// Order is preserved from the source.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len([]rune(s)) > minSentenceChars {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
