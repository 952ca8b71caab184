package post

const (
	// Budget is the maximum post length in characters.
	Budget = 150

	// DefaultPostsPerChapter caps how many posts a single chapter yields.
	DefaultPostsPerChapter = 15

	// sentenceEndRatio: a terminal mark found past this fraction of the
	// budget is close enough to the end to cut on.
	sentenceEndRatio = 0.7

	ellipsis = "..."
)

// TruncateToBudget shortens text to at most budget characters, preferring a
// complete sentence when one ends late enough in the prefix, then a word
// boundary with an ellipsis, then a hard cut.
func TruncateToBudget(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}

	prefix := runes[:budget]

	lastEnd := -1
	for i := len(prefix) - 1; i >= 0; i-- {
		if isTerminal(prefix[i]) {
			lastEnd = i
			break
		}
	}
	if float64(lastEnd) > float64(budget)*sentenceEndRatio {
		return string(prefix[:lastEnd+1])
	}

	// The ellipsis counts against the budget so the result never exceeds it.
	cut := prefix[:budget-len(ellipsis)]
	for i := len(cut) - 1; i > 0; i-- {
		if cut[i] == ' ' {
			return string(cut[:i]) + ellipsis
		}
	}

	return string(cut) + ellipsis
}

// ensureTerminal appends a period to a sentence whose terminal punctuation
// was consumed by segmentation.
func ensureTerminal(s string) string {
	if s == "" {
		return s
	}
	if isTerminal([]rune(s)[len([]rune(s))-1]) {
		return s
	}
	return s + "."
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func runeLen(s string) int {
	return len([]rune(s))
}
