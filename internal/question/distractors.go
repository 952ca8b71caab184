package question

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

const (
	distractorCount = 3
	minShuffleWords = 5
	truncatedLen    = 30
)

var (
	digitRunRe = regexp.MustCompile(`\d+`)
	articleRe  = regexp.MustCompile(`(?i)\b(the|a|an)\b`)
)

// Synthesizer produces wrong answers for a correct answer using layered
// transformation strategies. Randomness comes from the injected source so
// tests can pin sequences.
type Synthesizer struct {
	vocab Vocabulary
	rng   *rand.Rand
}

// NewSynthesizer creates a synthesizer over the given vocabulary.
func NewSynthesizer(vocab Vocabulary, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{vocab: vocab, rng: rng}
}

// Distractors returns exactly three plausible wrong answers. Strategies are
// applied in order (numeric perturbation, antonym substitution, qualifier
// suffix, interior word shuffle, truncated alternatives) until three are
// collected. Distractors are not de-duplicated against each other.
func (s *Synthesizer) Distractors(correct string) []string {
	var out []string

	// Numeric perturbation: nudge every digit run by a small random offset.
	if digitRunRe.MatchString(correct) {
		modified := digitRunRe.ReplaceAllStringFunc(correct, func(m string) string {
			n, err := strconv.Atoi(m)
			if err != nil {
				return m
			}
			return strconv.Itoa(n + s.rng.IntN(11) - 5)
		})
		if modified != correct {
			out = append(out, modified)
		}
	}

	// Antonym substitution: each whole-word hit on the table contributes one
	// distractor, always derived from the original string.
	for _, pair := range s.vocab.Antonyms {
		if len(out) >= distractorCount {
			break
		}
		re, err := wholeWordRe(pair.Word)
		if err != nil {
			continue
		}
		modified := re.ReplaceAllString(correct, pair.Opposite)
		if modified != correct {
			out = append(out, modified)
		}
	}

	// Qualifier fallback.
	if len(out) < distractorCount {
		out = append(out, articleRe.ReplaceAllString(correct, "the")+" "+s.vocab.Qualifier)
	}

	// Word-shuffle fallback: keep the outer words anchored, permute the rest.
	if len(out) < distractorCount {
		if words := substantialWords(correct); len(words) > minShuffleWords {
			middle := append([]string(nil), words[2:len(words)-2]...)
			s.rng.Shuffle(len(middle), func(i, j int) {
				middle[i], middle[j] = middle[j], middle[i]
			})
			parts := append(append(words[:2:2], middle...), words[len(words)-2:]...)
			out = append(out, strings.Join(parts, " "))
		}
	}

	// Truncated-alternative fallback always completes the set.
	for len(out) < distractorCount {
		out = append(out, fmt.Sprintf("%s... [Alternative interpretation %d]",
			firstRunes(correct, truncatedLen), len(out)+1))
	}

	return out[:distractorCount]
}

func wholeWordRe(word string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// substantialWords returns the words longer than three characters, the only
// ones worth permuting.
func substantialWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if len([]rune(w)) > 3 {
			words = append(words, w)
		}
	}
	return words
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
