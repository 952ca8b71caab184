package book

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MinChapterChars is the substance threshold: chapters whose normalized
// content is this short or shorter are dropped.
const MinChapterChars = 100

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)

	// The five named entities the source format uses. Anything more exotic
	// passes through untouched.
	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// NormalizeMarkup turns raw chapter markup into plain text: script and style
// blocks are removed with their content, remaining tags become a single
// space, entities are decoded, and whitespace runs collapse to one space.
func NormalizeMarkup(raw string) string {
	s := norm.NFC.String(raw)
	s = scriptRe.ReplaceAllString(s, "")
	s = styleRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
