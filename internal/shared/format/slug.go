package format

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// slugSpace is the ECMAScript whitespace class. Go's \s only covers ASCII.
const slugSpace = `\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	slugDisallowed = regexp.MustCompile(`[^\w` + slugSpace + `-]`)
	slugWhitespace = regexp.MustCompile(`[` + slugSpace + `]+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// GenerateSlug normalizes text into a lowercase, hyphen separated slug.
//
// Hyphens produced from leading or trailing whitespace are kept:
// "  a b  " becomes "-a-b-". Use a Formatter built WithSlugTrimEdges to
// drop them.
func GenerateSlug(text string) string {
	return generateSlug(text, false)
}

func generateSlug(text string, trimEdges bool) string {
	// cases.Caser is stateful, so one is built per call.
	s := cases.Lower(language.Und).String(text)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = strings.TrimFunc(s, unicode.IsSpace)
	if trimEdges {
		s = strings.Trim(s, "-")
	}
	return s
}
