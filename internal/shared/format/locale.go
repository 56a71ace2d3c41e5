package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/centreconnect/centreconnect/internal/shared/errors"
)

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "en-ZA"

// Locale holds the display conventions of one supported locale.
//
// DatePattern uses the placeholders {day}, {month} and {year};
// CurrencyPattern uses {symbol} and {amount}. The sign of negative amounts
// is always written in front of the whole pattern.
type Locale struct {
	Tag             language.Tag
	MonthNames      [12]string
	DatePattern     string
	CurrencyPattern string
	DecimalSep      string
	GroupSep        string
}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	enZA = language.MustParse("en-ZA")
	enGB = language.MustParse("en-GB")
	enUS = language.MustParse("en-US")
)

// supportedLocales is ordered; the first entry is the fallback of the matcher.
var supportedLocales = []Locale{
	{
		Tag:             enZA,
		MonthNames:      englishMonths,
		DatePattern:     "{day} {month} {year}",
		CurrencyPattern: "{symbol}{amount}",
		DecimalSep:      ".",
		GroupSep:        ",",
	},
	{
		Tag:             enGB,
		MonthNames:      englishMonths,
		DatePattern:     "{day} {month} {year}",
		CurrencyPattern: "{symbol}{amount}",
		DecimalSep:      ".",
		GroupSep:        ",",
	},
	{
		Tag:             enUS,
		MonthNames:      englishMonths,
		DatePattern:     "{month} {day}, {year}",
		CurrencyPattern: "{symbol}{amount}",
		DecimalSep:      ".",
		GroupSep:        ",",
	},
}

var localeMatcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.Tag
	}
	return tags
}

// SupportedLocales returns the BCP 47 tags of the built-in locales.
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	for i, l := range supportedLocales {
		out[i] = l.Tag.String()
	}
	return out
}

// LookupLocale resolves a BCP 47 tag to one of the built-in locales.
// Tags that differ only in case or carry extensions resolve to their base
// locale; tags with no usable match are reported as not found.
func LookupLocale(tag string) (Locale, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return Locale{}, errors.NewValidationError("invalid locale tag", tag)
	}

	_, index, confidence := localeMatcher.Match(parsed)
	if confidence == language.No {
		return Locale{}, errors.NewNotFoundError("locale not supported",
			fmt.Sprintf("%s; supported: %s", tag, strings.Join(SupportedLocales(), ", ")))
	}
	return supportedLocales[index], nil
}

func (l Locale) formatDate(t time.Time) string {
	r := strings.NewReplacer(
		"{day}", strconv.Itoa(t.Day()),
		"{month}", l.MonthNames[t.Month()-1],
		"{year}", strconv.Itoa(t.Year()),
	)
	return r.Replace(l.DatePattern)
}

// groupDigits inserts the group separator every three digits from the right.
func (l Locale) groupDigits(digits string) string {
	if len(digits) <= 3 || l.GroupSep == "" {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(l.GroupSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
