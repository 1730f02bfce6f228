package keywords

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer turns raw text into the lowercase, space-delimited keyword form stored in the index.
// The same normalization is applied to query terms before compiling and scoring, so the two always agree.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize lowercases text for the given language tag, strips diacritics, replaces everything that is not a
// letter or digit with a space and collapses runs of whitespace. Unknown language tags fall back to
// language-neutral casing.
func (n *Normalizer) Normalize(text, lang string) string {
	if text == "" {
		return ""
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	// cases.Caser is stateful, so one is built per call.
	lower := cases.Lower(tag).String(text)

	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), lower)
	if err != nil {
		stripped = lower
	}

	var builder strings.Builder
	builder.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(builder.String()), " ")
}

// Pad wraps keywords with single boundary spaces so whole-word matching can be expressed as substring
// containment. Empty keywords stay empty.
func Pad(keywords string) string {
	if keywords == "" {
		return ""
	}
	return " " + keywords + " "
}

// WordCount returns the number of space-delimited words in keywords.
func WordCount(keywords string) int {
	return len(strings.Fields(keywords))
}
