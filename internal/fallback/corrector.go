// Package fallback implements the local rule-based corrector used when the
// remote grammar service cannot be reached. It is a total function over
// strings: it never fails and identical input always yields identical
// output.
package fallback

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/redpen-dev/redpen/internal/rules"
)

var (
	table = rules.Default()

	// Normalization passes, applied in this order after the rule table.
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?])`)
	missingSpace     = regexp.MustCompile(`([.!?])(\w)`)
	whitespaceRun    = regexp.MustCompile(`\s+`)

	// First letter of the text and the first letter after each
	// sentence-ending punctuation mark.
	sentenceStart = regexp.MustCompile(`(^|[.!?]\s+)[a-z]`)
)

// Correct applies the rule table and punctuation/capitalization
// normalization to text. Empty input yields "".
func Correct(text string) string {
	if text == "" {
		return ""
	}

	s := table.Apply(text)

	s = spaceBeforePunct.ReplaceAllString(s, "$1")
	s = missingSpace.ReplaceAllString(s, "$1 $2")
	s = whitespaceRun.ReplaceAllString(s, " ")

	s = strings.TrimSpace(s)
	s = sentenceStart.ReplaceAllStringFunc(s, upperLast)

	return s
}

// upperLast uppercases the final rune of m. The sentenceStart pattern ends
// on the single lowercase letter to capitalize, so only that rune changes.
func upperLast(m string) string {
	r := []rune(m)
	r[len(r)-1] = unicode.ToUpper(r[len(r)-1])
	return string(r)
}
