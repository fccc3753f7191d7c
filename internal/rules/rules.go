// Package rules defines the ordered pattern->replacement table used by the
// local fallback corrector. The table is built once at startup and never
// mutated, so it is safe to share across requests without synchronization.
package rules

import "regexp"

// Replacement is a tagged variant: either a literal replacement string
// (which may use $1-style backreferences into the pattern) or a function
// that derives the replacement from the exact matched substring.
type Replacement struct {
	literal string
	derive  func(match string) string
}

// Literal returns a replacement that substitutes a fixed string.
// Backreferences such as $1 are expanded against the rule's pattern.
func Literal(s string) Replacement {
	return Replacement{literal: s}
}

// Derived returns a replacement computed from the matched substring.
// This enables limited context-sensitive behavior, e.g. preserving the
// casing of the matched word.
func Derived(fn func(match string) string) Replacement {
	return Replacement{derive: fn}
}

// Rule pairs a compiled pattern with its replacement.
type Rule struct {
	pattern *regexp.Regexp
	repl    Replacement
}

// New compiles a rule from a word pattern. Matching is case-insensitive
// and bounded by word boundaries on both sides.
func New(pattern string, repl Replacement) Rule {
	return Rule{
		pattern: regexp.MustCompile(`(?i)\b(?:` + pattern + `)\b`),
		repl:    repl,
	}
}

// apply rewrites every occurrence of the rule's pattern in s.
func (r Rule) apply(s string) string {
	if r.repl.derive != nil {
		return r.pattern.ReplaceAllStringFunc(s, r.repl.derive)
	}
	return r.pattern.ReplaceAllString(s, r.repl.literal)
}

// Table is an immutable, ordered rule set. Rules are applied in table
// order; a later rule may re-touch text already edited by an earlier one,
// so order is part of the table's contract.
type Table struct {
	rules []Rule
}

// NewTable builds a table from rules in priority order.
func NewTable(rs ...Rule) *Table {
	return &Table{rules: rs}
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Apply runs every rule against s in table order and returns the result.
func (t *Table) Apply(s string) string {
	for _, r := range t.rules {
		s = r.apply(s)
	}
	return s
}
