package langtool

import "sort"

// Splice applies matches to text, replacing each matched span with its
// first replacement candidate. Matches are applied in descending offset
// order so that an edit never shifts the offset of a span that has not
// been applied yet; ascending order would corrupt every higher offset as
// soon as an edit changed the string length.
//
// Matches with no candidates are findings the checker would not auto-fix
// and are left untouched. Overlapping spans are not merged or reconciled:
// the lowest-offset match is applied last and lands on whatever string
// state exists at that point.
func Splice(text string, matches []Match) string {
	if len(matches) == 0 {
		return text
	}

	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset > sorted[j].Offset
	})

	out := []rune(text)
	for _, m := range sorted {
		if len(m.Replacements) == 0 {
			continue
		}
		if m.Offset < 0 || m.Length <= 0 || m.Offset+m.Length > len(out) {
			// Span does not fit the current text; skip rather than panic.
			continue
		}
		repl := []rune(m.Replacements[0].Value)
		out = append(out[:m.Offset], append(repl, out[m.Offset+m.Length:]...)...)
	}
	return string(out)
}
