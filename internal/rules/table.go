package rules

// Default returns the standard rule table for English text. Ordering is
// deliberate: multi-word fixes run before single-word ones so a later rule
// can still touch text produced by an earlier rule.
func Default() *Table {
	return NewTable(
		// Multi-word grammar fixes.
		New(`(could|should|would) of`, Literal("$1 have")),

		// Common misspellings.
		New(`teh`, Literal("the")),
		New(`recieve`, Literal("receive")),
		New(`recieved`, Literal("received")),
		New(`seperate`, Literal("separate")),
		New(`seperately`, Literal("separately")),
		New(`definately`, Literal("definitely")),
		New(`occured`, Literal("occurred")),
		New(`untill`, Literal("until")),
		New(`wich`, Literal("which")),
		New(`alot`, Literal("a lot")),

		// Contractions and the pronoun I.
		New(`im`, Literal("I'm")),
		New(`dont`, Literal("don't")),
		New(`cant`, Literal("can't")),
		New(`i`, Literal("I")),

		// Their/there/they're disambiguation needs sentence context the
		// table does not have, so the derived replacement passes the
		// matched word through unchanged. Kept as the hook for smarter
		// handling.
		New(`their|there|they're`, Derived(func(match string) string {
			return match
		})),
	)
}
