// Package langtool is a client for a LanguageTool-style grammar checking
// service. It sends text to the remote /v2/check endpoint, parses the
// returned findings, and splices the first replacement candidate of each
// finding back into the original text.
package langtool

// Match is a single finding returned by the remote checker: a span of the
// text it was computed against plus zero or more candidate replacements.
// Offsets and lengths count runes. Invariant: Offset+Length never exceeds
// the length of the checked text.
type Match struct {
	Message      string        `json:"message"`
	Offset       int           `json:"offset"`
	Length       int           `json:"length"`
	Replacements []Replacement `json:"replacements"`
	Context      Context       `json:"context"`
}

// Replacement is one candidate fix for a match, in the checker's
// preference order.
type Replacement struct {
	Value string `json:"value"`
}

// Context carries the diagnostic excerpt the checker computed the match
// against. Informational only; splicing uses Match.Offset/Length.
type Context struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// checkResponse is the wire shape of a /v2/check response.
type checkResponse struct {
	Matches []Match `json:"matches"`
}
