package textproc

import (
	"regexp"
	"strings"
)

// The normalizer repairs block-extraction artifacts. The rules run in a
// fixed order; changing the order changes the output, so the order is
// part of the contract and pinned by tests. Applying Normalize to its own
// output is a no-op.
var (
	spaceRun    = regexp.MustCompile(`[ \t]+`)
	lineEdgeWS  = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	missingWS   = regexp.MustCompile(`([a-z])([A-Z])`)
	hyphenBreak = regexp.MustCompile(`([A-Za-z])-\s+([a-z])`)
	wsPunct     = regexp.MustCompile(`\s+([.,;:])`)
	blankRun    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans a text stream after formula isolation:
// whitespace runs collapse to one space, missing inter-word spaces at
// lowercase-to-uppercase boundaries are restored, hyphen-broken words are
// rejoined, whitespace before clause punctuation is dropped, and blank-line
// runs shrink to a single blank line so paragraph breaks survive.
func Normalize(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")
	text = lineEdgeWS.ReplaceAllString(text, "\n")
	text = missingWS.ReplaceAllString(text, "$1 $2")
	// Only lowercase continuations: rejoining before an uppercase letter
	// would create a new lower-upper boundary and break idempotence.
	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	text = wsPunct.ReplaceAllString(text, "$1")
	text = blankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
