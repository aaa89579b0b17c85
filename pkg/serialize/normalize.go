package serialize

import (
	"regexp"
	"strings"
)

var wsRun = regexp.MustCompile(`\s+`)

// Normalize reduces markup to the canonical comparison form: whitespace
// runs collapse to single spaces, whitespace touching a tag boundary is
// removed entirely (both between tags and at the edge of text content),
// and the result is trimmed. Indented fixtures and single-line output
// therefore normalize identically. Normalize is idempotent and is the
// final step before structural string comparison. Diagnostics use
// Prettify instead; the two must never be mixed.
func Normalize(markup string) string {
	out := wsRun.ReplaceAllString(markup, " ")
	out = strings.ReplaceAll(out, "> ", ">")
	out = strings.ReplaceAll(out, " <", "<")
	return strings.TrimSpace(out)
}
