package serialize

import "strings"

// indentUnit is the per-level indentation of pretty output.
const indentUnit = "  "

// Prettify reformats markup into indented multi-line text for
// diagnostics. It is a pure string transform: whitespace is collapsed
// first, then the string is tokenized on tag boundaries and re-emitted
// one token per line with a running indent. A closing tag whose opening
// tag is the immediately preceding line (an element with no content)
// is merged onto that line. Output is cosmetic only and must not feed
// equality checks; compare via Normalize.
func Prettify(markup string) string {
	s := Normalize(markup)
	if s == "" {
		return ""
	}

	var lines []string
	indent := 0
	prevOpenIdx := -1
	prevOpenName := ""

	for _, tok := range tokenizeMarkup(s) {
		switch {
		case strings.HasPrefix(tok, "</"):
			if indent > 0 {
				indent--
			}
			name := tokenTagName(tok)
			if prevOpenIdx == len(lines)-1 && prevOpenIdx >= 0 && name == prevOpenName {
				lines[len(lines)-1] += tok
			} else {
				lines = append(lines, pad(indent)+tok)
			}
			prevOpenIdx = -1
		case isSelfContainedToken(tok):
			lines = append(lines, pad(indent)+tok)
			prevOpenIdx = -1
		case strings.HasPrefix(tok, "<"):
			lines = append(lines, pad(indent)+tok)
			prevOpenIdx = len(lines) - 1
			prevOpenName = tokenTagName(tok)
			indent++
		default:
			lines = append(lines, pad(indent)+tok)
			prevOpenIdx = -1
		}
	}

	return strings.Join(lines, "\n")
}

// tokenizeMarkup splits markup into <...> tag tokens and text tokens.
// Comments are kept whole even when their text contains '>'.
func tokenizeMarkup(s string) []string {
	var toks []string
	appendText := func(t string) {
		if t = strings.TrimSpace(t); t != "" {
			toks = append(toks, t)
		}
	}

	for len(s) > 0 {
		i := strings.IndexByte(s, '<')
		if i < 0 {
			appendText(s)
			break
		}
		appendText(s[:i])
		s = s[i:]

		var end int
		if strings.HasPrefix(s, "<!--") {
			end = strings.Index(s, "-->")
			if end >= 0 {
				end += len("-->") - 1
			}
		} else {
			end = strings.IndexByte(s, '>')
		}
		if end < 0 {
			appendText(s)
			break
		}
		toks = append(toks, s[:end+1])
		s = s[end+1:]
	}

	return toks
}

// isSelfContainedToken reports tags that neither open nor close a
// level: explicit self-closers, comments, and void elements.
func isSelfContainedToken(tok string) bool {
	if strings.HasSuffix(tok, "/>") || strings.HasPrefix(tok, "<!--") {
		return true
	}
	return strings.HasPrefix(tok, "<") && isVoidElement(tokenTagName(tok))
}

// tokenTagName extracts the tag name from an opening or closing tag token.
func tokenTagName(tok string) string {
	name := strings.TrimPrefix(tok, "</")
	name = strings.TrimPrefix(name, "<")
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case ' ', '>', '/':
			return name[:i]
		}
	}
	return name
}

func pad(indent int) string {
	return strings.Repeat(indentUnit, indent)
}
