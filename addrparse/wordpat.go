package addrparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordPattern matches an abbreviation or a type word only when it stands as
// a whole token. Go's regexp \b is ASCII-only and useless for Cyrillic, so
// candidate spans come from the bare expression and the token boundaries are
// verified on runes around the span.
type wordPattern struct {
	re *regexp.Regexp
}

func newWordPattern(expr string) wordPattern {
	return wordPattern{re: regexp.MustCompile(`(?i)` + expr)}
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isBoundary(r)
}

func boundaryAfter(s string, i int) bool {
	if i == len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isBoundary(r)
}

// findAll returns the boundary-checked, non-overlapping match spans for p in
// s, left to right. A greedy match that swallowed a trailing dot right
// before a letter is shrunk by that dot, the way a backtracking engine with
// a trailing word-boundary lookahead would settle.
func (p wordPattern) findAll(s string) [][2]int {
	var spans [][2]int
	for _, m := range p.re.FindAllStringIndex(s, -1) {
		start, end := m[0], m[1]
		if !boundaryBefore(s, start) {
			continue
		}
		if !boundaryAfter(s, end) {
			if s[end-1] != '.' {
				continue
			}
			end-- // the dot itself is a valid boundary for the shorter match
		}
		spans = append(spans, [2]int{start, end})
	}
	return spans
}

// matches reports whether p occurs in s as a whole token.
func (p wordPattern) matches(s string) bool {
	return len(p.findAll(s)) > 0
}

// replaceAll substitutes every whole-token occurrence of p in s.
func (p wordPattern) replaceAll(s, repl string) string {
	spans := p.findAll(s)
	if len(spans) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(s[last:span[0]])
		b.WriteString(repl)
		last = span[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// removeAll deletes every whole-token occurrence of p in s and trims the
// result.
func (p wordPattern) removeAll(s string) string {
	return strings.TrimSpace(p.replaceAll(s, ""))
}
