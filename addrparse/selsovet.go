package addrparse

import (
	"regexp"
	"strings"
)

var (
	selsovetLeftRe  = regexp.MustCompile(`([\pL\pN_]+)\s+сельсовет`)
	selsovetRightRe = regexp.MustCompile(`сельсовет\s+([\pL\pN_]+)`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

// ExtractSelsovet pulls a rural-council name out of text. Both "<word>
// сельсовет" and "сельсовет <word>" forms are recognized; the left form
// wins unless its word is the literal "район". The matched pair is removed
// from the text and runs of spaces are collapsed. When nothing matches, the
// text comes back byte-for-byte unchanged.
func ExtractSelsovet(text string) (name, rest string) {
	if text == "" {
		return "", text
	}

	left := selsovetLeftRe.FindStringSubmatch(text)
	right := selsovetRightRe.FindStringSubmatch(text)
	if left == nil && right == nil {
		return "", text
	}

	cleaned := text
	if left != nil && left[1] != "район" {
		name = left[1]
		cleaned = newWordPattern(regexp.QuoteMeta(left[1])+`\s+сельсовет`).replaceAll(cleaned, "")
	}
	if name == "" && right != nil {
		name = right[1]
		cleaned = newWordPattern(`сельсовет\s+`+regexp.QuoteMeta(right[1])).replaceAll(cleaned, "")
	}

	cleaned = strings.TrimSpace(multiSpaceRe.ReplaceAllString(cleaned, " "))
	return name, cleaned
}
