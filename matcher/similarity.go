package matcher

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio is the normalized edit similarity of two strings on a 0..100
// scale: 100 for equal strings, 0 for nothing in common. Comparison is
// case-sensitive; callers lower-case their inputs.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

// TokenSortRatio compares the strings with their whitespace-separated
// tokens sorted first, so that word order does not count against the
// score.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
