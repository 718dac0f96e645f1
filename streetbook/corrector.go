package streetbook

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/postindex/belindex/matcher"
)

// DefaultThreshold is the minimal token-sort similarity score at which a
// reference entry replaces the input.
const DefaultThreshold = 80

// Corrector fuzzy-matches a candidate street address string against the
// reference corpus. The corpus is re-read on every call; reloading is the
// caller's explicit choice of path, never an automatic background action.
type Corrector struct {
	path      string
	threshold float64
	log       *slog.Logger
}

func NewCorrector(path string, threshold float64) *Corrector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Corrector{
		path:      path,
		threshold: threshold,
		log:       slog.With("component", "streetbook"),
	}
}

// Correct returns the best-matching reference entry re-cased to
// "First letter upper, rest lower" when its token-order-insensitive
// similarity to input reaches the threshold, and the input unchanged
// otherwise. A missing or empty corpus degrades to identity: the failure
// is logged, never raised.
func (c *Corrector) Correct(input string) string {
	entries, err := Load(c.path)
	if err != nil {
		c.log.Warn("street book unavailable, keeping input", "path", c.path, "error", err)
		return input
	}
	if len(entries) == 0 {
		return input
	}

	lower := strings.ToLower(input)
	best := ""
	bestScore := -1.0
	for _, entry := range entries {
		if score := matcher.TokenSortRatio(lower, entry); score > bestScore {
			best, bestScore = entry, score
		}
	}

	if bestScore < c.threshold {
		c.log.Debug("no close street book match", "input", input, "best", best, "score", bestScore)
		return input
	}

	c.log.Debug("street corrected", "input", input, "match", best, "score", bestScore)
	return capitalize(best)
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
