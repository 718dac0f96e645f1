package addrparse

import (
	"regexp"
	"strings"

	"github.com/postindex/belindex/addrmodel"
)

var regionWordRe = regexp.MustCompile(`(?i)\s*(область|обл\.?)\s*`)

// regionTable maps a lower-case region stem onto its canonical code.
// Ordered so that lookup is deterministic; canonical codes themselves
// contain their stem, which makes MapRegion idempotent.
var regionTable = []struct {
	stem string
	code string
}{
	{"минск", addrmodel.RegionMinsk},
	{"брест", addrmodel.RegionBrest},
	{"витебск", addrmodel.RegionVitebsk},
	{"гомель", addrmodel.RegionGomel},
	{"гродно", addrmodel.RegionGrodno},
	{"могилев", addrmodel.RegionMogilev},
}

// MapRegion normalizes a raw region string to a canonical region code. The
// literal "область"/"обл." words are stripped first, then the remainder is
// matched by substring against the six region stems. Returns the empty
// string when no region is recognized; callers fall back to the raw value.
func MapRegion(raw string) string {
	if raw == "" {
		return ""
	}
	stripped := StripRegionWord(raw)
	lower := strings.ToLower(stripped)
	for _, e := range regionTable {
		if strings.Contains(lower, e.stem) {
			return e.code
		}
	}
	return ""
}

// StripRegionWord removes the literal region unit words from raw and trims
// the result.
func StripRegionWord(raw string) string {
	return strings.TrimSpace(regionWordRe.ReplaceAllString(raw, " "))
}
