package matcher

import (
	"regexp"
	"strconv"
	"strings"
)

// The house coverage rule is a comma-separated list of clauses; a house
// matches the rule when any clause accepts it:
//
//	ВСЕ          every house number
//	(10-20)      inclusive range restricted to the parity of its start
//	10-20        plain inclusive range
//	7А           exact literal match against the whole house token
const ruleAll = "ВСЕ"

var (
	leadingDigitsRe = regexp.MustCompile(`^(\d+)`)
	parityRangeRe   = regexp.MustCompile(`^\((\d+)-(\d+)\)$`)
	plainRangeRe    = regexp.MustCompile(`^(\d+)-(\d+)$`)
)

// HouseInRange evaluates a house number against one coverage rule string.
// The numeric part of the house is its leading digit run; a house with no
// leading digits can only be accepted by ВСЕ or by an exact literal clause.
func HouseInRange(house, rule string) bool {
	if house == "" || rule == "" {
		return false
	}

	house = strings.ToUpper(strings.TrimSpace(house))
	rule = strings.ToUpper(strings.TrimSpace(rule))

	if rule == ruleAll {
		return true
	}

	num, hasNum := leadingHouseNumber(house)

	for _, part := range strings.Split(rule, ",") {
		part = strings.TrimSpace(part)

		if part == ruleAll {
			return true
		}

		if m := parityRangeRe.FindStringSubmatch(part); m != nil {
			if hasNum && inParityRange(num, m[1], m[2]) {
				return true
			}
			continue
		}

		if m := plainRangeRe.FindStringSubmatch(part); m != nil {
			if hasNum && inPlainRange(num, m[1], m[2]) {
				return true
			}
			continue
		}

		if part == house {
			return true
		}
	}

	return false
}

func leadingHouseNumber(house string) (int, bool) {
	m := leadingDigitsRe.FindString(house)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func inParityRange(n int, startS, endS string) bool {
	start, err1 := strconv.Atoi(startS)
	end, err2 := strconv.Atoi(endS)
	if err1 != nil || err2 != nil {
		return false
	}
	return n%2 == start%2 && start <= n && n <= end
}

func inPlainRange(n int, startS, endS string) bool {
	start, err1 := strconv.Atoi(startS)
	end, err2 := strconv.Atoi(endS)
	if err1 != nil || err2 != nil {
		return false
	}
	return start <= n && n <= end
}
