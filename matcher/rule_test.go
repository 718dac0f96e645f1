package matcher

import "testing"

func TestHouseInRange(t *testing.T) {
	cases := []struct {
		house string
		rule  string
		want  bool
	}{
		{"12", "ВСЕ", true},
		{"12", "все", true},
		{"А", "ВСЕ", true},

		// parity ranges accept only the parity of the range start
		{"12", "(10-20)", true},
		{"15", "(10-20)", false},
		{"15", "(11-21)", true},
		{"12", "(11-21)", false},
		{"9", "(10-20)", false},
		{"22", "(10-20)", false},

		{"15", "10-20", true},
		{"10", "10-20", true},
		{"20", "10-20", true},
		{"21", "10-20", false},

		// letter suffixes: the leading digit run is the number
		{"15А", "10-20", true},
		{"7А", "1-10", true},
		{"7А", "7А", true},
		{"7а", "7А", true},

		// digit-less houses match only ВСЕ or an exact literal
		{"А", "1-10", false},
		{"А", "А", true},

		{"5", "1-3, 7-9, ВСЕ", true},
		{"5", "1-3, 7-9", false},
		{"8", "1-3, 7-9", true},
		{"5", " 1-3 , 5 ", true},

		{"", "ВСЕ", false},
		{"5", "", false},
	}

	for _, c := range cases {
		if got := HouseInRange(c.house, c.rule); got != c.want {
			t.Fatalf("HouseInRange(%q, %q) = %v, want %v", c.house, c.rule, got, c.want)
		}
	}
}
