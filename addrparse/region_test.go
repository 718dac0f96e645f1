package addrparse

import (
	"testing"

	"github.com/postindex/belindex/addrmodel"
)

func TestMapRegion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Минская область", addrmodel.RegionMinsk},
		{"минская обл.", addrmodel.RegionMinsk},
		{"Брестская область", addrmodel.RegionBrest},
		{"Витебская", addrmodel.RegionVitebsk},
		{"Гомельская область", addrmodel.RegionGomel},
		{"Гродненская область", addrmodel.RegionGrodno},
		{"Могилевская область", addrmodel.RegionMogilev},
		// mapping is idempotent on its own codes
		{addrmodel.RegionMinsk, addrmodel.RegionMinsk},
		{"Смоленская область", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := MapRegion(c.in); got != c.want {
			t.Fatalf("MapRegion(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripRegionWord(t *testing.T) {
	if got := StripRegionWord("Минская область"); got != "Минская" {
		t.Fatalf("StripRegionWord = %q, want %q", got, "Минская")
	}
	if got := StripRegionWord("обл. Минская"); got != "Минская" {
		t.Fatalf("StripRegionWord = %q, want %q", got, "Минская")
	}
}
