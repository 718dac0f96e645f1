package addrparse

import "testing"

func TestExtractSelsovet(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantRest string
	}{
		{
			"Минская область Ждановичский сельсовет деревня Тарасово",
			"Ждановичский",
			"Минская область деревня Тарасово",
		},
		{
			"сельсовет Ждановичский деревня Тарасово",
			"Ждановичский",
			"деревня Тарасово",
		},
		// the left word being "район" means the right form carries the name
		{
			"Минский район сельсовет Папернянский",
			"Папернянский",
			"Минский район",
		},
		{"город Минск улица Ленина", "", "город Минск улица Ленина"},
		{"", "", ""},
	}

	for _, c := range cases {
		name, rest := ExtractSelsovet(c.in)
		if name != c.wantName || rest != c.wantRest {
			t.Fatalf("ExtractSelsovet(%q) = (%q, %q), want (%q, %q)",
				c.in, name, rest, c.wantName, c.wantRest)
		}
	}
}

func TestExtractSelsovetNoMatchKeepsTextIdentical(t *testing.T) {
	in := "  город   Минск " // odd spacing must survive a non-match untouched
	name, rest := ExtractSelsovet(in)
	if name != "" || rest != in {
		t.Fatalf("got (%q, %q), want unchanged input", name, rest)
	}
}
