package addrparse

import (
	"testing"

	"github.com/postindex/belindex/addrmodel"
)

func TestRenderDisplay(t *testing.T) {
	cases := []struct {
		name string
		p    Parts
		want string
	}{
		{
			"full address",
			Parts{
				Region:     addrmodel.RegionMinsk,
				District:   "Минский",
				CityType:   addrmodel.CityTypeCity,
				CityName:   "минск",
				StreetType: addrmodel.StreetTypeStreet,
				StreetName: "ленина",
				Building:   "10",
			},
			"Минская область, Минский район, ГОРОД Минск, УЛИЦА Ленина, 10",
		},
		{
			"selsovet address",
			Parts{
				Region:   addrmodel.RegionMinsk,
				Selsovet: "ждановичский",
				CityType: addrmodel.CityTypeVillage,
				CityName: "тарасово",
			},
			"Минская область, Ждановичский сельсовет, ДЕРЕВНЯ Тарасово",
		},
		{
			"none region suppressed",
			Parts{
				Region:   addrmodel.None,
				CityType: addrmodel.CityTypeCity,
				CityName: "минск",
			},
			"ГОРОД Минск",
		},
		{
			"none city type drops the settlement",
			Parts{
				CityType: addrmodel.None,
				CityName: "минск",
			},
			"",
		},
		{
			"other street type keeps the bare name",
			Parts{
				StreetType: addrmodel.OtherStreetType,
				StreetName: "червякова",
			},
			"Червякова",
		},
		{
			"empty street type keeps the bare name",
			Parts{
				StreetName: "червякова",
			},
			"Червякова",
		},
		{
			"none street type drops the street",
			Parts{
				StreetType: addrmodel.None,
				StreetName: "червякова",
				Building:   "5",
			},
			"5",
		},
		{"empty", Parts{}, ""},
	}

	for _, c := range cases {
		if got := RenderDisplay(c.p); got != c.want {
			t.Fatalf("%s: RenderDisplay = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestRenderMatchKey(t *testing.T) {
	p := Parts{
		Region:     addrmodel.RegionMinsk,
		CityType:   addrmodel.CityTypeCity,
		CityName:   "Минск",
		StreetType: addrmodel.StreetTypeStreet,
		StreetName: "Ленина",
	}
	want := "минская область город минск улица ленина"
	if got := RenderMatchKey(p); got != want {
		t.Fatalf("RenderMatchKey = %q, want %q", got, want)
	}
}
