package addrparse

import (
	"strings"
	"unicode"

	"github.com/postindex/belindex/addrmodel"
)

// Parts carries the named address components accepted by the composer.
// Values equal to addrmodel.None suppress their part entirely;
// addrmodel.OtherStreetType keeps the street name but drops the type word.
type Parts struct {
	Region     string
	District   string
	Selsovet   string
	CityType   string
	CityName   string
	StreetType string
	StreetName string
	Building   string
}

// PartsOf maps a parsed address onto composer parts, house number included.
func PartsOf(a addrmodel.Address) Parts {
	return Parts{
		Region:     a.Region,
		District:   a.District,
		Selsovet:   a.Selsovet,
		CityType:   a.CityType,
		CityName:   a.CityName,
		StreetType: a.StreetType,
		StreetName: a.StreetName,
		Building:   a.HouseNumber,
	}
}

// RenderDisplay renders the address as the comma-joined human-readable
// form: "Минская область, Минский район, город Минск, улица Ленина, 10".
func RenderDisplay(p Parts) string {
	return strings.Join(compose(p), ", ")
}

// RenderMatchKey renders the address as the space-joined lower-case string
// fed to the street corrector and the geocoder round-trip. It is not meant
// for humans.
func RenderMatchKey(p Parts) string {
	return strings.ToLower(strings.Join(compose(p), " "))
}

func compose(p Parts) []string {
	var parts []string

	if p.Region != "" && p.Region != addrmodel.None {
		parts = append(parts, capitalize(p.Region)+" область")
	}
	if p.District != "" {
		parts = append(parts, capitalize(p.District)+" район")
	}
	if p.Selsovet != "" {
		parts = append(parts, capitalize(p.Selsovet)+" сельсовет")
	}
	if p.CityName != "" && p.CityType != addrmodel.None {
		name := capitalize(p.CityName)
		if p.CityType != "" {
			parts = append(parts, p.CityType+" "+name)
		} else {
			parts = append(parts, name)
		}
	}
	if p.StreetName != "" {
		name := capitalize(p.StreetName)
		switch {
		case p.StreetType == addrmodel.OtherStreetType || p.StreetType == "":
			parts = append(parts, name)
		case p.StreetType != addrmodel.None:
			parts = append(parts, p.StreetType+" "+name)
		}
	}
	if p.Building != "" {
		parts = append(parts, p.Building)
	}

	return parts
}

// capitalize lowers the whole string and upper-cases the first letter.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
