package addrparse

import (
	"strings"

	"github.com/postindex/belindex/addrmodel"
)

// typeEntry maps a token pattern onto a canonical type code. Tables are
// ordered: the first matching entry wins.
type typeEntry struct {
	pat  wordPattern
	code string
}

var cityTypeTable = []typeEntry{
	{newWordPattern(`(город|г\.?)`), addrmodel.CityTypeCity},
	{newWordPattern(`(агрогородок|аг\.?)`), addrmodel.CityTypeAgrotown},
	{newWordPattern(`(деревня|д\.?)`), addrmodel.CityTypeVillage},
	{newWordPattern(`(поселок|п\.?)`), addrmodel.CityTypeSettlement},
	{newWordPattern(`(городской поселок|гп\.?)`), addrmodel.CityTypeUrbanSettlement},
	{newWordPattern(`(курортный поселок|кп\.?)`), addrmodel.CityTypeResort},
	{newWordPattern(`(хутор|х\.?)`), addrmodel.CityTypeFarm},
	{newWordPattern(`(рабочий поселок|рп\.?)`), addrmodel.CityTypeWorkers},
	{newWordPattern(`(село|с\.?)`), addrmodel.CityTypeSelo},
	{newWordPattern(`(сельсовет|с/с)`), addrmodel.CityTypeSelsovet},
}

var streetTypeTable = []typeEntry{
	{newWordPattern(`(улица|ул\.?)`), addrmodel.StreetTypeStreet},
	{newWordPattern(`(проспект|пр-т|пр\.?)`), addrmodel.StreetTypeAvenue},
	{newWordPattern(`(переулок|пер\.?)`), addrmodel.StreetTypeLane},
	{newWordPattern(`(проезд|пр-д)`), addrmodel.StreetTypeDrive},
	{newWordPattern(`(тракт)`), addrmodel.StreetTypeTract},
	{newWordPattern(`(бульвар|б-р)`), addrmodel.StreetTypeBoulevard},
	{newWordPattern(`(тупик)`), addrmodel.StreetTypeDeadEnd},
	{newWordPattern(`(площадь|пл\.?)`), addrmodel.StreetTypeSquare},
	{newWordPattern(`(кольцо)`), addrmodel.StreetTypeRing},
	{newWordPattern(`(набережная|наб\.?)`), addrmodel.StreetTypeEmbankment},
	{newWordPattern(`(шоссе|ш\.?)`), addrmodel.StreetTypeHighway},
	{newWordPattern(`(микрорайон|мкр\.?)`), addrmodel.StreetTypeMicrodistrict},
}

// majorCities are the region capitals: a settlement token naming one of
// them is a city even without an explicit type word.
var majorCities = []string{"минск", "брест", "витебск", "гомель", "гродно", "могилев"}

// ClassifyCityType returns the canonical settlement type code for a raw
// settlement token, or the empty string when the type cannot be told. The
// empty result is not an error: the caller keeps the raw name as-is.
func ClassifyCityType(raw string) string {
	if raw == "" {
		return ""
	}
	for _, e := range cityTypeTable {
		if e.pat.matches(raw) {
			return e.code
		}
	}
	lower := strings.ToLower(raw)
	for _, city := range majorCities {
		if strings.Contains(lower, city) {
			return addrmodel.CityTypeCity
		}
	}
	return ""
}

// ClassifyStreetType returns the canonical street type code for a raw
// street token, or the empty string when no pattern matches.
func ClassifyStreetType(raw string) string {
	if raw == "" {
		return ""
	}
	for _, e := range streetTypeTable {
		if e.pat.matches(raw) {
			return e.code
		}
	}
	return ""
}

// CleanCityName strips every settlement type word from raw, leaving the
// bare settlement name.
func CleanCityName(raw string) string {
	return cleanFromTypes(raw, cityTypeTable)
}

// CleanStreetName strips every street type word from raw, leaving the bare
// street name.
func CleanStreetName(raw string) string {
	return cleanFromTypes(raw, streetTypeTable)
}

func cleanFromTypes(text string, table []typeEntry) string {
	if text == "" {
		return ""
	}
	for _, e := range table {
		text = e.pat.removeAll(text)
	}
	return text
}
