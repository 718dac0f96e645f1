package addrmodel

// Sentinel values used by the search form and the composer. None suppresses
// the whole address part, OtherStreetType keeps the street name but drops
// the type word.
const (
	None            = "НЕТ"
	OtherStreetType = "ДРУГОЕ"
)

// Canonical region codes. Classification never invents a code outside this
// set: an unrecognized region stays as the raw (stripped) string.
const (
	RegionBrest   = "БРЕСТСКАЯ"
	RegionVitebsk = "ВИТЕБСКАЯ"
	RegionGomel   = "ГОМЕЛЬСКАЯ"
	RegionGrodno  = "ГРОДНЕНСКАЯ"
	RegionMinsk   = "МИНСКАЯ"
	RegionMogilev = "МОГИЛЕВСКАЯ"
)

// Regions lists the canonical region codes in display order.
var Regions = []string{
	RegionBrest,
	RegionVitebsk,
	RegionGomel,
	RegionGrodno,
	RegionMinsk,
	RegionMogilev,
}

// Canonical settlement type codes.
const (
	CityTypeCity            = "ГОРОД"
	CityTypeAgrotown        = "АГРОГОРОДОК"
	CityTypeVillage         = "ДЕРЕВНЯ"
	CityTypeSettlement      = "ПОСЕЛОК"
	CityTypeUrbanSettlement = "ГОРОДСКОЙ ПОСЕЛОК"
	CityTypeResort          = "КУРОРТНЫЙ ПОСЕЛОК"
	CityTypeFarm            = "ХУТОР"
	CityTypeWorkers         = "РАБОЧИЙ ПОСЕЛОК"
	CityTypeSelo            = "СЕЛО"
	CityTypeSelsovet        = "СЕЛЬСОВЕТ"
	CityTypeTownshipOfUrban = "ПОСЕЛОК ГОРОДСКОГО ТИПА"
	CityTypeSpecialEconomic = "ОСОБАЯ ЭКОНОМИЧЕСКАЯ ЗОНА"
)

// Canonical street type codes.
const (
	StreetTypeStreet        = "УЛИЦА"
	StreetTypeAvenue        = "ПРОСПЕКТ"
	StreetTypeLane          = "ПЕРЕУЛОК"
	StreetTypeDrive         = "ПРОЕЗД"
	StreetTypeTract         = "ТРАКТ"
	StreetTypeBoulevard     = "БУЛЬВАР"
	StreetTypeDeadEnd       = "ТУПИК"
	StreetTypeSquare        = "ПЛОЩАДЬ"
	StreetTypeRing          = "КОЛЬЦО"
	StreetTypeEmbankment    = "НАБЕРЕЖНАЯ"
	StreetTypeHighway       = "ШОССЕ"
	StreetTypeMicrodistrict = "МИКРОРАЙОН"
)
