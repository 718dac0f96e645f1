package addrmodel

// Address is a structured Belarusian address produced by the parsing
// pipeline. Every field is optional: an empty string means the part was
// not detected. A new value is built on every parse, never mutated.
type Address struct {
	Selsovet    string `json:"selsovet,omitempty"`
	Region      string `json:"region,omitempty"`
	District    string `json:"district,omitempty"`
	CityType    string `json:"city_type,omitempty"`
	CityName    string `json:"city_name,omitempty"`
	StreetType  string `json:"street_type,omitempty"`
	StreetName  string `json:"street_name,omitempty"`
	HouseNumber string `json:"house_number,omitempty"`
}

// IsEmpty reports whether no component of the address was detected.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Merge returns a copy of a with every non-empty field of other applied on
// top. Empty fields of other keep the original value.
func (a Address) Merge(other Address) Address {
	merged := a
	if other.Selsovet != "" {
		merged.Selsovet = other.Selsovet
	}
	if other.Region != "" {
		merged.Region = other.Region
	}
	if other.District != "" {
		merged.District = other.District
	}
	if other.CityType != "" {
		merged.CityType = other.CityType
	}
	if other.CityName != "" {
		merged.CityName = other.CityName
	}
	if other.StreetType != "" {
		merged.StreetType = other.StreetType
	}
	if other.StreetName != "" {
		merged.StreetName = other.StreetName
	}
	if other.HouseNumber != "" {
		merged.HouseNumber = other.HouseNumber
	}
	return merged
}
