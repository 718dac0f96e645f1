package geocoder

// Tokens is the response of the address token microservice. Every key is
// optional: an empty field means the token was not detected, never an
// error.
type Tokens struct {
	State         string `json:"state"`
	StateDistrict string `json:"state_district"`
	City          string `json:"city"`
	House         string `json:"house"`
	Road          string `json:"road"`
	HouseNumber   string `json:"house_number"`
}

// IsEmpty reports whether the service detected nothing at all.
func (t Tokens) IsEmpty() bool {
	return t == Tokens{}
}

// Settlement returns the settlement token, falling back to the house token
// which the service emits for some rural settlements.
func (t Tokens) Settlement() string {
	if t.City != "" {
		return t.City
	}
	return t.House
}
