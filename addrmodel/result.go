package addrmodel

// RawRow is one result row exactly as scraped from the lookup source:
// six free-text columns, the last one being the house-range rule string.
// A batch of rows lives only for the duration of one search.
type RawRow struct {
	PostalCode string
	Region     string
	District   string
	City       string
	Street     string
	Houses     string
}

// Result is a RawRow annotated with a similarity score and a house-range
// match flag, ready for ranking.
type Result struct {
	PostalCode string  `json:"postal_code"`
	Region     string  `json:"region"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	Street     string  `json:"street"`
	Houses     string  `json:"houses"`
	Score      float64 `json:"similarity_score"`
	HouseMatch bool    `json:"house_match"`
}
