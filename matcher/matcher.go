// Package matcher filters, scores and ranks raw lookup rows against the
// search criteria, evaluating the lookup source's house coverage rules.
package matcher

import (
	"sort"
	"strings"

	"github.com/postindex/belindex/addrmodel"
)

// maxResults caps the ranked output, applied strictly after sorting.
const maxResults = 10

// Criteria is what the caller knows about the wanted address. Empty fields
// impose no constraint; addrmodel.None disables region and city-type
// driven behavior the same way an empty value does.
type Criteria struct {
	Region     string
	District   string
	Selsovet   string
	CityType   string
	CityName   string
	StreetType string
	StreetName string
	Building   string
}

// streetTarget is the string rows are scored against, or "" when street
// similarity should not be computed.
func (c Criteria) streetTarget() string {
	if c.StreetName == "" {
		return ""
	}
	switch c.StreetType {
	case addrmodel.OtherStreetType, "":
		return c.StreetName
	case addrmodel.None:
		return ""
	default:
		return c.StreetType + " " + c.StreetName
	}
}

func (c Criteria) hasFilter() bool {
	return (c.Region != "" && c.Region != addrmodel.None) ||
		c.District != "" ||
		c.Selsovet != "" ||
		(c.CityName != "" && c.CityType != addrmodel.None)
}

// Process turns a batch of raw lookup rows into ranked results: rows are
// filtered by the administrative criteria, scored by street similarity,
// checked against their house coverage rule and stably sorted by
// (houseMatch, score) descending. At most ten rows survive.
func Process(rows []addrmodel.RawRow, crit Criteria) []addrmodel.Result {
	if len(rows) == 0 {
		return nil
	}

	if crit.hasFilter() {
		rows = filterRows(rows, crit)
	}

	target := strings.ToLower(crit.streetTarget())

	results := make([]addrmodel.Result, 0, len(rows))
	for _, row := range rows {
		r := addrmodel.Result{
			PostalCode: row.PostalCode,
			Region:     row.Region,
			District:   row.District,
			City:       row.City,
			Street:     row.Street,
			Houses:     row.Houses,
		}
		if target != "" {
			r.Score = Ratio(strings.ToLower(row.Street), target)
		}
		if crit.Building != "" {
			r.HouseMatch = HouseInRange(crit.Building, row.Houses)
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].HouseMatch != results[j].HouseMatch {
			return results[i].HouseMatch
		}
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func filterRows(rows []addrmodel.RawRow, crit Criteria) []addrmodel.RawRow {
	region := ""
	if crit.Region != addrmodel.None {
		region = crit.Region
	}
	city := ""
	if crit.CityType != addrmodel.None {
		city = crit.CityName
	}

	filtered := rows[:0:0]
	for _, row := range rows {
		if region != "" && !containsFold(row.Region, region) {
			continue
		}
		if crit.District != "" && !containsFold(row.District, crit.District) {
			continue
		}
		if city != "" && !containsFold(row.City, city) {
			continue
		}
		// the lookup source has no selsovet column, so the name is looked
		// for in the settlement and district columns
		if crit.Selsovet != "" &&
			!containsFold(row.City, crit.Selsovet) &&
			!containsFold(row.District, crit.Selsovet) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
