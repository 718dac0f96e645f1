// Package addrparse normalizes free-text Belarusian addresses into their
// structured parts: abbreviations are expanded, the selsovet name is
// extracted, the remainder is tokenized by the external geocoder and the
// tokens are classified against the canonical type tables.
package addrparse

import (
	"context"
	"log/slog"

	"github.com/postindex/belindex/addrmodel"
	"github.com/postindex/belindex/geocoder"
)

// Geocoder turns one free-text address string into detected tokens.
// An unreachable service reports an error; the parser treats it the same
// as an empty answer.
type Geocoder interface {
	Parse(ctx context.Context, address string) (geocoder.Tokens, error)
}

// StreetCorrector fixes a composed lower-case address string against the
// reference street corpus, returning the input unchanged when no close
// match exists.
type StreetCorrector interface {
	Correct(street string) string
}

var (
	districtWordPat = newWordPattern(`(район|р-н|рн)\.?`)
	houseWordPat    = newWordPattern(`(дом|д\.?)`)
)

// Parser is the address parsing pipeline. It never returns an error: any
// failing stage degrades to an empty structured address.
type Parser struct {
	geo       Geocoder
	corrector StreetCorrector
	log       *slog.Logger
}

func NewParser(geo Geocoder, corrector StreetCorrector) *Parser {
	return &Parser{
		geo:       geo,
		corrector: corrector,
		log:       slog.With("component", "addrparse"),
	}
}

// Parse runs the full pipeline over one free-text address: expansion,
// selsovet extraction, geocoding, classification and one round of street
// self-correction. An empty result means parsing failed or detected
// nothing; the two are deliberately indistinguishable.
func (p *Parser) Parse(ctx context.Context, fullAddress string) addrmodel.Address {
	if fullAddress == "" {
		return addrmodel.Address{}
	}

	parsed, ok := p.parseComponents(ctx, fullAddress)
	if !ok {
		return addrmodel.Address{}
	}

	if corrected, ok := p.correctedReparse(ctx, parsed); ok {
		parsed = parsed.Merge(corrected)
	}

	p.log.Debug("address parsed", "address", fullAddress, "result", parsed)
	return parsed
}

func (p *Parser) parseComponents(ctx context.Context, address string) (addrmodel.Address, bool) {
	expanded := ExpandAbbreviations(address)
	selsovet, remainder := ExtractSelsovet(expanded)

	tokens, err := p.geo.Parse(ctx, remainder)
	if err != nil {
		p.log.Warn("token service unavailable", "error", err)
		return addrmodel.Address{}, false
	}
	if tokens.IsEmpty() {
		p.log.Warn("token service detected nothing", "address", remainder)
		return addrmodel.Address{}, false
	}

	addr := addrmodel.Address{Selsovet: selsovet}

	if tokens.State != "" {
		// an unmapped region is kept as the raw stripped value rather
		// than dropped
		if mapped := MapRegion(tokens.State); mapped != "" {
			addr.Region = mapped
		} else if stripped := StripRegionWord(tokens.State); stripped != "" {
			addr.Region = stripped
		} else {
			addr.Region = tokens.State
		}
	}

	if tokens.StateDistrict != "" {
		if cleaned := districtWordPat.removeAll(tokens.StateDistrict); cleaned != "" {
			addr.District = cleaned
		} else {
			addr.District = tokens.StateDistrict
		}
	}

	if settlement := tokens.Settlement(); settlement != "" {
		addr.CityType = ClassifyCityType(settlement)
		addr.CityName = CleanCityName(settlement)
	}

	if tokens.Road != "" {
		addr.StreetType = ClassifyStreetType(tokens.Road)
		addr.StreetName = CleanStreetName(tokens.Road)
	}

	if tokens.HouseNumber != "" {
		addr.HouseNumber = houseWordPat.removeAll(tokens.HouseNumber)
	}

	return addr, true
}

// correctedReparse renders the parse result back into a match key, runs
// the street corrector over it and re-parses the corrected string. The
// house number is never recomputed here: the original one is carried
// through so the merge cannot change it.
func (p *Parser) correctedReparse(ctx context.Context, parsed addrmodel.Address) (addrmodel.Address, bool) {
	if p.corrector == nil {
		return addrmodel.Address{}, false
	}

	parts := PartsOf(parsed)
	parts.Building = ""
	corrected := p.corrector.Correct(RenderMatchKey(parts))

	reparsed, ok := p.parseComponents(ctx, corrected)
	if !ok {
		return addrmodel.Address{}, false
	}
	reparsed.HouseNumber = parsed.HouseNumber
	return reparsed, true
}
