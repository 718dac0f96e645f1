// Package search ties the pipeline together: a free-text address is
// parsed, composed back into a canonical query, looked up at the postal
// source and ranked against the parsed criteria.
package search

import (
	"context"
	"log/slog"

	"github.com/postindex/belindex/addrmodel"
	"github.com/postindex/belindex/addrparse"
	"github.com/postindex/belindex/matcher"
)

// Lookup fetches raw postal rows for a composed address string.
type Lookup interface {
	Search(ctx context.Context, address string) ([]addrmodel.RawRow, error)
}

// Parser turns free text into a structured address.
type Parser interface {
	Parse(ctx context.Context, fullAddress string) addrmodel.Address
}

type Service struct {
	parser Parser
	lookup Lookup
	log    *slog.Logger
}

func NewService(parser Parser, lookup Lookup) *Service {
	return &Service{
		parser: parser,
		lookup: lookup,
		log:    slog.With("component", "search"),
	}
}

// FindByText runs the full pipeline for one free-text address. When
// parsing detects nothing the raw text is sent to the lookup source
// unchanged, so a garbled address still has a chance to match.
func (s *Service) FindByText(ctx context.Context, text string) ([]addrmodel.Result, error) {
	parsed := s.parser.Parse(ctx, text)
	return s.FindByAddress(ctx, parsed, text)
}

// FindByAddress looks up an already-parsed address. The raw text is the
// lookup query fallback for an empty parse.
func (s *Service) FindByAddress(ctx context.Context, addr addrmodel.Address, raw string) ([]addrmodel.Result, error) {
	query := raw
	if !addr.IsEmpty() {
		query = addrparse.RenderDisplay(addrparse.PartsOf(addr))
	}

	rows, err := s.lookup.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := matcher.Process(rows, matcher.Criteria{
		Region:     addr.Region,
		District:   addr.District,
		Selsovet:   addr.Selsovet,
		CityType:   addr.CityType,
		CityName:   addr.CityName,
		StreetType: addr.StreetType,
		StreetName: addr.StreetName,
		Building:   addr.HouseNumber,
	})

	s.log.Debug("search done", "query", query, "rows", len(rows), "results", len(results))
	return results, nil
}

// FirstCode returns the postal code of the top-ranked result, or "" when
// nothing matched.
func (s *Service) FirstCode(ctx context.Context, text string) (string, error) {
	results, err := s.FindByText(ctx, text)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", nil
	}
	return results[0].PostalCode, nil
}
