package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/postindex/belindex/addrmodel"
)

type fakeParser struct {
	addr addrmodel.Address
}

func (f fakeParser) Parse(context.Context, string) addrmodel.Address { return f.addr }

type fakeLookup struct {
	rows []addrmodel.RawRow
	err  error

	mu      sync.Mutex
	queries []string
}

func (f *fakeLookup) Search(_ context.Context, address string) ([]addrmodel.RawRow, error) {
	f.mu.Lock()
	f.queries = append(f.queries, address)
	f.mu.Unlock()
	return f.rows, f.err
}

func TestFindByTextQueriesComposedAddress(t *testing.T) {
	lookup := &fakeLookup{rows: []addrmodel.RawRow{
		{PostalCode: "220030", Street: "улица Ленина", Houses: "ВСЕ"},
	}}
	svc := NewService(fakeParser{addr: addrmodel.Address{
		CityType:   addrmodel.CityTypeCity,
		CityName:   "минск",
		StreetType: addrmodel.StreetTypeStreet,
		StreetName: "ленина",
	}}, lookup)

	results, err := svc.FindByText(context.Background(), "минск ленина")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].PostalCode != "220030" {
		t.Fatalf("results = %+v", results)
	}
	if want := "ГОРОД Минск, УЛИЦА Ленина"; lookup.queries[0] != want {
		t.Fatalf("lookup query = %q, want %q", lookup.queries[0], want)
	}
}

func TestFindByTextFallsBackToRawQuery(t *testing.T) {
	lookup := &fakeLookup{}
	svc := NewService(fakeParser{}, lookup)

	if _, err := svc.FindByText(context.Background(), "абракадабра 13"); err != nil {
		t.Fatal(err)
	}
	if lookup.queries[0] != "абракадабра 13" {
		t.Fatalf("unparsed address must be queried raw, got %q", lookup.queries[0])
	}
}

func TestFindByTextLookupError(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("boom")}
	svc := NewService(fakeParser{}, lookup)

	if _, err := svc.FindByText(context.Background(), "минск"); err == nil {
		t.Fatal("lookup error must surface")
	}
}

func TestFirstCode(t *testing.T) {
	lookup := &fakeLookup{rows: []addrmodel.RawRow{
		{PostalCode: "220030", Houses: "ВСЕ"},
		{PostalCode: "220113", Houses: "ВСЕ"},
	}}
	svc := NewService(fakeParser{}, lookup)

	code, err := svc.FirstCode(context.Background(), "минск")
	if err != nil {
		t.Fatal(err)
	}
	if code != "220030" {
		t.Fatalf("code = %q, want 220030", code)
	}
}

func TestFirstCodeNoResults(t *testing.T) {
	svc := NewService(fakeParser{}, &fakeLookup{})

	code, err := svc.FirstCode(context.Background(), "минск")
	if err != nil {
		t.Fatal(err)
	}
	if code != "" {
		t.Fatalf("code = %q, want empty", code)
	}
}

func TestBatchPreservesOrderAndDegrades(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("boom")}
	svc := NewService(fakeParser{}, lookup)

	addresses := []string{"первый", "второй", "третий"}
	var ticks atomic.Int32
	entries, err := svc.Batch(context.Background(), addresses, 2, func() { ticks.Add(1) })
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if ticks.Load() != 3 {
		t.Fatalf("progress ticked %d times, want 3", ticks.Load())
	}
	for i, entry := range entries {
		if entry.Source != addresses[i] {
			t.Fatalf("entry %d source = %q, want %q", i, entry.Source, addresses[i])
		}
		if len(entry.Results) != 0 {
			t.Fatalf("failed lookup must leave entry empty: %+v", entry)
		}
	}
}
