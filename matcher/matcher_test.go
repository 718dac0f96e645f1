package matcher

import (
	"fmt"
	"testing"

	"github.com/postindex/belindex/addrmodel"
)

func TestProcessRanksHouseMatchAboveScore(t *testing.T) {
	rows := []addrmodel.RawRow{
		{PostalCode: "220030", Street: "улица Ленина", Houses: "1-5"},
		{PostalCode: "220113", Street: "улица Ленинградская", Houses: "ВСЕ"},
	}

	results := Process(rows, Criteria{
		StreetType: addrmodel.StreetTypeStreet,
		StreetName: "ленина",
		Building:   "10",
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].PostalCode != "220113" {
		t.Fatalf("house-covering row must rank first, got %q", results[0].PostalCode)
	}
	if !results[0].HouseMatch || results[1].HouseMatch {
		t.Fatalf("house match flags wrong: %+v", results)
	}
	if results[1].Score != 100 {
		t.Fatalf("exact street must score 100, got %v", results[1].Score)
	}
}

func TestProcessSortIsStable(t *testing.T) {
	rows := make([]addrmodel.RawRow, 5)
	for i := range rows {
		rows[i] = addrmodel.RawRow{
			PostalCode: fmt.Sprintf("2200%02d", i),
			Street:     "улица Ленина",
			Houses:     "ВСЕ",
		}
	}

	results := Process(rows, Criteria{StreetName: "ленина", Building: "1"})
	for i, r := range results {
		if want := fmt.Sprintf("2200%02d", i); r.PostalCode != want {
			t.Fatalf("equal rows must keep input order: pos %d is %q", i, r.PostalCode)
		}
	}
}

func TestProcessTruncatesAfterSort(t *testing.T) {
	rows := make([]addrmodel.RawRow, 15)
	for i := range rows {
		rows[i] = addrmodel.RawRow{PostalCode: fmt.Sprintf("2201%02d", i), Houses: "1-5"}
	}
	// the only house-covering row sits past the cut line
	rows[14].Houses = "ВСЕ"

	results := Process(rows, Criteria{Building: "7"})
	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}
	if results[0].PostalCode != "220114" {
		t.Fatalf("ranking must happen before the cut, got %q first", results[0].PostalCode)
	}
}

func TestProcessFilters(t *testing.T) {
	rows := []addrmodel.RawRow{
		{PostalCode: "220030", Region: "Минская", District: "Минский", City: "г. Минск"},
		{PostalCode: "246000", Region: "Гомельская", District: "Гомельский", City: "г. Гомель"},
	}

	results := Process(rows, Criteria{Region: addrmodel.RegionMinsk})
	if len(results) != 1 || results[0].PostalCode != "220030" {
		t.Fatalf("region filter failed: %+v", results)
	}

	results = Process(rows, Criteria{District: "гомельский"})
	if len(results) != 1 || results[0].PostalCode != "246000" {
		t.Fatalf("district filter failed: %+v", results)
	}
}

func TestProcessNoneDisablesFilter(t *testing.T) {
	rows := []addrmodel.RawRow{
		{PostalCode: "220030", Region: "Минская"},
		{PostalCode: "246000", Region: "Гомельская"},
	}

	results := Process(rows, Criteria{Region: addrmodel.None, District: "x"})
	if len(results) != 0 {
		t.Fatalf("district filter must still apply, got %+v", results)
	}

	results = Process(rows, Criteria{Region: addrmodel.None})
	if len(results) != 2 {
		t.Fatalf("НЕТ region must not filter, got %+v", results)
	}
}

func TestProcessSelsovetLooksInCityAndDistrict(t *testing.T) {
	rows := []addrmodel.RawRow{
		{PostalCode: "223028", District: "Минский", City: "Ждановичский с/с, д. Тарасово"},
		{PostalCode: "223035", District: "Папернянский с/с", City: "д. Цнянка"},
		{PostalCode: "220030", District: "Минский", City: "г. Минск"},
	}

	results := Process(rows, Criteria{Selsovet: "ждановичский"})
	if len(results) != 1 || results[0].PostalCode != "223028" {
		t.Fatalf("selsovet-in-city filter failed: %+v", results)
	}

	results = Process(rows, Criteria{Selsovet: "папернянский"})
	if len(results) != 1 || results[0].PostalCode != "223035" {
		t.Fatalf("selsovet-in-district filter failed: %+v", results)
	}
}

func TestProcessEmptyRows(t *testing.T) {
	if got := Process(nil, Criteria{StreetName: "ленина"}); got != nil {
		t.Fatalf("no rows must yield no results, got %+v", got)
	}
}
