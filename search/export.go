package search

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Исходный адрес",
	"Почтовый индекс",
	"Область",
	"Район",
	"Населенный пункт",
	"Улица",
	"Дома",
}

// exportRows flattens batch entries: one row per result, and one
// placeholder row with the source address alone when nothing was found.
func exportRows(entries []BatchEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Results) == 0 {
			rows = append(rows, []string{entry.Source, "", "", "", "", "", ""})
			continue
		}
		for _, r := range entry.Results {
			rows = append(rows, []string{
				entry.Source,
				r.PostalCode,
				r.Region,
				r.District,
				r.City,
				r.Street,
				r.Houses,
			})
		}
	}
	return rows
}

// WriteCSV writes batch results as UTF-8 CSV with a header row.
func WriteCSV(w io.Writer, entries []BatchEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range exportRows(entries) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes batch results as a single-sheet workbook.
func WriteXLSX(w io.Writer, entries []BatchEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	writeRow := func(n int, row []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		return f.SetSheetRow(sheet, cell, &cells)
	}

	if err := writeRow(1, exportHeader); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, row := range exportRows(entries) {
		if err := writeRow(i+2, row); err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
