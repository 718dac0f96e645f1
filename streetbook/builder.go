package streetbook

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// settlementTypes expands the abbreviated settlement type codes stored in
// the address database to the full words the corpus uses.
var settlementTypes = map[string]string{
	"г.":  "город",
	"аг.": "агрогородок",
	"гп":  "городской поселок",
	"д.":  "деревня",
	"с/с": "сельский совет",
	"р-н": "район",
	"п.":  "поселок",
	"рп":  "рабочий поселок",
	"кп":  "курортный поселок",
	"х.":  "хутор",
	"пгт": "поселок городского типа",
}

// minOccurrences keeps only street/settlement combinations backed by more
// than this many address records, filtering out typos in the source data.
const minOccurrences = 10

// Build generates the reference corpus file from the canonical address
// database: one lower-cased composed address string per line, deduplicated
// and ordered by administrative division.
func Build(ctx context.Context, dbPath, outPath string) (int, error) {
	log := slog.With("component", "streetbook")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open address database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT soato_oblast, soato_district, soato_sovet, soato_tip,
		       soato_name, street_type, street_name
		FROM addresses
		WHERE street_type IS NOT NULL AND street_name IS NOT NULL
		GROUP BY soato_oblast, soato_district, soato_sovet, soato_tip,
		         soato_name, street_type, street_name
		HAVING COUNT(*) > ?
		ORDER BY soato_oblast, soato_district, soato_sovet, soato_name,
		         street_name`,
		minOccurrences)
	if err != nil {
		return 0, fmt.Errorf("query addresses: %w", err)
	}
	defer rows.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create street book: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	seen := make(map[string]struct{})
	count := 0

	for rows.Next() {
		var oblast, district, sovet, tip, name, streetType, streetName sql.NullString
		if err := rows.Scan(&oblast, &district, &sovet, &tip, &name, &streetType, &streetName); err != nil {
			return count, fmt.Errorf("scan address row: %w", err)
		}

		line := composeLine(oblast, district, sovet, tip, name, streetType, streetName)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return count, fmt.Errorf("write street book: %w", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("iterate addresses: %w", err)
	}
	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("flush street book: %w", err)
	}

	log.Info("street book written", "path", outPath, "entries", count)
	return count, nil
}

func composeLine(oblast, district, sovet, tip, name, streetType, streetName sql.NullString) string {
	var b strings.Builder

	if oblast.Valid && oblast.String != "" {
		b.WriteString(oblast.String + " область ")
	}
	if district.Valid && district.String != "" {
		b.WriteString(district.String + " район ")
	}
	if sovet.Valid && sovet.String != "" {
		b.WriteString(sovet.String + " сельсовет ")
	}
	settlementType := tip.String
	if full, ok := settlementTypes[settlementType]; ok {
		settlementType = full
	}
	b.WriteString(settlementType + " " + name.String + " ")
	b.WriteString(streetType.String + " " + streetName.String)

	return strings.ToLower(strings.TrimSpace(b.String()))
}
