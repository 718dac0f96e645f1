// Package streetbook maintains the reference corpus of canonical street
// address strings and corrects parsed street addresses against it.
package streetbook

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads the reference corpus: one canonical address string per line,
// UTF-8, lower-cased on load, blank lines skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open street book: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read street book: %w", err)
	}
	return entries, nil
}
