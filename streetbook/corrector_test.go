package streetbook

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBook(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "streets_book.txt")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCorrectFixesTypo(t *testing.T) {
	path := writeBook(t,
		"минская область минский район город минск улица ленина\n"+
			"минская область минский район город минск проспект независимости\n")

	c := NewCorrector(path, 0)

	got := c.Correct("минская область минский район город минск улица ленена")
	want := "Минская область минский район город минск улица ленина"
	if got != want {
		t.Fatalf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectIgnoresWordOrder(t *testing.T) {
	path := writeBook(t, "минская область город минск улица ленина\n")

	c := NewCorrector(path, 0)

	got := c.Correct("город минск минская область улица ленина")
	want := "Минская область город минск улица ленина"
	if got != want {
		t.Fatalf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectBelowThresholdKeepsInput(t *testing.T) {
	path := writeBook(t, "минская область город минск улица ленина\n")

	c := NewCorrector(path, 0)

	in := "гомельская область город речица переулок заводской"
	if got := c.Correct(in); got != in {
		t.Fatalf("distant input must pass through, got %q", got)
	}
}

func TestCorrectMissingBookKeepsInput(t *testing.T) {
	c := NewCorrector(filepath.Join(t.TempDir(), "missing.txt"), 0)

	in := "минская область город минск улица ленина"
	if got := c.Correct(in); got != in {
		t.Fatalf("missing book must degrade to identity, got %q", got)
	}
}

func TestLoadSkipsBlankLinesAndLowercases(t *testing.T) {
	path := writeBook(t, "Минская Область\n\n  \nгород минск\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0] != "минская область" || entries[1] != "город минск" {
		t.Fatalf("entries = %v", entries)
	}
}
