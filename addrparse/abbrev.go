package addrparse

// abbreviation is one entry of the expansion table: a token pattern and the
// full word it unfolds to.
type abbreviation struct {
	pat  wordPattern
	full string
}

// abbreviations is tried in declared order; an expanded region is a full
// word and is never touched again by the later, shorter patterns.
var abbreviations = []abbreviation{
	{newWordPattern(`г\.?`), "город"},
	{newWordPattern(`обл\.?`), "область"},
	{newWordPattern(`р-н`), "район"},
	{newWordPattern(`рн`), "район"},
	{newWordPattern(`аг\.?`), "агрогородок"},
	{newWordPattern(`гп\.?`), "городской поселок"},
	{newWordPattern(`п\.?`), "поселок"},
	{newWordPattern(`рп\.?`), "рабочий поселок"},
	{newWordPattern(`кп\.?`), "курортный поселок"},
	{newWordPattern(`х\.?`), "хутор"},
	{newWordPattern(`пгт`), "поселок городского типа"},
	{newWordPattern(`мкр\.?`), "микрорайон"},
	{newWordPattern(`с/с`), "сельсовет"},
	{newWordPattern(`с\.?`), "село"},
	{newWordPattern(`ул\.?`), "улица"},
	{newWordPattern(`пр-т`), "проспект"},
	{newWordPattern(`пер\.?`), "переулок"},
}

// ExpandAbbreviations replaces every recognized administrative and street
// abbreviation in text with its full word. Unknown text passes through
// unchanged; empty input yields an empty string.
func ExpandAbbreviations(text string) string {
	if text == "" {
		return ""
	}
	for _, a := range abbreviations {
		text = a.pat.replaceAll(text, a.full)
	}
	return text
}
