package domain

import (
	"strings"
)

// foldPair maps one accented letter to its plain ASCII replacement.
type foldPair struct {
	from string
	to   string
}

// foldTable is applied in order. Only lowercase forms are listed.
var foldTable = []foldPair{
	{"é", "e"}, {"ê", "e"}, {"è", "e"}, {"ë", "e"},
	{"à", "a"}, {"â", "a"}, {"ç", "c"},
	{"î", "i"}, {"ï", "i"},
	{"ô", "o"},
	{"ù", "u"}, {"û", "u"}, {"ü", "u"},
	{"ÿ", "y"},
}

// FoldTable returns a copy of the diacritic folding table as (from, to) pairs
// in the order they are applied.
func FoldTable() [][2]string {
	out := make([][2]string, len(foldTable))
	for i, p := range foldTable {
		out[i] = [2]string{p.from, p.to}
	}
	return out
}

// FoldDiacritics replaces the accented Latin letters of foldTable with their
// unaccented counterparts. Case is not changed and every other character
// passes through untouched.
func FoldDiacritics(text string) string {
	for _, p := range foldTable {
		if strings.Contains(text, p.from) {
			text = strings.ReplaceAll(text, p.from, p.to)
		}
	}
	return text
}

// NormalizeHeadword prepares a headword for use as a wordlist key:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - folds diacritics
//
// Inner whitespace is preserved. An empty result means the headword is unusable.
func NormalizeHeadword(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return FoldDiacritics(strings.ToLower(text))
}
