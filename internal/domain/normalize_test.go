package domain

import (
	"strings"
	"testing"
)

func TestFoldDiacritics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "plain ascii unchanged", input: "hello world", want: "hello world"},
		{name: "cafe", input: "café", want: "cafe"},
		{name: "all e variants", input: "éêèë", want: "eeee"},
		{name: "a and c", input: "àâç", want: "aac"},
		{name: "i variants", input: "îï", want: "ii"},
		{name: "o", input: "ô", want: "o"},
		{name: "u variants", input: "ùûü", want: "uuu"},
		{name: "y", input: "ÿ", want: "y"},
		{name: "uppercase untouched", input: "CAFÉ", want: "CAFÉ"},
		{name: "unmapped accents untouched", input: "ñåø", want: "ñåø"},
		{name: "cjk untouched", input: "咖啡馆", want: "咖啡馆"},
		{name: "ipa untouched", input: "kæˈfeɪ", want: "kæˈfeɪ"},
		{name: "mixed sentence", input: "naïve façade à la crème", want: "naive facade a la creme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FoldDiacritics(tt.input); got != tt.want {
				t.Errorf("FoldDiacritics(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldDiacritics_RemovesEveryTableLetter(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for _, p := range FoldTable() {
		b.WriteString("x" + p[0] + "y")
	}
	got := FoldDiacritics(b.String())

	for _, p := range FoldTable() {
		if strings.Contains(got, p[0]) {
			t.Errorf("folded output %q still contains %q", got, p[0])
		}
	}
	// Unmapped characters keep their relative position.
	if want := strings.Repeat("x?y", len(FoldTable())); len(got) != len(want) {
		t.Errorf("folded length = %d, want %d", len(got), len(want))
	}
	for i, p := range FoldTable() {
		seg := got[i*3 : i*3+3]
		if seg != "x"+p[1]+"y" {
			t.Errorf("segment %d = %q, want %q", i, seg, "x"+p[1]+"y")
		}
	}
}

func TestFoldDiacritics_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "café", "Ÿes ÿes", "crème brûlée", "über-naïve", "ÉCOLE école"}
	for _, in := range inputs {
		once := FoldDiacritics(in)
		if twice := FoldDiacritics(once); twice != once {
			t.Errorf("FoldDiacritics not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestFoldTable_Shape(t *testing.T) {
	t.Parallel()

	table := FoldTable()
	if len(table) != 14 {
		t.Fatalf("fold table has %d pairs, want 14", len(table))
	}
	if table[0] != [2]string{"é", "e"} || table[13] != [2]string{"ÿ", "y"} {
		t.Errorf("unexpected table order: first=%v last=%v", table[0], table[13])
	}

	// Mutating the copy must not affect folding.
	table[0][1] = "X"
	if got := FoldDiacritics("é"); got != "e" {
		t.Errorf("FoldTable returned shared state: FoldDiacritics(é) = %q", got)
	}
}

func TestNormalizeHeadword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Hello World", want: "hello world"},
		{name: "inner spaces preserved", input: "hello   world", want: "hello   world"},
		{name: "diacritics folded", input: "Café", want: "cafe"},
		{name: "uppercase accent lowered then folded", input: "ÉCOLE", want: "ecole"},
		{name: "hyphens preserved", input: "well-known", want: "well-known"},
		{name: "apostrophes preserved", input: "don't", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and newlines", input: "\t hello \n", want: "hello"},
		{name: "single word", input: "ABANDON", want: "abandon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeHeadword(tt.input); got != tt.want {
				t.Errorf("NormalizeHeadword(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
