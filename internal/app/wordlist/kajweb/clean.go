package kajweb

import (
	"strings"

	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// FormatMeaning builds one meaning string from a part-of-speech tag and a
// translation. Both are trimmed and the translation is diacritic-folded.
// A non-empty tag gets a trailing period if it has none:
//
//	("n", "chat")  → "n. chat"
//	("", "chat")   → "chat"
//	("n", "")      → not emitted
//
// ok is false when nothing should be emitted.
func FormatMeaning(pos, translation string) (meaning string, ok bool) {
	pos = strings.TrimSpace(pos)
	translation = domain.FoldDiacritics(strings.TrimSpace(translation))

	if translation == "" {
		return "", false
	}
	if pos == "" {
		return translation, true
	}
	if !strings.HasSuffix(pos, ".") {
		pos += "."
	}
	return pos + " " + translation, true
}

// FormatPhonetic picks the US transcription when present, the UK one
// otherwise, and returns it folded and trimmed.
func FormatPhonetic(us, uk string) string {
	phonetic := us
	if phonetic == "" {
		phonetic = uk
	}
	return strings.TrimSpace(domain.FoldDiacritics(phonetic))
}
