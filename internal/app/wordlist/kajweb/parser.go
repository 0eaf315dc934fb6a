package kajweb

import (
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// ParseLine converts one JSON line into a NormalizedEntry.
//
// Missing or mistyped optional fields are read as empty strings. The line is
// rejected with ErrMalformedRecord if it is not a JSON object, and with
// ErrEmptyHeadword if headWord normalizes to "".
func ParseLine(line []byte) (domain.NormalizedEntry, error) {
	if !gjson.ValidBytes(line) {
		return domain.NormalizedEntry{}, ErrMalformedRecord
	}
	record := gjson.ParseBytes(line)
	if !record.IsObject() {
		return domain.NormalizedEntry{}, ErrMalformedRecord
	}

	headword := domain.NormalizeHeadword(stringAt(record, keyHeadWord))
	if headword == "" {
		return domain.NormalizedEntry{}, ErrEmptyHeadword
	}

	word := lookup(record, keyContent, keyWord, keyContent)

	return domain.NormalizedEntry{
		Headword: headword,
		Phonetic: FormatPhonetic(stringAt(word, keyUSPhone), stringAt(word, keyUKPhone)),
		Meanings: extractMeanings(word),
	}, nil
}

// extractMeanings walks the trans list of word content in order. No
// deduplication happens here.
func extractMeanings(word gjson.Result) []string {
	trans := lookup(word, keyTrans)
	if !trans.IsArray() {
		return nil
	}

	var meanings []string
	trans.ForEach(func(_, t gjson.Result) bool {
		if !t.IsObject() {
			return true
		}
		if m, ok := FormatMeaning(stringAt(t, keyPOS), stringAt(t, keyTranCn)); ok {
			meanings = append(meanings, m)
		}
		return true
	})
	return meanings
}

// stringAt returns the string under key, or "" if the key is absent or holds
// a non-string value.
func stringAt(r gjson.Result, key string) string {
	v := lookup(r, key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// lookup descends through nested objects by key. When an object repeats a
// key, the last occurrence wins. A missing key or a non-object level yields
// an empty Result.
func lookup(r gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if !r.IsObject() {
			return gjson.Result{}
		}
		var found gjson.Result
		r.ForEach(func(k, v gjson.Result) bool {
			if k.Str == key {
				found = v
			}
			return true
		})
		r = found
	}
	return r
}
