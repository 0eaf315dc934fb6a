package domain

// NormalizedEntry is one dictionary record after field extraction and folding.
// Headword is never empty for an entry produced by a parser.
type NormalizedEntry struct {
	Headword string
	Phonetic string
	Meanings []string
}

// MergedEntry accumulates every record seen for a single headword.
//
// The phonetic transcription is set once, by the first record that carries
// one. Meanings keep first-seen order and never contain exact duplicates.
type MergedEntry struct {
	phonetic string
	meanings []string
	seen     map[string]struct{}
}

// NewMergedEntry creates a MergedEntry from the first record of a headword.
// The meanings slice is copied, not aliased.
func NewMergedEntry(e NormalizedEntry) *MergedEntry {
	m := &MergedEntry{
		phonetic: e.Phonetic,
		meanings: make([]string, 0, len(e.Meanings)),
		seen:     make(map[string]struct{}, len(e.Meanings)),
	}
	for _, meaning := range e.Meanings {
		m.AddMeaning(meaning)
	}
	return m
}

// Merge folds a later record for the same headword into m.
func (m *MergedEntry) Merge(e NormalizedEntry) {
	m.SetPhonetic(e.Phonetic)
	for _, meaning := range e.Meanings {
		m.AddMeaning(meaning)
	}
}

// SetPhonetic assigns p if no phonetic has been set yet and p is non-empty.
// Returns true if the value was assigned.
func (m *MergedEntry) SetPhonetic(p string) bool {
	if m.phonetic != "" || p == "" {
		return false
	}
	m.phonetic = p
	return true
}

// AddMeaning appends meaning unless an identical string is already present.
// Returns true if the meaning was appended.
func (m *MergedEntry) AddMeaning(meaning string) bool {
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	if _, dup := m.seen[meaning]; dup {
		return false
	}
	m.seen[meaning] = struct{}{}
	m.meanings = append(m.meanings, meaning)
	return true
}

// HasMeaning reports whether meaning has already been accumulated.
func (m *MergedEntry) HasMeaning(meaning string) bool {
	_, ok := m.seen[meaning]
	return ok
}

// Phonetic returns the selected phonetic transcription, or "".
func (m *MergedEntry) Phonetic() string {
	return m.phonetic
}

// Meanings returns a copy of the accumulated meanings in insertion order.
func (m *MergedEntry) Meanings() []string {
	out := make([]string, len(m.meanings))
	copy(out, m.meanings)
	return out
}

// MeaningCount returns the number of distinct meanings.
func (m *MergedEntry) MeaningCount() int {
	return len(m.meanings)
}
