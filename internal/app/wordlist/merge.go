// Package wordlist folds kajweb dictionary books into a single sorted,
// line-per-word text wordlist.
package wordlist

import (
	"bytes"
	"errors"

	"github.com/heartmarshall/myenglish-wordlist/internal/app/wordlist/kajweb"
	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// Merger accumulates records from many JSON-lines blobs into one mapping from
// headword to MergedEntry. It is not safe for concurrent use.
type Merger struct {
	words map[string]*domain.MergedEntry
	stats kajweb.Stats
}

// NewMerger creates an empty Merger.
func NewMerger() *Merger {
	return &Merger{words: make(map[string]*domain.MergedEntry)}
}

// AddBlob parses every non-blank line of blob and merges the resulting
// records. Malformed lines and records without a headword are skipped and
// only counted. The returned Stats cover this blob alone.
func (m *Merger) AddBlob(blob []byte) kajweb.Stats {
	var stats kajweb.Stats

	for line := range bytes.Lines(stripBOM(blob)) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		stats.TotalLines++

		entry, err := kajweb.ParseLine(line)
		switch {
		case errors.Is(err, kajweb.ErrMalformedRecord):
			stats.MalformedLines++
			continue
		case err != nil:
			stats.EmptyHeadwords++
			continue
		}

		m.Add(entry)
		stats.Records++
	}

	m.stats.Add(stats)
	return stats
}

// Add merges a single normalized record. The first record of a headword
// creates its entry; later ones may fill an empty phonetic and append
// meanings not seen before.
func (m *Merger) Add(e domain.NormalizedEntry) {
	if existing, ok := m.words[e.Headword]; ok {
		existing.Merge(e)
		return
	}
	m.words[e.Headword] = domain.NewMergedEntry(e)
}

// Words returns the merged mapping. The map is owned by the Merger and must
// be treated as read-only.
func (m *Merger) Words() map[string]*domain.MergedEntry {
	return m.words
}

// Len returns the number of unique headwords.
func (m *Merger) Len() int {
	return len(m.words)
}

// Stats returns statistics accumulated over every AddBlob call.
func (m *Merger) Stats() kajweb.Stats {
	return m.stats
}

// utf8BOM is tolerated at the start of a blob.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripBOM(blob []byte) []byte {
	return bytes.TrimPrefix(blob, utf8BOM)
}
