// Package kajweb parses word records of the kajweb/dict book format: one JSON
// object per line, with phonetics and translations nested under
// content.word.content.
package kajweb

import "errors"

// Keys of the fields read from a record. Phonetics and translations live
// under content.word.content.
const (
	keyHeadWord = "headWord"
	keyContent  = "content"
	keyWord     = "word"
	keyUSPhone  = "usphone"
	keyUKPhone  = "ukphone"
	keyTrans    = "trans"
	keyPOS      = "pos"
	keyTranCn   = "tranCn"
)

var (
	// ErrMalformedRecord is returned for lines that are not a JSON object.
	ErrMalformedRecord = errors.New("kajweb: malformed record")
	// ErrEmptyHeadword is returned for records without a usable headWord.
	ErrEmptyHeadword = errors.New("kajweb: empty headword")
)

// Stats holds line-level parse statistics.
type Stats struct {
	TotalLines     int // non-blank lines seen
	Records        int // records accepted
	MalformedLines int
	EmptyHeadwords int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.TotalLines += o.TotalLines
	s.Records += o.Records
	s.MalformedLines += o.MalformedLines
	s.EmptyHeadwords += o.EmptyHeadwords
}

// Skipped returns the number of lines that produced no record.
func (s Stats) Skipped() int {
	return s.MalformedLines + s.EmptyHeadwords
}
