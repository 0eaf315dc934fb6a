package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// FormatLine renders one wordlist line without the trailing newline:
//
//	headword [phonetic] pos1. meaning1 pos2. meaning2
//
// The phonetic block and the meanings are omitted when empty.
func FormatLine(headword string, e *domain.MergedEntry) string {
	var b strings.Builder
	b.WriteString(headword)

	if p := e.Phonetic(); p != "" {
		b.WriteString(" [")
		b.WriteString(p)
		b.WriteByte(']')
	}

	if meanings := e.Meanings(); len(meanings) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(meanings, " "))
	}

	return b.String()
}

// Write renders words to w, one line per headword, sorted by headword in
// code-point order. Returns the number of lines written.
func Write(w io.Writer, words map[string]*domain.MergedEntry) (int, error) {
	bw := bufio.NewWriter(w)

	written := 0
	for _, headword := range slices.Sorted(maps.Keys(words)) {
		if _, err := bw.WriteString(FormatLine(headword, words[headword]) + "\n"); err != nil {
			return written, fmt.Errorf("write %q: %w", headword, err)
		}
		written++
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush: %w", err)
	}
	return written, nil
}

// WriteFile writes the wordlist to path, creating parent directories as
// needed and truncating any existing file.
func WriteFile(path string, words map[string]*domain.MergedEntry) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}

	n, err := Write(f, words)
	if err != nil {
		f.Close()
		return n, fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close output file: %w", err)
	}
	return n, nil
}
