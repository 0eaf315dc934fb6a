package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// ArchiveReader enumerates dictionary archives and the JSON-lines members
// inside them. Enumeration order is the merge order.
type ArchiveReader interface {
	// ListArchives returns archive names in processing order. A missing
	// source location is reported as domain.ErrNotFound.
	ListArchives(ctx context.Context) ([]string, error)

	// ReadMembers calls fn with the decoded content of every matching member
	// of archive, in archive order. An error from fn stops the iteration.
	ReadMembers(ctx context.Context, archive string, fn func(member string, blob []byte) error) error
}

// ZipDir reads zip archives from a single directory.
type ZipDir struct {
	Dir        string
	ArchiveExt string // e.g. ".zip"
	MemberExt  string // e.g. ".json"
}

// Compile-time interface assertion.
var _ ArchiveReader = (*ZipDir)(nil)

// ListArchives returns the regular files in Dir whose names end in
// ArchiveExt, sorted by file name.
func (z *ZipDir) ListArchives(_ context.Context) ([]string, error) {
	dirEntries, err := os.ReadDir(z.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("archive dir %s: %w", z.Dir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read archive dir %s: %w", z.Dir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), z.ArchiveExt) {
			continue
		}
		names = append(names, de.Name())
	}
	return names, nil
}

// ReadMembers opens Dir/archive and passes every member whose name ends in
// MemberExt to fn.
func (z *ZipDir) ReadMembers(ctx context.Context, archive string, fn func(member string, blob []byte) error) error {
	r, err := zip.OpenReader(filepath.Join(z.Dir, archive))
	if err != nil {
		return fmt.Errorf("open archive %s: %w", archive, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, z.MemberExt) {
			continue
		}

		blob, err := readMember(f)
		if err != nil {
			return fmt.Errorf("archive %s: member %s: %w", archive, f.Name, err)
		}
		if err := fn(f.Name, blob); err != nil {
			return err
		}
	}
	return nil
}

// readMember returns the member content as valid UTF-8. A UTF-16 byte order
// mark switches decoding to UTF-16; a UTF-8 one is dropped. Invalid UTF-8
// sequences are replaced with U+FFFD.
func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(rc, decoder))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return data, nil
}
