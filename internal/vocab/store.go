package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"codeberg.org/snonux/flashy/internal"
)

const (
	remainingSuffix = "_words_to_learn.csv"
	fullSuffix      = "_words.csv"
)

// RemainingPath returns the remaining-words file for a language
func RemainingPath(dir, language string) string {
	return filepath.Join(dir, internal.LanguageKey(language)+remainingSuffix)
}

// FullPath returns the full word list file for a language
func FullPath(dir, language string) string {
	return filepath.Join(dir, internal.LanguageKey(language)+fullSuffix)
}

// Store holds the words still to learn for one language
type Store struct {
	fs       afero.Fs
	dir      string
	language string
	schema   Schema
	columns  []string
	entries  []Entry
	source   string
}

// Load reads the remaining-words file for language, falling back to the
// full word list when no progress has been saved yet
func Load(fs afero.Fs, dir, language string) (*Store, error) {
	schema := NewSchema(language)

	source := RemainingPath(dir, language)
	exists, err := afero.Exists(fs, source)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat %s: %v", ErrStorage, source, err)
	}
	if !exists {
		source = FullPath(dir, language)
	}

	file, err := fs.Open(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no word list for %q in %s", ErrStorage, language, dir)
		}
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrStorage, source, err)
	}
	defer file.Close()

	columns, entries, err := readEntries(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorage, source, err)
	}
	if err := schema.Validate(columns); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	return &Store{
		fs:       fs,
		dir:      dir,
		language: language,
		schema:   schema,
		columns:  columns,
		entries:  entries,
		source:   source,
	}, nil
}

func readEntries(r io.Reader) ([]string, []Entry, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, nil, err
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	entries := make([]Entry, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		entry := make(Entry, len(header))
		for i, col := range header {
			entry[col] = record[i]
		}
		entries = append(entries, entry)
	}

	return header, entries, nil
}

// Len returns the number of words left
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index i
func (s *Store) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of the entries in file order
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Columns returns the header columns in file order
func (s *Store) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Schema returns the pivot and target columns
func (s *Store) Schema() Schema {
	return s.schema
}

// Source returns the file the store was loaded from
func (s *Store) Source() string {
	return s.source
}

// RemainingPath returns the file Persist writes to
func (s *Store) RemainingPath() string {
	return RemainingPath(s.dir, s.language)
}

// Remove drops the first entry equal to target from memory only
func (s *Store) Remove(target Entry) error {
	entries, err := Remove(s.entries, target)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// Forget removes target and persists the remainder. When persisting fails
// the removal is rolled back so memory keeps matching the file.
func (s *Store) Forget(target Entry) error {
	previous := s.entries
	if err := s.Remove(target); err != nil {
		return err
	}
	if err := s.Persist(); err != nil {
		s.entries = previous
		return err
	}
	return nil
}

// Persist rewrites the remaining-words file with the current entries.
// The data is written to a temp file first and renamed into place.
func (s *Store) Persist() error {
	target := s.RemainingPath()

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", ErrStorage, s.dir, err)
	}

	tmp, err := afero.TempFile(s.fs, s.dir, "."+filepath.Base(target)+"-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrStorage, err)
	}
	tmpName := tmp.Name()

	if err := s.write(tmp); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: failed to write %s: %v", ErrStorage, target, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: failed to close %s: %v", ErrStorage, tmpName, err)
	}

	if err := s.fs.Rename(tmpName, target); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %v", ErrStorage, target, err)
	}

	return nil
}

func (s *Store) write(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(s.columns); err != nil {
		return err
	}

	record := make([]string, len(s.columns))
	for _, entry := range s.entries {
		for i, col := range s.columns {
			record[i] = entry[col]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
