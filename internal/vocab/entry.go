package vocab

import (
	"errors"
	"fmt"
	"maps"

	"codeberg.org/snonux/flashy/internal"
)

var (
	// ErrStorage marks failures reading, parsing or writing a vocabulary file
	ErrStorage = errors.New("vocabulary storage error")

	// ErrNotFound marks removal of an entry the store does not hold
	ErrNotFound = errors.New("entry not in vocabulary")
)

// Entry maps a column name (language) to the word in that language
type Entry map[string]string

// Equal reports whether both entries carry the same fields and values
func (e Entry) Equal(other Entry) bool {
	return maps.Equal(e, other)
}

// Schema describes the two columns the trainer relies on
type Schema struct {
	Pivot  string // always shown on the answer side
	Target string // shown on the question side
}

// NewSchema returns the schema for a configured language
func NewSchema(language string) Schema {
	return Schema{
		Pivot:  internal.PivotLanguage,
		Target: internal.LanguageColumn(language),
	}
}

// Validate checks that a header row carries both schema columns and
// names every column once
func (s Schema) Validate(header []string) error {
	if s.Target == "" {
		return fmt.Errorf("%w: no target language configured", ErrStorage)
	}
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return fmt.Errorf("%w: duplicate column %q in header %v", ErrStorage, col, header)
		}
		seen[col] = true
	}
	for _, want := range []string{s.Pivot, s.Target} {
		found := false
		for _, col := range header {
			if col == want {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: missing column %q in header %v", ErrStorage, want, header)
		}
	}
	return nil
}

// Remove returns a copy of entries without the first entry equal to target
func Remove(entries []Entry, target Entry) ([]Entry, error) {
	for i, e := range entries {
		if e.Equal(target) {
			out := make([]Entry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, target)
}
