// Package store loads the ordered message list from a CSV file and enforces
// the label invariant selection depends on: labels unique and contiguous
// from 1.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/driplab/driptweet/internal/domain"
)

// Store holds the loaded message entries. Entries are immutable; Reload
// swaps the whole slice under a lock so the file watcher can refresh a
// running daemon without disturbing an in-flight tick.
type Store struct {
	path string

	mu      sync.RWMutex
	entries []domain.Entry
}

// Load reads and validates the message store at path.
// A violated label invariant is fatal: the program must refuse to run
// rather than guess a selection.
func Load(path string) (*Store, error) {
	entries, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, entries: entries}, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string { return s.path }

// Entries returns the current entries, ordered by label ascending.
// The returned slice must not be modified.
func (s *Store) Entries() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Reload re-reads the store file and swaps in the new entries. On error the
// previous entries are kept, so a bad edit never leaves the daemon without
// a valid store.
func (s *Store) Reload() error {
	entries, err := readFile(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

func readFile(path string) ([]domain.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	entries, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// parse reads (label, body) records and validates the contiguity invariant.
// The first record may be a header; it is skipped when its label column is
// not numeric.
func parse(r io.Reader) ([]domain.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	var entries []domain.Entry
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreIntegrity, err)
		}
		line, _ := cr.FieldPos(0)

		label, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			if first {
				first = false
				continue // header row
			}
			return nil, fmt.Errorf("%w: non-numeric label %q at line %d", domain.ErrStoreIntegrity, rec[0], line)
		}
		first = false

		if want := len(entries) + 1; label != want {
			if label <= len(entries) {
				return nil, fmt.Errorf("%w: duplicate or out-of-order label %d at line %d", domain.ErrStoreIntegrity, label, line)
			}
			return nil, fmt.Errorf("%w: gap in labels, expected %d but found %d at line %d", domain.ErrStoreIntegrity, want, label, line)
		}

		entries = append(entries, domain.Entry{Label: label, Body: normalize(rec[1])})
	}

	if len(entries) == 0 {
		return nil, domain.ErrEmptyStore
	}
	return entries, nil
}
