// Package library keeps the ordered list of saved commands for one session.
package library

import (
	"sync"

	"github.com/doeshing/cmdkit/internal/domain"
)

// Match pairs a record with its current position.
type Match struct {
	Index  int
	Record domain.SavedCommand
}

// Store is the in-memory saved-command list. Records are addressed by index.
type Store struct {
	mu      sync.RWMutex
	records []domain.SavedCommand
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: []domain.SavedCommand{}}
}

// Save validates and appends a new record. A rejected record leaves the store
// untouched.
func (s *Store) Save(name, command, note string) (domain.SavedCommand, error) {
	rec, err := domain.NewSavedCommand(name, command, note)
	if err != nil {
		return domain.SavedCommand{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return rec, nil
}

// Delete removes the record at index; later records move down by one.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return domain.IndexError(index, len(s.records))
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return nil
}

// Edit projects the record at index into editor state. The record is not
// marked in any way, so saving afterwards appends a new record.
func (s *Store) Edit(index int) (domain.EditorState, error) {
	rec, err := s.Get(index)
	if err != nil {
		return domain.EditorState{}, err
	}
	return domain.EditorState{
		Fragments: domain.SplitCommand(rec.Command),
		Name:      rec.Name,
		Note:      rec.Note,
	}, nil
}

// Get returns the record at index.
func (s *Store) Get(index int) (domain.SavedCommand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return domain.SavedCommand{}, domain.IndexError(index, len(s.records))
	}
	return s.records[index], nil
}

// List returns a snapshot of all records.
func (s *Store) List() []domain.SavedCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SavedCommand, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Search returns the records matching term, with their indexes.
func (s *Store) Search(term string) []Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []Match
	for i, rec := range s.records {
		if rec.Matches(term) {
			matches = append(matches, Match{Index: i, Record: rec})
		}
	}
	return matches
}

// Replace swaps the whole list for records.
func (s *Store) Replace(records []domain.SavedCommand) {
	next := make([]domain.SavedCommand, len(records))
	copy(next, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = next
}

// ExportCSV encodes every record, see EncodeCSV.
func (s *Store) ExportCSV() string {
	return EncodeCSV(s.List())
}

// ImportCSV replaces the store with the decoded records. On a parse error the
// store keeps its previous contents.
func (s *Store) ImportCSV(text string) error {
	records, err := DecodeCSV(text)
	if err != nil {
		return err
	}
	s.Replace(records)
	return nil
}
