package service

import (
	"context"
	"slices"

	"mynaming/domain"
	"mynaming/interfaces"
)

// memoryStore is the default in-process EntryStore. It is not safe for concurrent use on its
// own: Registry holds its lock around every call.
type memoryStore struct {
	table map[string][]domain.Entry
}

// NewMemoryStore creates an empty in-memory table.
func NewMemoryStore() interfaces.EntryStore {
	return &memoryStore{table: make(map[string][]domain.Entry)}
}

func (s *memoryStore) Append(_ context.Context, entry domain.Entry) error {
	s.table[entry.Name] = append(s.table[entry.Name], entry)
	return nil
}

func (s *memoryStore) Remove(_ context.Context, name string, host string, port int) error {
	kept := slices.DeleteFunc(slices.Clone(s.table[name]), func(e domain.Entry) bool {
		return e.SameInstance(host, port)
	})
	if len(kept) == 0 {
		delete(s.table, name)
		return nil
	}
	s.table[name] = kept
	return nil
}

func (s *memoryStore) Get(_ context.Context, name string) ([]domain.Entry, error) {
	return slices.Clone(s.table[name]), nil
}

func (s *memoryStore) All(_ context.Context) (map[string][]domain.Entry, error) {
	out := make(map[string][]domain.Entry, len(s.table))
	for name, entries := range s.table {
		out[name] = slices.Clone(entries)
	}
	return out, nil
}
