package interfaces

import (
	"context"

	"mynaming/domain"
)

// EntryStore holds the node-local name -> entries table.
// Implementations do no locking and no lease filtering; service.Registry serializes access
// and filters expired entries on read.
//
//go:generate moq -stub -out mock/entry_store.go -pkg mock . EntryStore
type EntryStore interface {
	// Append adds entry to the end of the list bound to entry.Name.
	Append(ctx context.Context, entry domain.Entry) error

	// Remove drops every entry under name living at host:port and drops the name once its list is empty.
	// Removing something that is not there is not an error.
	Remove(ctx context.Context, name string, host string, port int) error

	// Get returns a copy of the entries bound to exactly name, in registration order; empty when none.
	Get(ctx context.Context, name string) ([]domain.Entry, error)

	// All returns a copy of the whole table.
	All(ctx context.Context) (map[string][]domain.Entry, error)
}
