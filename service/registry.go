package service

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"sync"

	"mynaming/domain"
	"mynaming/helpers"
	"mynaming/interfaces"
)

// Registry is the node-local name -> entries table with lazy lease expiry.
// Mutations take the write lock; reads copy a snapshot under the read lock and filter it unlocked.
type Registry struct {
	mu    sync.RWMutex
	store interfaces.EntryStore
	clock interfaces.TimeProvider
}

// NewRegistry creates a Registry over store. Panics on nil store or clock.
func NewRegistry(store interfaces.EntryStore, clock interfaces.TimeProvider) *Registry {
	return &Registry{
		store: helpers.NilPanic(store, "service.registry.go: store is required"),
		clock: helpers.NilPanic(clock, "service.registry.go: clock is required"),
	}
}

// Register validates entry, stamps RegisteredAt and appends it under entry.Name.
// Registering the same host:port twice keeps both entries; renewals go through Unregister first.
func (r *Registry) Register(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	entry, err := normalizeEntry(entry)
	if err != nil {
		return domain.Entry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.RegisteredAt = r.clock.Now()
	if err := r.store.Append(ctx, entry); err != nil {
		return domain.Entry{}, NewInternalServerError("registry append failed", fmt.Errorf("can't append entry %s at %s, err: %w", entry.Name, entry.Address(), err))
	}
	return entry, nil
}

// Unregister removes every entry under name living at host:port. Nothing matching is not an error.
func (r *Registry) Unregister(ctx context.Context, name string, host string, port int) error {
	if name == "" {
		return NewBadParameterError("name is required", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(ctx, name, host, port); err != nil {
		return NewInternalServerError("registry remove failed", fmt.Errorf("can't remove %s at %s:%d, err: %w", name, host, port, err))
	}
	return nil
}

// LookupLocal returns the live entries bound to exactly name.
func (r *Registry) LookupLocal(ctx context.Context, name string) ([]domain.Entry, error) {
	r.mu.RLock()
	entries, err := r.store.Get(ctx, name)
	r.mu.RUnlock()
	if err != nil {
		return nil, NewInternalServerError("registry read failed", fmt.Errorf("can't read %s, err: %w", name, err))
	}
	return domain.FilterVisible(entries, r.clock.Now()), nil
}

// ListAll returns the live table. Names whose entries all expired are left out.
func (r *Registry) ListAll(ctx context.Context) (map[string][]domain.Entry, error) {
	r.mu.RLock()
	table, err := r.store.All(ctx)
	r.mu.RUnlock()
	if err != nil {
		return nil, NewInternalServerError("registry read failed", fmt.Errorf("can't list table, err: %w", err))
	}

	now := r.clock.Now()
	out := make(map[string][]domain.Entry, len(table))
	for name, entries := range table {
		if live := domain.FilterVisible(entries, now); len(live) > 0 {
			out[name] = live
		}
	}
	return out, nil
}

// Names returns the sorted names with at least one live entry.
func (r *Registry) Names(ctx context.Context) ([]string, error) {
	table, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// normalizeEntry checks the mandatory fields and fills defaults. A zero lease means no lease.
func normalizeEntry(e domain.Entry) (domain.Entry, error) {
	if e.Name == "" {
		return e, NewBadParameterError("name is required", nil)
	}
	if e.Host == "" {
		return e, NewBadParameterError("host is required", nil)
	}
	if e.Port == 0 {
		return e, NewBadParameterError("port is required", nil)
	}
	if e.Port < 0 || e.Port > 65535 {
		return e, NewBadParameterError("port must be 1-65535, got "+strconv.Itoa(e.Port), nil)
	}
	if e.Kind == "" {
		e.Kind = domain.KindRPC
	}
	if !e.Kind.Valid() {
		return e, NewBadParameterError(fmt.Sprintf("unknown kind %q", e.Kind), nil)
	}
	if e.LeaseSeconds != nil && *e.LeaseSeconds < 0 {
		return e, NewBadParameterError("leaseSeconds must not be negative", nil)
	}
	if e.LeaseSeconds != nil && *e.LeaseSeconds == 0 {
		e.LeaseSeconds = nil
	}
	return e, nil
}

// SplitResource splits a "host:port" resource descriptor. Used by the HTTP layer when a
// registration carries resource instead of host and port.
func SplitResource(resource string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(resource)
	if err != nil {
		return "", 0, NewBadParameterError("resource must be host:port", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, NewBadParameterError("resource port must be a number", err)
	}
	return host, port, nil
}
