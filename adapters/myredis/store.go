package myredis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"mynaming/domain"
	"mynaming/interfaces"
	"mynaming/service"

	"github.com/go-redis/redis/v8"
)

// storedEntry is the JSON form of one list element.
type storedEntry struct {
	Name         string         `json:"name"`
	Host         string         `json:"host"`
	Port         int            `json:"port"`
	Kind         string         `json:"kind"`
	Iface        []string       `json:"iface,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
	LeaseSeconds *int           `json:"leaseSeconds,omitempty"`
	RegisteredAt time.Time      `json:"registeredAt"`
}

func fromEntry(e domain.Entry) storedEntry {
	return storedEntry{
		Name:         e.Name,
		Host:         e.Host,
		Port:         e.Port,
		Kind:         string(e.Kind),
		Iface:        e.Iface,
		Meta:         e.Meta,
		LeaseSeconds: e.LeaseSeconds,
		RegisteredAt: e.RegisteredAt,
	}
}

func (s storedEntry) toEntry() domain.Entry {
	return domain.Entry{
		Name:         s.Name,
		Host:         s.Host,
		Port:         s.Port,
		Kind:         domain.Kind(s.Kind),
		Iface:        s.Iface,
		Meta:         s.Meta,
		LeaseSeconds: s.LeaseSeconds,
		RegisteredAt: s.RegisteredAt,
	}
}

// entryStore keeps every name as a Redis list "<namespace>:<name>" of JSON entries in registration order.
type entryStore struct {
	client redis.UniversalClient
	prefix string
}

// NewEntryStore creates a Redis implementation of interfaces.EntryStore namespaced by nodeID.
// Whatever a previous run of the node left under the namespace is deleted, so the table always
// starts empty.
func NewEntryStore(ctx context.Context, client redis.UniversalClient, nodeID string) (interfaces.EntryStore, error) {
	s := &entryStore{client: client, prefix: namespace(nodeID)}
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) > 0 {
		if err := client.Del(ctx, keys...).Err(); err != nil {
			return nil, service.NewInternalServerError("Redis delete keys error", fmt.Errorf("can't clear namespace %s, err: %w", s.prefix, err))
		}
	}
	return s, nil
}

func (s *entryStore) Append(ctx context.Context, entry domain.Entry) error {
	bytes, err := json.Marshal(fromEntry(entry))
	if err != nil {
		return service.NewInternalServerError("Redis marshal entry error", fmt.Errorf("can't marshal entry %s, err: %w", entry.Name, err))
	}
	if err := s.client.RPush(ctx, s.generateKey(entry.Name), bytes).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't append entry to redis (name='%s'), err: %w", entry.Name, err))
	}
	return nil
}

// Remove rewrites the list without the entries at host:port. Removing the last entry deletes the key.
func (s *entryStore) Remove(ctx context.Context, name string, host string, port int) error {
	entries, err := s.Get(ctx, name)
	if err != nil {
		return err
	}

	kept := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if e.SameInstance(host, port) {
			continue
		}
		bytes, err := json.Marshal(fromEntry(e))
		if err != nil {
			return service.NewInternalServerError("Redis marshal entry error", err)
		}
		kept = append(kept, bytes)
	}
	if len(kept) == len(entries) {
		return nil
	}

	key := s.generateKey(name)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(kept) > 0 {
			pipe.RPush(ctx, key, kept...)
		}
		return nil
	})
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't rewrite entries of '%s', err: %w", name, err))
	}
	return nil
}

func (s *entryStore) Get(ctx context.Context, name string) ([]domain.Entry, error) {
	raw, err := s.client.LRange(ctx, s.generateKey(name), 0, -1).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read entries of '%s', err: %w", name, err))
	}

	entries := make([]domain.Entry, 0, len(raw))
	for _, item := range raw {
		var stored storedEntry
		if err := json.Unmarshal([]byte(item), &stored); err != nil {
			return nil, service.NewInternalServerError("Redis unmarshal entry error", fmt.Errorf("can't unmarshal entry of '%s', err: %w", name, err))
		}
		entries = append(entries, stored.toEntry())
	}
	return entries, nil
}

// All lists the keys under the namespace then reads each list.
func (s *entryStore) All(ctx context.Context) (map[string][]domain.Entry, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}

	prefixWithColon := s.prefix + ":"
	table := make(map[string][]domain.Entry, len(keys))
	for _, k := range keys {
		name := strings.TrimPrefix(k, prefixWithColon)
		entries, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			table[name] = entries
		}
	}
	return table, nil
}

func (s *entryStore) keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}
	return keys, nil
}

// namespace query-escapes the node id: the result holds no ':' and no KEYS glob characters, so
// "<namespace>:*" never matches the keys of another node sharing the Redis.
func namespace(nodeID string) string {
	return "mynaming:" + url.QueryEscape(nodeID)
}

func (s *entryStore) generateKey(name string) string {
	return s.prefix + ":" + name
}
