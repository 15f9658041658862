package scenario

import (
	"context"
	"fmt"
	"time"

	"mynaming/domain"
)

const scenarioHierarchicalResolve = "hierarchical_resolve"

func init() {
	Register(scenarioHierarchicalResolve, runHierarchicalResolve)
}

// runHierarchicalResolve binds a parent name and resolves a deeper child through prefix fallback.
func runHierarchicalResolve(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewNamingClient(cfg)
	parent := uniqueName("tree")
	entry := domain.Entry{Name: parent, Host: "192.0.2.10", Port: 7000, Kind: domain.KindService}
	if err := client.Register(ctx, entry); err != nil {
		return fmt.Errorf("register %s: %w", parent, err)
	}
	defer func() {
		_ = client.Unregister(context.Background(), entry.Name, entry.Host, entry.Port)
	}()

	child := parent + ".shard.3"
	exact, err := client.Lookup(ctx, child)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", child, err)
	}
	if len(exact) != 0 {
		return fmt.Errorf("lookup %s: expected no exact binding, got %d", child, len(exact))
	}

	result, err := client.ResolveResult(ctx, child, 0)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", child, err)
	}
	if !result.Found || result.Name != parent {
		return fmt.Errorf("resolve %s: expected binding of %s, got found=%v name=%q", child, parent, result.Found, result.Name)
	}
	if len(result.Entries) != 1 || result.Entries[0].Address() != entry.Address() {
		return fmt.Errorf("resolve %s: unexpected entries %v", child, result.Entries)
	}
	return nil
}
