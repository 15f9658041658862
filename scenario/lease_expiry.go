package scenario

import (
	"context"
	"fmt"
	"time"

	"mynaming/domain"
	"mynaming/service"
)

const scenarioLeaseExpiry = "lease_expiry"

func init() {
	Register(scenarioLeaseExpiry, runLeaseExpiry)
}

// runLeaseExpiry registers with a one second lease and waits for the entry to disappear.
func runLeaseExpiry(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewNamingClient(cfg)
	name := uniqueName("lease")
	entry := domain.Entry{Name: name, Host: "192.0.2.20", Port: 7001, LeaseSeconds: service.Ptr(1)}
	if err := client.Register(ctx, entry); err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}

	entries, err := client.Lookup(ctx, name)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", name, err)
	}
	if len(entries) != 1 {
		return fmt.Errorf("lookup %s right after register: expected 1 entry, got %d", name, len(entries))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(1200 * time.Millisecond):
	}

	entries, err = client.Lookup(ctx, name)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", name, err)
	}
	if len(entries) != 0 {
		return fmt.Errorf("lookup %s after lease: expected no entries, got %d", name, len(entries))
	}
	return nil
}
