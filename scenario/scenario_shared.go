package scenario

import (
	"context"
	"fmt"
	"time"

	"mynaming/adapters/invokehttp"
	"mynaming/adapters/naminghttp"
	"mynaming/interfaces"
)

const scenarioNamePrefix = "org.scenario"

// NewNamingClient creates a naming client for cfg.NamingAddr.
func NewNamingClient(cfg *Config) interfaces.NamingClient {
	return naminghttp.NamingHTTP(cfg.NamingAddr, cfg.httpClient())
}

// ResolveProxy resolves name and binds a proxy to the first entry.
func ResolveProxy(ctx context.Context, cfg *Config, name string) (*invokehttp.Proxy, error) {
	entries, err := NewNamingClient(cfg).Resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", name, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("resolve %s: no entries", name)
	}
	return invokehttp.NewProxy(entries[0], cfg.httpClient()), nil
}

// uniqueName returns a fresh name under the scenario namespace so reruns do not collide.
func uniqueName(suffix string) string {
	return fmt.Sprintf("%s.%s%d", scenarioNamePrefix, suffix, time.Now().UnixNano())
}
