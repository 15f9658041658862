package interfaces

import (
	"context"

	"mynaming/domain"
)

// NamingNode is the network-facing contract of one naming node: a registry plus the resolution
// engine. Implemented by service.Node and served over HTTP by handlers.NamingServer.
//
//go:generate moq -stub -out mock/naming_node.go -pkg mock . NamingNode
type NamingNode interface {
	// Register validates and stores entry. Returns bad_parameter when name, host or port is missing.
	Register(ctx context.Context, entry domain.Entry) error

	// Unregister removes the entries under name living at host:port. Returns bad_parameter when name is empty.
	Unregister(ctx context.Context, name string, host string, port int) error

	// Lookup returns the live entries bound to exactly name. No prefix fallback, no delegation.
	Lookup(ctx context.Context, name string) ([]domain.Entry, error)

	// Resolve runs exact match, prefix fallback, then delegation. hops is the number of nodes
	// the query already passed through.
	Resolve(ctx context.Context, name string, hops int) (domain.ResolveResult, error)

	// List returns the live node-local table.
	List(ctx context.Context) (map[string][]domain.Entry, error)

	// Info describes the node.
	Info(ctx context.Context) (domain.NodeInfo, error)
}
