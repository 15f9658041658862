package interfaces

import (
	"context"

	"mynaming/domain"
)

// NamingClient is the caller-side view of one naming node.
// Every method fails with naming_unavailable when the node cannot be reached or answers non-2xx.
//
// Implemented by adapters/naminghttp. Used by the example service to announce itself and by
// callers to find a service before building an invokehttp proxy.
//
//go:generate moq -stub -out mock/naming_client.go -pkg mock . NamingClient
type NamingClient interface {
	Register(ctx context.Context, entry domain.Entry) error
	Unregister(ctx context.Context, name string, host string, port int) error
	Lookup(ctx context.Context, name string) ([]domain.Entry, error)
	Resolve(ctx context.Context, name string) ([]domain.Entry, error)
	ResolveResult(ctx context.Context, name string, hops int) (domain.ResolveResult, error)
}
