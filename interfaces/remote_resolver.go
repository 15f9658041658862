package interfaces

import (
	"context"

	"mynaming/domain"
)

// RemoteResolver asks another naming node to resolve a name. It is the delegation capability
// of service.Resolver; implemented over HTTP by adapters/naminghttp.
//
// ResolveRemote returns the target's full answer. hops is forwarded so the target can stop
// delegating once the chain gets too long. Any returned error means "try the next target".
//
//go:generate moq -stub -out mock/remote_resolver.go -pkg mock . RemoteResolver
type RemoteResolver interface {
	ResolveRemote(ctx context.Context, target string, name string, hops int) (domain.ResolveResult, error)
}
