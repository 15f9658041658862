package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"mynaming/domain"
	"mynaming/helpers"
	"mynaming/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/multierr"
)

const (
	// DefaultDelegationTimeout bounds a single delegation attempt.
	DefaultDelegationTimeout = 2000 * time.Millisecond
	// DefaultMaxHops is the longest delegation chain a query may travel.
	DefaultMaxHops = 8
)

// ResolverConfig is the static, per-node delegation setup.
type ResolverConfig struct {
	NodeID  string
	Targets []string // other naming nodes, asked in this order
	Timeout time.Duration
	MaxHops int
}

// Resolver answers resolve queries: exact local match, then proper prefixes longest first,
// then each delegation target in order. Each stage only runs when the previous one found nothing.
type Resolver struct {
	nodeID   string
	targets  []string
	timeout  time.Duration
	maxHops  int
	registry *Registry
	remote   interfaces.RemoteResolver
	logger   log.Logger
}

// NewResolver creates a Resolver. Zero Timeout and MaxHops fall back to the defaults.
func NewResolver(registry *Registry, remote interfaces.RemoteResolver, cfg ResolverConfig, logger log.Logger) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultDelegationTimeout
	}
	if cfg.MaxHops <= 0 {
		cfg.MaxHops = DefaultMaxHops
	}
	return &Resolver{
		nodeID:   helpers.StrPanic(cfg.NodeID, "service.resolver.go: node id is required"),
		targets:  slices.Clone(cfg.Targets),
		timeout:  cfg.Timeout,
		maxHops:  cfg.MaxHops,
		registry: helpers.NilPanic(registry, "service.resolver.go: registry is required"),
		remote:   helpers.NilPanic(remote, "service.resolver.go: remote resolver is required"),
		logger:   log.WithPrefix(logger, "component", "Resolver"),
	}
}

// Lookup answers from the exact local binding only.
func (r *Resolver) Lookup(ctx context.Context, name string) ([]domain.Entry, error) {
	if name == "" {
		return nil, NewBadParameterError("name is required", nil)
	}
	return r.registry.LookupLocal(ctx, name)
}

// Resolve runs the full algorithm. hops counts the nodes the query already went through;
// delegation is skipped once it reaches the configured maximum.
// Only local registry failures are returned as errors; an unresolved name is a NotFound result.
func (r *Resolver) Resolve(ctx context.Context, name string, hops int) (domain.ResolveResult, error) {
	if name == "" {
		return domain.ResolveResult{}, NewBadParameterError("name is required", nil)
	}

	candidates := append([]string{name}, domain.ProperPrefixes(name)...)
	for _, candidate := range candidates {
		entries, err := r.registry.LookupLocal(ctx, candidate)
		if err != nil {
			return domain.ResolveResult{}, err
		}
		if len(entries) > 0 {
			return domain.ResolveResult{
				Found:   true,
				Name:    candidate,
				Entries: entries,
				Via:     r.nodeID,
				Path:    []string{r.nodeID},
			}, nil
		}
	}

	if len(r.targets) == 0 {
		return domain.NotFound(), nil
	}
	if hops >= r.maxHops {
		level.Warn(r.logger).Log("msg", "delegation skipped, hop limit reached", "name", name, "hops", hops, "max_hops", r.maxHops)
		return domain.NotFound(), nil
	}

	var failures error
	for _, target := range r.targets {
		attempt := r.delegate(ctx, target, name, hops+1)
		if attempt.succeeded() {
			return r.relay(attempt.result), nil
		}
		failure := attempt.failure(name)
		level.Debug(r.logger).Log("msg", "delegation attempt failed, trying next target", "target", target, "name", name, "err", failure)
		failures = multierr.Append(failures, failure)
	}

	level.Info(r.logger).Log("msg", "name not resolved by any delegation target", "name", name, "targets", len(r.targets), "err", failures)
	return domain.NotFound(), nil
}

// delegate performs one bounded remote resolve. The caller's cancellation does not reach it:
// once accepted, a query runs until it succeeds, times out or runs out of targets.
func (r *Resolver) delegate(ctx context.Context, target string, name string, hops int) delegationAttempt {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	result, err := r.remote.ResolveRemote(ctx, target, name, hops)
	return delegationAttempt{target: target, result: result, err: err}
}

// relay keeps the answering node's Via and appends this node to the travelled path.
func (r *Resolver) relay(result domain.ResolveResult) domain.ResolveResult {
	path := slices.Clone(result.Path)
	if len(path) == 0 && result.Via != "" {
		path = []string{result.Via}
	}
	result.Path = append(path, r.nodeID)
	return result
}

// delegationAttempt is the outcome of asking one target.
type delegationAttempt struct {
	target string
	result domain.ResolveResult
	err    error
}

func (a delegationAttempt) succeeded() bool {
	return a.err == nil && a.result.Found && len(a.result.Entries) > 0
}

func (a delegationAttempt) failure(name string) error {
	if a.err != nil {
		return NewUpstreamUnavailableError(fmt.Sprintf("delegation target %s failed", a.target), a.err)
	}
	return NewEntityNotFoundError(fmt.Sprintf("delegation target %s has no binding for %s", a.target, name), nil)
}
