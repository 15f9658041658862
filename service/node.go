package service

import (
	"context"
	"slices"
	"time"

	"mynaming/domain"
	"mynaming/helpers"
	"mynaming/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NodeConfig is the immutable identity of a naming node.
type NodeConfig struct {
	ID                string
	DelegationTargets []string
	DelegationTimeout time.Duration
	MaxHops           int
}

// Node is one naming node: its own Registry plus a Resolver over it.
// It implements interfaces.NamingNode.
type Node struct {
	id       string
	targets  []string
	registry *Registry
	resolver *Resolver
	logger   log.Logger
}

// NewNode builds a node owning a fresh Registry over store.
func NewNode(cfg NodeConfig, store interfaces.EntryStore, remote interfaces.RemoteResolver, clock interfaces.TimeProvider, logger log.Logger) *Node {
	helpers.StrPanic(cfg.ID, "service.node.go: node id is required")
	registry := NewRegistry(store, clock)
	resolver := NewResolver(registry, remote, ResolverConfig{
		NodeID:  cfg.ID,
		Targets: cfg.DelegationTargets,
		Timeout: cfg.DelegationTimeout,
		MaxHops: cfg.MaxHops,
	}, logger)

	return &Node{
		id:       cfg.ID,
		targets:  slices.Clone(cfg.DelegationTargets),
		registry: registry,
		resolver: resolver,
		logger:   log.WithPrefix(logger, "component", "Node", "node_id", cfg.ID),
	}
}

// ID returns the node identifier reported as Via.
func (n *Node) ID() string {
	return n.id
}

func (n *Node) Register(ctx context.Context, entry domain.Entry) error {
	stored, err := n.registry.Register(ctx, entry)
	if err != nil {
		return err
	}
	level.Info(n.logger).Log("msg", "entry registered", "name", stored.Name, "addr", stored.Address(), "kind", stored.Kind)
	return nil
}

func (n *Node) Unregister(ctx context.Context, name string, host string, port int) error {
	if err := n.registry.Unregister(ctx, name, host, port); err != nil {
		return err
	}
	level.Info(n.logger).Log("msg", "entry unregistered", "name", name, "host", host, "port", port)
	return nil
}

func (n *Node) Lookup(ctx context.Context, name string) ([]domain.Entry, error) {
	return n.resolver.Lookup(ctx, name)
}

func (n *Node) Resolve(ctx context.Context, name string, hops int) (domain.ResolveResult, error) {
	return n.resolver.Resolve(ctx, name, hops)
}

func (n *Node) List(ctx context.Context) (map[string][]domain.Entry, error) {
	return n.registry.ListAll(ctx)
}

func (n *Node) Info(ctx context.Context) (domain.NodeInfo, error) {
	names, err := n.registry.Names(ctx)
	if err != nil {
		return domain.NodeInfo{}, err
	}
	return domain.NodeInfo{
		ID:                n.id,
		DelegationTargets: slices.Clone(n.targets),
		OwnNames:          names,
	}, nil
}
