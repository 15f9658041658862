package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"mynaming/domain"
	"mynaming/helpers"
	"mynaming/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Registrar announces one service entry to a set of naming nodes and keeps its lease alive.
type Registrar struct {
	entry      domain.Entry
	clients    []interfaces.NamingClient
	renewEvery time.Duration // zero when the entry has no lease
	logger     log.Logger

	started atomic.Bool
	once    sync.Once
	stop    chan struct{}
	done    chan struct{}
}

// NewRegistrar creates a Registrar for entry. With a lease, the entry is re-announced every half lease.
func NewRegistrar(entry domain.Entry, clients []interfaces.NamingClient, logger log.Logger) *Registrar {
	helpers.StrPanic(entry.Name, "service.registrar.go: entry name is required")
	var renewEvery time.Duration
	if lease := Value(entry.LeaseSeconds); lease > 0 {
		renewEvery = time.Duration(lease) * time.Second / 2
	}
	return &Registrar{
		entry:      entry,
		clients:    clients,
		renewEvery: renewEvery,
		logger:     log.WithPrefix(logger, "component", "Registrar", "name", entry.Name),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start registers with every node and starts lease renewal. A node that cannot be reached is
// logged and retried at the next renewal; it never prevents the service from serving.
func (r *Registrar) Start(ctx context.Context) {
	if !r.started.CompareAndSwap(false, true) {
		return
	}
	r.announce(ctx, false)
	if r.renewEvery == 0 {
		close(r.done)
		return
	}
	go r.renewLoop()
}

func (r *Registrar) renewLoop() {
	defer close(r.done)
	ticker := time.NewTicker(r.renewEvery)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.renewEvery)
			r.announce(ctx, true)
			cancel()
		}
	}
}

// announce registers the entry everywhere. On renewal the previous registration is dropped first
// so that nodes keep a single live entry for this instance. Unregister removes every entry at
// host:port, fresh ones included, so it cannot follow register; until register lands the node
// has no entry for us, and a failed register is retried on the next tick.
func (r *Registrar) announce(ctx context.Context, renew bool) {
	for i, client := range r.clients {
		if renew {
			if err := client.Unregister(ctx, r.entry.Name, r.entry.Host, r.entry.Port); err != nil {
				level.Warn(r.logger).Log("msg", "lease renewal: unregister failed", "node", i, "err", err)
			}
		}
		if err := client.Register(ctx, r.entry); err != nil {
			level.Warn(r.logger).Log("msg", "registration failed", "node", i, "err", err)
			continue
		}
		if !renew {
			level.Info(r.logger).Log("msg", "registered", "node", i, "addr", r.entry.Address())
		}
	}
}

// Stop ends lease renewal and unregisters from every node. Safe to call more than once.
func (r *Registrar) Stop(ctx context.Context) {
	r.once.Do(func() {
		close(r.stop)
		if r.started.Load() {
			<-r.done
		}
		for i, client := range r.clients {
			if err := client.Unregister(ctx, r.entry.Name, r.entry.Host, r.entry.Port); err != nil {
				level.Warn(r.logger).Log("msg", "unregister failed", "node", i, "err", err)
			}
		}
	})
}
