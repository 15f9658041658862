package domain

import (
	"net"
	"strconv"
	"time"
)

// Kind describes the invocation convention or resource class of an entry.
// It is descriptive only and never changes dispatch.
type Kind string

const (
	KindRPC     Kind = "rpc"
	KindRMI     Kind = "rmi"
	KindFile    Kind = "file"
	KindProcess Kind = "process"
	KindService Kind = "service"
	KindMemory  Kind = "memory"
	KindOther   Kind = "other"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRPC, KindRMI, KindFile, KindProcess, KindService, KindMemory, KindOther:
		return true
	}
	return false
}

// Entry is one registered service instance bound under Name.
// Several entries may share a Name (replicas); Host and Port identify the instance.
type Entry struct {
	Name         string
	Host         string
	Port         int
	Kind         Kind
	Iface        []string       // method names the instance exposes, hint only
	Meta         map[string]any // opaque attributes
	LeaseSeconds *int           // nil means the entry never expires
	RegisteredAt time.Time
}

// Address returns host:port of the instance.
func (e Entry) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// SameInstance reports whether the entry lives at host:port.
func (e Entry) SameInstance(host string, port int) bool {
	return e.Host == host && e.Port == port
}

// Visible reports whether the lease of the entry is still valid at now.
// Entries without a lease (or with a zero lease) are always visible.
func (e Entry) Visible(now time.Time) bool {
	if e.LeaseSeconds == nil || *e.LeaseSeconds <= 0 {
		return true
	}
	return now.Sub(e.RegisteredAt) < time.Duration(*e.LeaseSeconds)*time.Second
}

// FilterVisible returns the entries of in still visible at now, preserving order.
func FilterVisible(in []Entry, now time.Time) []Entry {
	out := make([]Entry, 0, len(in))
	for _, e := range in {
		if e.Visible(now) {
			out = append(out, e)
		}
	}
	return out
}

// ResolveResult is the answer to a resolution query.
type ResolveResult struct {
	Found bool
	// Name is the name that actually matched; a proper prefix of the query on hierarchical fallback.
	Name    string
	Entries []Entry
	// Via is the id of the node that produced the answer.
	Via string
	// Path lists the node ids the answer travelled through, answering node first.
	Path []string
}

// NotFound returns an empty, unresolved result.
func NotFound() ResolveResult {
	return ResolveResult{Found: false, Entries: []Entry{}}
}

// NodeInfo describes a naming node.
type NodeInfo struct {
	ID                string
	DelegationTargets []string
	OwnNames          []string
}
