package naminghttp

import (
	"time"

	"mynaming/domain"
)

// entryInfo is one element of the entries array in naming node answers.
type entryInfo struct {
	Name         string         `json:"name"`
	Host         string         `json:"host"`
	Port         int            `json:"port"`
	Kind         string         `json:"kind,omitempty"`
	Iface        []string       `json:"iface,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
	LeaseSeconds *int           `json:"leaseSeconds,omitempty"`
	RegisteredAt time.Time      `json:"registeredAt"`
}

// lookupResponse is the JSON shape of GET /lookup/{name}.
type lookupResponse struct {
	Name    string      `json:"name"`
	Entries []entryInfo `json:"entries"`
}

// resolveResponse is the JSON shape of GET /resolve.
type resolveResponse struct {
	Found   bool        `json:"found"`
	Name    string      `json:"name"`
	Entries []entryInfo `json:"entries"`
	Via     string      `json:"via"`
	Path    []string    `json:"path"`
}

// registerRequest is the body of POST /register. Kind is omitted when empty so the node applies its default.
type registerRequest struct {
	Name         string         `json:"name"`
	Host         string         `json:"host"`
	Port         int            `json:"port"`
	Kind         string         `json:"kind,omitempty"`
	Iface        []string       `json:"iface,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
	LeaseSeconds *int           `json:"leaseSeconds,omitempty"`
}

type unregisterRequest struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// errResponse is the structured error body of a naming node.
type errResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func toRegisterRequest(e domain.Entry) registerRequest {
	return registerRequest{
		Name:         e.Name,
		Host:         e.Host,
		Port:         e.Port,
		Kind:         string(e.Kind),
		Iface:        e.Iface,
		Meta:         e.Meta,
		LeaseSeconds: e.LeaseSeconds,
	}
}

func toEntries(in []entryInfo) []domain.Entry {
	out := make([]domain.Entry, 0, len(in))
	for _, e := range in {
		out = append(out, domain.Entry{
			Name:         e.Name,
			Host:         e.Host,
			Port:         e.Port,
			Kind:         domain.Kind(e.Kind),
			Iface:        e.Iface,
			Meta:         e.Meta,
			LeaseSeconds: e.LeaseSeconds,
			RegisteredAt: e.RegisteredAt,
		})
	}
	return out
}

func toResolveResult(r resolveResponse) domain.ResolveResult {
	return domain.ResolveResult{
		Found:   r.Found,
		Name:    r.Name,
		Entries: toEntries(r.Entries),
		Via:     r.Via,
		Path:    r.Path,
	}
}
