package handlers

import (
	"mynaming/domain"
)

// toEntryInfo converts a domain entry to its wire form.
func toEntryInfo(e domain.Entry) EntryInfo {
	return EntryInfo{
		Name:         e.Name,
		Host:         e.Host,
		Port:         e.Port,
		Kind:         string(e.Kind),
		Iface:        e.Iface,
		Meta:         e.Meta,
		LeaseSeconds: e.LeaseSeconds,
		RegisteredAt: e.RegisteredAt,
	}
}

// toEntryInfos never returns nil so that entries always encodes as an array.
func toEntryInfos(entries []domain.Entry) []EntryInfo {
	out := make([]EntryInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryInfo(e))
	}
	return out
}

func toLookupResponse(name string, entries []domain.Entry) LookupResponse {
	return LookupResponse{Name: name, Entries: toEntryInfos(entries)}
}

// toResolveResponse converts a resolution result. Resource is the address of the first entry.
func toResolveResponse(r domain.ResolveResult) ResolveResponse {
	resp := ResolveResponse{
		Found:   r.Found,
		Name:    r.Name,
		Entries: toEntryInfos(r.Entries),
		Via:     r.Via,
		Path:    r.Path,
	}
	if len(r.Entries) > 0 {
		resp.Resource = r.Entries[0].Address()
	}
	return resp
}

func toListResponse(table map[string][]domain.Entry) ListResponse {
	out := make(ListResponse, len(table))
	for name, entries := range table {
		out[name] = toEntryInfos(entries)
	}
	return out
}

func toInfoResponse(info domain.NodeInfo) InfoResponse {
	targets := info.DelegationTargets
	if targets == nil {
		targets = []string{}
	}
	names := info.OwnNames
	if names == nil {
		names = []string{}
	}
	return InfoResponse{
		Id:                info.ID,
		DelegationTargets: targets,
		OwnNames:          names,
	}
}
