package handlers

import (
	"testing"
	"time"

	"mynaming/domain"

	"github.com/stretchr/testify/assert"
)

func TestToResolveResponse(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		result   domain.ResolveResult
		expected ResolveResponse
	}{
		{
			name:     "not found",
			result:   domain.NotFound(),
			expected: ResolveResponse{Found: false, Entries: []EntryInfo{}},
		},
		{
			name: "found keeps order and exposes first address",
			result: domain.ResolveResult{
				Found: true,
				Name:  "a.b",
				Entries: []domain.Entry{
					{Name: "a.b", Host: "10.0.0.2", Port: 81, Kind: domain.KindRPC, RegisteredAt: at},
					{Name: "a.b", Host: "10.0.0.1", Port: 80, Kind: domain.KindRPC, RegisteredAt: at},
				},
				Via:  "n1",
				Path: []string{"n1"},
			},
			expected: ResolveResponse{
				Found: true,
				Name:  "a.b",
				Entries: []EntryInfo{
					{Name: "a.b", Host: "10.0.0.2", Port: 81, Kind: "rpc", RegisteredAt: at},
					{Name: "a.b", Host: "10.0.0.1", Port: 80, Kind: "rpc", RegisteredAt: at},
				},
				Resource: "10.0.0.2:81",
				Via:      "n1",
				Path:     []string{"n1"},
			},
		},
		{
			name: "ipv6 resource",
			result: domain.ResolveResult{
				Found:   true,
				Entries: []domain.Entry{{Host: "::1", Port: 80}},
			},
			expected: ResolveResponse{
				Found:    true,
				Entries:  []EntryInfo{{Host: "::1", Port: 80}},
				Resource: "[::1]:80",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toResolveResponse(tt.result))
		})
	}
}

func TestToLookupResponse(t *testing.T) {
	got := toLookupResponse("x", nil)
	assert.Equal(t, "x", got.Name)
	assert.NotNil(t, got.Entries)
	assert.Empty(t, got.Entries)
}
