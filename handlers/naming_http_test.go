package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mynaming/domain"
	"mynaming/interfaces/mock"
	"mynaming/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNamingEcho(node *mock.NamingNodeMock) *echo.Echo {
	e := echo.New()
	RegisterNamingHandlers(e, NewNamingServer(node, log.NewNopLogger()))
	service.RegisterErrorHandler(e, log.NewNopLogger())
	return e
}

type errBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errBody {
	t.Helper()
	var body errBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body
}

func TestNamingServer_RegisterEntry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		node           *mock.NamingNodeMock
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "ok",
			body: `{"name":"org.example.calc","host":"127.0.0.1","port":6001,"kind":"service","iface":["add","mul"],"leaseSeconds":30}`,
			node: &mock.NamingNodeMock{
				RegisterFunc: func(ctx context.Context, entry domain.Entry) error {
					assert.Equal(t, "org.example.calc", entry.Name)
					assert.Equal(t, "127.0.0.1", entry.Host)
					assert.Equal(t, 6001, entry.Port)
					assert.Equal(t, domain.KindService, entry.Kind)
					assert.Equal(t, []string{"add", "mul"}, entry.Iface)
					require.NotNil(t, entry.LeaseSeconds)
					assert.Equal(t, 30, *entry.LeaseSeconds)
					return nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "ok host and port from resource",
			body: `{"name":"org.example.calc","resource":"10.0.0.7:7000"}`,
			node: &mock.NamingNodeMock{
				RegisterFunc: func(ctx context.Context, entry domain.Entry) error {
					assert.Equal(t, "10.0.0.7", entry.Host)
					assert.Equal(t, 7000, entry.Port)
					return nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			node:           &mock.NamingNodeMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "400 malformed resource",
			body:           `{"name":"org.example.calc","resource":"nowhere"}`,
			node:           &mock.NamingNodeMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name: "400 validation from node",
			body: `{"host":"127.0.0.1","port":6001}`,
			node: &mock.NamingNodeMock{
				RegisterFunc: func(ctx context.Context, entry domain.Entry) error {
					return service.NewBadParameterError("name is required", nil)
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name: "500 store error",
			body: `{"name":"a","host":"h","port":1}`,
			node: &mock.NamingNodeMock{
				RegisterFunc: func(ctx context.Context, entry domain.Entry) error {
					return assert.AnError
				},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   service.ErrInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newNamingEcho(tt.node)
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode == "" {
				assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
				return
			}
			assert.Equal(t, tt.expectedCode, decodeErr(t, rec).Error.Code)
		})
	}
}

func TestNamingServer_UnregisterEntry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		node           *mock.NamingNodeMock
		expectedStatus int
	}{
		{
			name: "ok",
			body: `{"name":"org.example.calc","host":"127.0.0.1","port":6001}`,
			node: &mock.NamingNodeMock{
				UnregisterFunc: func(ctx context.Context, name string, host string, port int) error {
					assert.Equal(t, "org.example.calc", name)
					assert.Equal(t, "127.0.0.1", host)
					assert.Equal(t, 6001, port)
					return nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 missing name",
			body:           `{"host":"127.0.0.1","port":6001}`,
			node:           &mock.NamingNodeMock{},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newNamingEcho(tt.node)
			req := httptest.NewRequest(http.MethodPost, "/unregister", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Empty(t, tt.node.UnregisterCalls())
			}
		})
	}
}

func TestNamingServer_LookupEntries(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		wantName   string
		entries    []domain.Entry
		wantLen    int
		wantStatus int
	}{
		{
			name:     "dotted name",
			path:     "/lookup/org.example.calc",
			wantName: "org.example.calc",
			entries: []domain.Entry{{
				Name: "org.example.calc", Host: "127.0.0.1", Port: 6001, Kind: domain.KindRPC, RegisteredAt: at,
			}},
			wantLen:    1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "escaped slash name",
			path:       "/lookup/%2Forg%2Fexample%2Fdb",
			wantName:   "/org/example/db",
			wantLen:    0,
			wantStatus: http.StatusOK,
		},
		{
			name:       "percent sign in name",
			path:       "/lookup/50%25off",
			wantName:   "50%off",
			wantLen:    0,
			wantStatus: http.StatusOK,
		},
		{
			name:       "escaped percent sequence stays literal",
			path:       "/lookup/x%2541",
			wantName:   "x%41",
			wantLen:    0,
			wantStatus: http.StatusOK,
		},
		{
			name:       "escaped slash and percent sign",
			path:       "/lookup/a%2Fb%25c",
			wantName:   "a/b%c",
			wantLen:    0,
			wantStatus: http.StatusOK,
		},
		{
			name:       "literal slash name",
			path:       "/lookup/org/example/db",
			wantName:   "org/example/db",
			wantLen:    0,
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &mock.NamingNodeMock{
				LookupFunc: func(ctx context.Context, name string) ([]domain.Entry, error) {
					assert.Equal(t, tt.wantName, name)
					return tt.entries, nil
				},
			}
			e := newNamingEcho(node)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			var got LookupResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantName, got.Name)
			assert.NotNil(t, got.Entries)
			assert.Len(t, got.Entries, tt.wantLen)
		})
	}
}

func TestNamingServer_ResolveName(t *testing.T) {
	found := domain.ResolveResult{
		Found:   true,
		Name:    "a.b",
		Entries: []domain.Entry{{Name: "a.b", Host: "10.0.0.1", Port: 9000, Kind: domain.KindRPC}},
		Via:     "n2",
		Path:    []string{"n2", "n1"},
	}

	tests := []struct {
		name       string
		path       string
		wantName   string
		wantHops   int
		result     domain.ResolveResult
		err        error
		wantStatus int
		check      func(t *testing.T, got ResolveResponse)
	}{
		{
			name:       "path form",
			path:       "/resolve/a.b.c.d",
			wantName:   "a.b.c.d",
			result:     found,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got ResolveResponse) {
				assert.True(t, got.Found)
				assert.Equal(t, "a.b", got.Name)
				assert.Equal(t, "10.0.0.1:9000", got.Resource)
				assert.Equal(t, "n2", got.Via)
				assert.Equal(t, []string{"n2", "n1"}, got.Path)
				assert.Len(t, got.Entries, 1)
			},
		},
		{
			name:       "path form with escaped percent",
			path:       "/resolve/x%2541",
			wantName:   "x%41",
			result:     found,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got ResolveResponse) {
				assert.True(t, got.Found)
			},
		},
		{
			name:       "query form with hops",
			path:       "/resolve?name=a.b&hops=3",
			wantName:   "a.b",
			wantHops:   3,
			result:     found,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got ResolveResponse) {
				assert.True(t, got.Found)
			},
		},
		{
			name:       "unresolved is 200 with found false",
			path:       "/resolve/unknown.name",
			wantName:   "unknown.name",
			result:     domain.NotFound(),
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got ResolveResponse) {
				assert.False(t, got.Found)
				assert.NotNil(t, got.Entries)
				assert.Empty(t, got.Entries)
				assert.Empty(t, got.Resource)
			},
		},
		{
			name:       "400 empty name",
			path:       "/resolve",
			wantName:   "",
			err:        service.NewBadParameterError("name is required", nil),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "400 bad hops",
			path:       "/resolve?name=a&hops=x",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "400 negative hops",
			path:       "/resolve?name=a&hops=-1",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &mock.NamingNodeMock{
				ResolveFunc: func(ctx context.Context, name string, hops int) (domain.ResolveResult, error) {
					assert.Equal(t, tt.wantName, name)
					assert.Equal(t, tt.wantHops, hops)
					return tt.result, tt.err
				},
			}
			e := newNamingEcho(node)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.check == nil {
				assert.Equal(t, service.ErrBadParameter, decodeErr(t, rec).Error.Code)
				return
			}
			var got ResolveResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			tt.check(t, got)
		})
	}
}

func TestNamingServer_ListEntries(t *testing.T) {
	node := &mock.NamingNodeMock{
		ListFunc: func(ctx context.Context) (map[string][]domain.Entry, error) {
			return map[string][]domain.Entry{
				"a": {{Name: "a", Host: "h", Port: 1, Kind: domain.KindRPC}},
				"b": {{Name: "b", Host: "h", Port: 2, Kind: domain.KindFile}, {Name: "b", Host: "h", Port: 3, Kind: domain.KindFile}},
			}, nil
		},
	}
	e := newNamingEcho(node)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
	assert.Len(t, got["b"], 2)
	assert.Equal(t, "file", got["b"][0].Kind)
}

func TestNamingServer_GetInfo(t *testing.T) {
	tests := []struct {
		name       string
		info       domain.NodeInfo
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			info:       domain.NodeInfo{ID: "root", DelegationTargets: []string{"http://n2:5000"}, OwnNames: []string{"a", "b"}},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"root","delegationTargets":["http://n2:5000"],"ownNames":["a","b"]}`,
		},
		{
			name:       "empty lists encode as arrays",
			info:       domain.NodeInfo{ID: "leaf"},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"leaf","delegationTargets":[],"ownNames":[]}`,
		},
		{
			name:       "500",
			err:        service.NewInternalServerError("failed to read entries", assert.AnError),
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &mock.NamingNodeMock{
				InfoFunc: func(ctx context.Context) (domain.NodeInfo, error) {
					return tt.info, tt.err
				},
			}
			e := newNamingEcho(node)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/info", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
