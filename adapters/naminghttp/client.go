// Package naminghttp talks to naming nodes over their HTTP API.
package naminghttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mynaming/domain"
	"mynaming/helpers"
	"mynaming/interfaces"
	"mynaming/service"
)

// DefaultTimeout bounds every call of the naming client.
const DefaultTimeout = 5 * time.Second

// NamingHTTP creates an interfaces.NamingClient for the node at baseURL (e.g. http://127.0.0.1:5000,
// no trailing slash). Panics on empty baseURL or nil client.
//
// Every call is bounded by DefaultTimeout on top of the caller's ctx. Transport failures and non-2xx
// answers are reported as service.NamingUnavailableError carrying the node's error message when it
// sent one.
//
// Called from cmd/mycalc (register, renew, unregister) and from scenario runs (lookup, resolve).
func NamingHTTP(baseURL string, client *http.Client) interfaces.NamingClient {
	return &namingHTTP{
		baseURL: strings.TrimSuffix(helpers.StrPanic(baseURL, "adapters.naminghttp.client.go: baseURL is required"), "/"),
		client:  helpers.NilPanic(client, "adapters.naminghttp.client.go: http client is required"),
	}
}

type namingHTTP struct {
	baseURL string
	client  *http.Client
}

// Register performs POST baseURL/register.
func (n *namingHTTP) Register(ctx context.Context, entry domain.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	return doJSON(ctx, n.client, http.MethodPost, n.baseURL+"/register", toRegisterRequest(entry), nil)
}

// Unregister performs POST baseURL/unregister.
func (n *namingHTTP) Unregister(ctx context.Context, name string, host string, port int) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	body := unregisterRequest{Name: name, Host: host, Port: port}
	return doJSON(ctx, n.client, http.MethodPost, n.baseURL+"/unregister", body, nil)
}

// Lookup performs GET baseURL/lookup/{name}. The name is path-escaped so slash separated names
// travel as a single segment.
//
// Returns the exact-match entries; an empty slice when the node knows nothing under name.
func (n *namingHTTP) Lookup(ctx context.Context, name string) ([]domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	var out lookupResponse
	if err := doJSON(ctx, n.client, http.MethodGet, n.baseURL+"/lookup/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return toEntries(out.Entries), nil
}

// Resolve returns only the entries of a full resolution; empty when unresolved.
func (n *namingHTTP) Resolve(ctx context.Context, name string) ([]domain.Entry, error) {
	result, err := n.ResolveResult(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// ResolveResult performs GET baseURL/resolve?name=&hops= and returns the whole answer.
func (n *namingHTTP) ResolveResult(ctx context.Context, name string, hops int) (domain.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	return resolve(ctx, n.client, n.baseURL, name, hops)
}

// RemoteResolverHTTP creates the interfaces.RemoteResolver used by naming nodes to delegate.
// target is the base URL of the peer node. The caller bounds every attempt with its own timeout.
func RemoteResolverHTTP(client *http.Client) interfaces.RemoteResolver {
	return &remoteResolverHTTP{
		client: helpers.NilPanic(client, "adapters.naminghttp.client.go: http client is required"),
	}
}

type remoteResolverHTTP struct {
	client *http.Client
}

func (r *remoteResolverHTTP) ResolveRemote(ctx context.Context, target string, name string, hops int) (domain.ResolveResult, error) {
	return resolve(ctx, r.client, strings.TrimSuffix(target, "/"), name, hops)
}

func resolve(ctx context.Context, client *http.Client, baseURL string, name string, hops int) (domain.ResolveResult, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("hops", strconv.Itoa(hops))

	var out resolveResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/resolve?"+query.Encode(), nil, &out); err != nil {
		return domain.ResolveResult{}, err
	}
	return toResolveResult(out), nil
}

// doJSON sends in (when non-nil) as JSON and decodes a 2xx answer into out (when non-nil).
func doJSON(ctx context.Context, client *http.Client, method string, reqURL string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return service.NewInternalServerError("failed to encode request", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return service.NewNamingUnavailableError("invalid naming node url", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return service.NewNamingUnavailableError("naming node unreachable", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return service.NewNamingUnavailableError("failed to read naming node answer", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return service.NewNamingUnavailableError(statusMessage(resp.StatusCode, data), nil)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return service.NewNamingUnavailableError("invalid naming node answer", err)
	}
	return nil
}

func statusMessage(status int, body []byte) string {
	var e errResponse
	if json.Unmarshal(body, &e) == nil && e.Error != nil && e.Error.Message != "" {
		return fmt.Sprintf("naming node returned %d: %s", status, e.Error.Message)
	}
	return fmt.Sprintf("naming node returned %d", status)
}
