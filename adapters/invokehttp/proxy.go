// Package invokehttp is the caller side of POST /invoke: a proxy bound to one resolved entry that
// forwards any method name with positional arguments.
package invokehttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"mynaming/domain"
	"mynaming/helpers"
	"mynaming/service"
)

// DefaultTimeout bounds a single call when the caller's ctx has no deadline.
const DefaultTimeout = 10 * time.Second

// fallbackMessage is reported when the service failed without a readable error.
const fallbackMessage = "invoke error"

// Proxy forwards method calls to the /invoke endpoint of one service instance.
// It is safe for concurrent use.
type Proxy struct {
	entry  domain.Entry
	url    string
	client *http.Client
}

// NewProxy binds a proxy to entry, usually the first entry of a resolution.
func NewProxy(entry domain.Entry, client *http.Client) *Proxy {
	helpers.StrPanic(entry.Host, "adapters.invokehttp.proxy.go: entry host is required")
	return &Proxy{
		entry:  entry,
		url:    "http://" + entry.Address() + "/invoke",
		client: helpers.NilPanic(client, "adapters.invokehttp.proxy.go: http client is required"),
	}
}

// Entry returns the entry the proxy is bound to.
func (p *Proxy) Entry() domain.Entry {
	return p.entry
}

// Methods returns the method names the instance advertised on registration.
// It is a hint only; Call accepts any name.
func (p *Proxy) Methods() []string {
	return slices.Clone(p.entry.Iface)
}

type invokeRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

type invokeResponse struct {
	Result json.RawMessage `json:"result"`
}

type errResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Call invokes method with args on the remote instance and returns the decoded JSON result
// (float64, string, bool, []any, map[string]any or nil).
//
// Any failure, including transport errors, is an invocation_error. When the service answered with
// a structured error its message is kept as is.
func (p *Proxy) Call(ctx context.Context, method string, args ...any) (any, error) {
	raw, err := p.call(ctx, method, args)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, service.NewInvocationError("invalid result", err)
	}
	return out, nil
}

// Invoke calls method through p and decodes the result into T.
func Invoke[T any](ctx context.Context, p *Proxy, method string, args ...any) (T, error) {
	var out T
	raw, err := p.call(ctx, method, args)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, service.NewInvocationError(fmt.Sprintf("result of %s is not a %T", method, out), err)
	}
	return out, nil
}

func (p *Proxy) call(ctx context.Context, method string, args []any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	data, err := json.Marshal(invokeRequest{Method: method, Args: args})
	if err != nil {
		return nil, service.NewBadParameterError("arguments are not serializable", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(data))
	if err != nil {
		return nil, service.NewInvocationError(fallbackMessage, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, service.NewInvocationError(fallbackMessage, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, service.NewInvocationError(fallbackMessage, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, service.NewInvocationError(errorMessage(body), fmt.Errorf("%s returned %d", p.url, resp.StatusCode))
	}

	var out invokeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, service.NewInvocationError("invalid invoke answer", err)
	}
	if out.Result == nil {
		return json.RawMessage("null"), nil
	}
	return out.Result, nil
}

func errorMessage(body []byte) string {
	var e errResponse
	if json.Unmarshal(body, &e) == nil && e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return fallbackMessage
}
