// Package handlers contains http handlers for mynaming: the naming node surface and the
// invocation endpoint of services.
package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name         string          `json:"name"`
	Host         string          `json:"host"`
	Port         int             `json:"port"`
	Kind         *string         `json:"kind,omitempty"`
	Iface        *[]string       `json:"iface,omitempty"`
	Meta         *map[string]any `json:"meta,omitempty"`
	LeaseSeconds *int            `json:"leaseSeconds,omitempty"`
	// Resource is a "host:port" descriptor used when Host and Port are not given.
	Resource *string `json:"resource,omitempty"`
}

// UnregisterRequest is the body of POST /unregister.
type UnregisterRequest struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// OkResponse acknowledges a registry mutation.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// EntryInfo is one entry as seen on the wire.
type EntryInfo struct {
	Name         string         `json:"name"`
	Host         string         `json:"host"`
	Port         int            `json:"port"`
	Kind         string         `json:"kind"`
	Iface        []string       `json:"iface,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
	LeaseSeconds *int           `json:"leaseSeconds,omitempty"`
	RegisteredAt time.Time      `json:"registeredAt"`
}

// LookupResponse is the body of GET /lookup/{name}.
type LookupResponse struct {
	Name    string      `json:"name"`
	Entries []EntryInfo `json:"entries"`
}

// ResolveResponse is the body of GET /resolve.
type ResolveResponse struct {
	Found    bool        `json:"found"`
	Name     string      `json:"name,omitempty"`
	Entries  []EntryInfo `json:"entries"`
	Resource string      `json:"resource,omitempty"`
	Via      string      `json:"via,omitempty"`
	Path     []string    `json:"path,omitempty"`
}

// ListResponse is the body of GET /list: name -> live entries.
type ListResponse map[string][]EntryInfo

// InfoResponse is the body of GET /info.
type InfoResponse struct {
	Id                string   `json:"id"`
	DelegationTargets []string `json:"delegationTargets"`
	OwnNames          []string `json:"ownNames"`
}

// InvokeRequest is the body of POST /invoke.
type InvokeRequest struct {
	Method string `json:"method"`
	Args   *[]any `json:"args"`
}

// InvokeResponse is the successful answer of POST /invoke.
type InvokeResponse struct {
	Result any `json:"result"`
}

// ResolveParams are the query parameters of GET /resolve.
type ResolveParams struct {
	// Hops is the number of naming nodes the query already went through.
	Hops int
}

// NamingServerInterface is the naming node HTTP surface.
type NamingServerInterface interface {
	// (POST /register)
	RegisterEntry(ctx echo.Context) error
	// (POST /unregister)
	UnregisterEntry(ctx echo.Context) error
	// (GET /lookup/{name})
	LookupEntries(ctx echo.Context, name string) error
	// (GET /resolve/{name}, GET /resolve?name=)
	ResolveName(ctx echo.Context, name string, params ResolveParams) error
	// (GET /list)
	ListEntries(ctx echo.Context) error
	// (GET /info)
	GetInfo(ctx echo.Context) error
}

// InvokeServerInterface is the service-side invocation surface.
type InvokeServerInterface interface {
	// (POST /invoke)
	InvokeMethod(ctx echo.Context) error
}

// EchoRouter is the subset of echo used to mount handlers; *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// namingServerWrapper extracts path and query parameters before calling the handler.
type namingServerWrapper struct {
	Handler NamingServerInterface
}

func (w *namingServerWrapper) RegisterEntry(ctx echo.Context) error {
	return w.Handler.RegisterEntry(ctx)
}

func (w *namingServerWrapper) UnregisterEntry(ctx echo.Context) error {
	return w.Handler.UnregisterEntry(ctx)
}

func (w *namingServerWrapper) LookupEntries(ctx echo.Context) error {
	name, err := pathName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.LookupEntries(ctx, name)
}

func (w *namingServerWrapper) ResolveName(ctx echo.Context) error {
	name, err := pathName(ctx)
	if err != nil {
		return err
	}
	if name == "" {
		name = ctx.QueryParam("name")
	}

	var params ResolveParams
	err = runtime.BindQueryParameter("form", true, false, "hops", ctx.QueryParams(), &params.Hops)
	if err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("Invalid format for parameter hops: %s", err)).SetInternal(err)
	}
	if params.Hops < 0 {
		return echo.NewHTTPError(400, fmt.Sprintf("Invalid format for parameter hops: %d", params.Hops))
	}
	return w.Handler.ResolveName(ctx, name, params)
}

func (w *namingServerWrapper) ListEntries(ctx echo.Context) error {
	return w.Handler.ListEntries(ctx)
}

func (w *namingServerWrapper) GetInfo(ctx echo.Context) error {
	return w.Handler.GetInfo(ctx)
}

// pathName returns the unescaped wildcard part of the path. Names may contain slashes,
// either escaped (%2F) or literal.
// echo routes on URL.RawPath when it is set and on the decoded URL.Path otherwise, so only
// the first case still needs unescaping.
func pathName(ctx echo.Context) (string, error) {
	raw := ctx.Param("*")
	if ctx.Request().URL.RawPath == "" {
		return raw, nil
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", echo.NewHTTPError(400, "Invalid format for parameter name: "+raw).SetInternal(err)
	}
	return name, nil
}

// RegisterNamingHandlers mounts the naming node routes on router.
func RegisterNamingHandlers(router EchoRouter, si NamingServerInterface, m ...echo.MiddlewareFunc) {
	w := &namingServerWrapper{Handler: si}

	router.POST("/register", w.RegisterEntry, m...)
	router.POST("/unregister", w.UnregisterEntry, m...)
	router.GET("/lookup/*", w.LookupEntries, m...)
	router.GET("/resolve", w.ResolveName, m...)
	router.GET("/resolve/*", w.ResolveName, m...)
	router.GET("/list", w.ListEntries, m...)
	router.GET("/info", w.GetInfo, m...)
}

// RegisterInvokeHandlers mounts POST /invoke on router.
func RegisterInvokeHandlers(router EchoRouter, si InvokeServerInterface, m ...echo.MiddlewareFunc) {
	router.POST("/invoke", si.InvokeMethod, m...)
}
