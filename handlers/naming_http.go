package handlers

import (
	"fmt"
	"net/http"

	"mynaming/helpers"
	"mynaming/interfaces"
	"mynaming/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// NamingServer implements NamingServerInterface over a naming node.
type NamingServer struct {
	node   interfaces.NamingNode
	logger log.Logger
}

// NewNamingServer creates a new NamingServer.
func NewNamingServer(node interfaces.NamingNode, logger log.Logger) *NamingServer {
	return &NamingServer{
		node:   helpers.NilPanic(node, "handlers.naming_http.go: naming node is required"),
		logger: log.WithPrefix(logger, "component", "NamingServer"),
	}
}

// RegisterEntry (POST /register) stores one entry. Returns 400 when name, host or port is missing.
func (h *NamingServer) RegisterEntry(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	entry, err := fromRegisterRequest(req)
	if err != nil {
		return fmt.Errorf("registerEntry failed to convert request to entry, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.node.Register(ctx, entry); err != nil {
		return fmt.Errorf("registerEntry failed to register %q, err: %w", req.Name, err)
	}

	return ectx.JSON(http.StatusOK, OkResponse{Ok: true})
}

// UnregisterEntry (POST /unregister) removes the entries of name living at host:port.
func (h *NamingServer) UnregisterEntry(ectx echo.Context) error {
	var req UnregisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	name, host, port, err := fromUnregisterRequest(req)
	if err != nil {
		return fmt.Errorf("unregisterEntry failed to convert request, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.node.Unregister(ctx, name, host, port); err != nil {
		return fmt.Errorf("unregisterEntry failed to unregister %q, err: %w", name, err)
	}

	return ectx.JSON(http.StatusOK, OkResponse{Ok: true})
}

// LookupEntries (GET /lookup/{name}) returns the local entries bound to exactly name.
func (h *NamingServer) LookupEntries(ectx echo.Context, name string) error {
	ctx := ectx.Request().Context()
	entries, err := h.node.Lookup(ctx, name)
	if err != nil {
		return fmt.Errorf("lookupEntries failed for %q, err: %w", name, err)
	}

	return ectx.JSON(http.StatusOK, toLookupResponse(name, entries))
}

// ResolveName (GET /resolve/{name}, GET /resolve?name=) runs the full resolution.
// An unresolved name is a 200 with found=false.
func (h *NamingServer) ResolveName(ectx echo.Context, name string, params ResolveParams) error {
	ctx := ectx.Request().Context()
	result, err := h.node.Resolve(ctx, name, params.Hops)
	if err != nil {
		return fmt.Errorf("resolveName failed for %q, err: %w", name, err)
	}

	return ectx.JSON(http.StatusOK, toResolveResponse(result))
}

// ListEntries (GET /list) returns the live local table.
func (h *NamingServer) ListEntries(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	table, err := h.node.List(ctx)
	if err != nil {
		return fmt.Errorf("listEntries failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toListResponse(table))
}

// GetInfo (GET /info) describes the node.
func (h *NamingServer) GetInfo(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	info, err := h.node.Info(ctx)
	if err != nil {
		return fmt.Errorf("getInfo failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toInfoResponse(info))
}
