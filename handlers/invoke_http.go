package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mynaming/helpers"
	"mynaming/interfaces"
	"mynaming/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// InvokeServer implements InvokeServerInterface over a method table.
type InvokeServer struct {
	invoker interfaces.Invoker
	logger  log.Logger
}

// NewInvokeServer creates a new InvokeServer.
func NewInvokeServer(invoker interfaces.Invoker, logger log.Logger) *InvokeServer {
	return &InvokeServer{
		invoker: helpers.NilPanic(invoker, "handlers.invoke_http.go: invoker is required"),
		logger:  log.WithPrefix(logger, "component", "InvokeServer"),
	}
}

// InvokeMethod (POST /invoke) calls {method, args} and answers {result}.
// 400 on unknown method or bad args, 500 when the method fails.
func (h *InvokeServer) InvokeMethod(ectx echo.Context) error {
	var req InvokeRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Method == "" {
		return service.NewBadParameterError("method is required", nil)
	}
	if req.Args == nil {
		return service.NewBadParameterError("args must be an array", nil)
	}

	ctx := ectx.Request().Context()
	result, err := h.invoker.Invoke(ctx, req.Method, *req.Args)
	if err != nil {
		return fmt.Errorf("invokeMethod failed to call %s, err: %w", req.Method, err)
	}
	level.Debug(h.logger).Log("msg", "method invoked", "method", req.Method, "args", len(*req.Args))

	// NaN, Inf or a channel result cannot be encoded; that is the method's failure, not ours
	body, err := json.Marshal(InvokeResponse{Result: result})
	if err != nil {
		return service.NewInvocationError(fmt.Sprintf("result of %s is not JSON encodable: %s", req.Method, err), err)
	}
	return ectx.JSONBlob(http.StatusOK, body)
}
