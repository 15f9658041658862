package interfaces

import "context"

// Invoker executes a named method with positional arguments.
// Implemented by service.Dispatcher and served by handlers.InvokeServer.
//
//go:generate moq -stub -out mock/invoker.go -pkg mock . Invoker
type Invoker interface {
	// Invoke returns unknown_method when the name is not registered, bad_parameter on arity
	// mismatch and invocation_error when the method itself fails.
	Invoke(ctx context.Context, method string, args []any) (any, error)
}
