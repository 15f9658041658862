package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Variadic marks a method that accepts any number of arguments.
const Variadic = -1

// MethodFunc is a locally executable method. args are already checked against the declared arity.
type MethodFunc func(ctx context.Context, args []any) (any, error)

type method struct {
	arity int
	fn    MethodFunc
}

// Dispatcher is the server-side method table behind POST /invoke.
// Methods are added with Handle while building the service; the table is read-only once serving starts.
type Dispatcher struct {
	methods map[string]method
	logger  log.Logger
}

// NewDispatcher creates an empty method table.
func NewDispatcher(logger log.Logger) *Dispatcher {
	return &Dispatcher{
		methods: make(map[string]method),
		logger:  log.WithPrefix(logger, "component", "Dispatcher"),
	}
}

// Handle binds name to fn taking exactly arity positional arguments (or Variadic).
// Binding the same name twice replaces the previous method.
func (d *Dispatcher) Handle(name string, arity int, fn MethodFunc) *Dispatcher {
	if name == "" || fn == nil {
		panic("service.dispatcher.go: method name and func are required")
	}
	d.methods[name] = method{arity: arity, fn: fn}
	return d
}

// Methods returns the sorted method names; used as the iface advertised on registration.
func (d *Dispatcher) Methods() []string {
	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named method. A failing or panicking method yields invocation_error carrying
// its message; the dispatcher itself stays usable.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args []any) (result any, err error) {
	m, ok := d.methods[name]
	if !ok {
		return nil, NewUnknownMethodError(fmt.Sprintf("method %s does not exist", name), nil)
	}
	if args == nil {
		args = []any{}
	}
	if m.arity != Variadic && len(args) != m.arity {
		return nil, NewBadParameterError(fmt.Sprintf("method %s expects %d arguments, got %d", name, m.arity, len(args)), nil)
	}

	defer func() {
		if p := recover(); p != nil {
			level.Error(d.logger).Log("msg", "method panicked", "method", name, "panic", p)
			result = nil
			err = NewInvocationError(fmt.Sprint(p), fmt.Errorf("panic in method %s: %v", name, p))
		}
	}()

	result, err = m.fn(ctx, args)
	if err != nil {
		if IsBadParameterError(err) {
			return nil, err
		}
		return nil, NewInvocationError(err.Error(), err)
	}
	return result, nil
}

// NumberArg returns args[i] as a float64. JSON numbers arrive as float64 or json.Number;
// in-process callers may pass plain integers.
func NumberArg(args []any, i int) (float64, error) {
	if i < 0 || i >= len(args) {
		return 0, NewBadParameterError(fmt.Sprintf("argument %d is missing", i), nil)
	}
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, NewBadParameterError(fmt.Sprintf("argument %d is not a number", i), err)
		}
		return f, nil
	default:
		return 0, NewBadParameterError(fmt.Sprintf("argument %d must be a number, got %T", i, args[i]), nil)
	}
}

// StringArg returns args[i] as a string.
func StringArg(args []any, i int) (string, error) {
	if i < 0 || i >= len(args) {
		return "", NewBadParameterError(fmt.Sprintf("argument %d is missing", i), nil)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", NewBadParameterError(fmt.Sprintf("argument %d must be a string, got %T", i, args[i]), nil)
	}
	return s, nil
}
