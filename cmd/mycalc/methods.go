package main

import (
	"context"

	"mynaming/service"

	"github.com/go-kit/log"
)

// newCalcDispatcher builds the method table of the example service.
func newCalcDispatcher(logger log.Logger) *service.Dispatcher {
	return service.NewDispatcher(logger).
		Handle("add", 2, binary(func(a, b float64) float64 { return a + b })).
		Handle("mul", 2, binary(func(a, b float64) float64 { return a * b })).
		Handle("echo", 1, func(_ context.Context, args []any) (any, error) {
			return args[0], nil
		})
}

func binary(op func(a, b float64) float64) service.MethodFunc {
	return func(_ context.Context, args []any) (any, error) {
		a, err := service.NumberArg(args, 0)
		if err != nil {
			return nil, err
		}
		b, err := service.NumberArg(args, 1)
		if err != nil {
			return nil, err
		}
		return op(a, b), nil
	}
}
