package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(log.NewNopLogger()).
		Handle("add", 2, func(ctx context.Context, args []any) (any, error) {
			a, err := NumberArg(args, 0)
			if err != nil {
				return nil, err
			}
			b, err := NumberArg(args, 1)
			if err != nil {
				return nil, err
			}
			return a + b, nil
		}).
		Handle("div", 2, func(ctx context.Context, args []any) (any, error) {
			b, _ := NumberArg(args, 1)
			if b == 0 {
				return nil, errors.New("division by zero")
			}
			a, _ := NumberArg(args, 0)
			return a / b, nil
		}).
		Handle("explode", 0, func(ctx context.Context, args []any) (any, error) {
			var m map[string]int
			m["boom"] = 1
			return nil, nil
		}).
		Handle("concat", Variadic, func(ctx context.Context, args []any) (any, error) {
			out := ""
			for i := range args {
				s, err := StringArg(args, i)
				if err != nil {
					return nil, err
				}
				out += s
			}
			return out, nil
		})
}

func TestDispatcher_Methods(t *testing.T) {
	assert.Equal(t, []string{"add", "concat", "div", "explode"}, newTestDispatcher().Methods())
}

func TestDispatcher_Invoke(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		args      []any
		want      any
		checkCode func(error) bool
		wantMsg   string
	}{
		{name: "add json numbers", method: "add", args: []any{float64(2), float64(3)}, want: float64(5)},
		{name: "add ints", method: "add", args: []any{4, 5}, want: float64(9)},
		{name: "add json.Number", method: "add", args: []any{json.Number("1.5"), json.Number("2")}, want: 3.5},
		{name: "variadic", method: "concat", args: []any{"a", "b", "c"}, want: "abc"},
		{name: "variadic nil args", method: "concat", args: nil, want: ""},
		{name: "unknown method", method: "pow", args: []any{}, checkCode: IsUnknownMethodError, wantMsg: "method pow does not exist"},
		{name: "wrong arity", method: "add", args: []any{1}, checkCode: IsBadParameterError, wantMsg: "method add expects 2 arguments, got 1"},
		{name: "wrong arg type", method: "add", args: []any{"x", 1}, checkCode: IsBadParameterError, wantMsg: "argument 0 must be a number, got string"},
		{name: "method error", method: "div", args: []any{1, 0}, checkCode: IsInvocationError, wantMsg: "division by zero"},
		{name: "method panic", method: "explode", args: nil, checkCode: IsInvocationError, wantMsg: "assignment to entry in nil map"},
	}
	d := newTestDispatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Invoke(context.Background(), tt.method, tt.args)
			if tt.checkCode != nil {
				require.Error(t, err)
				assert.True(t, tt.checkCode(err), "unexpected error %v", err)
				assert.Equal(t, tt.wantMsg, ToMyError(err).Message)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatcher_KeepsServingAfterFailures(t *testing.T) {
	d := newTestDispatcher()

	_, err := d.Invoke(context.Background(), "nope", nil)
	require.Error(t, err)
	_, err = d.Invoke(context.Background(), "explode", nil)
	require.Error(t, err)

	got, err := d.Invoke(context.Background(), "add", []any{float64(2), float64(3)})
	require.NoError(t, err)
	assert.Equal(t, float64(5), got)
}

func TestDispatcher_Handle_Panics(t *testing.T) {
	assert.Panics(t, func() {
		NewDispatcher(log.NewNopLogger()).Handle("", 0, func(ctx context.Context, args []any) (any, error) { return nil, nil })
	})
	assert.Panics(t, func() {
		NewDispatcher(log.NewNopLogger()).Handle("x", 0, nil)
	})
}

func TestStringArg(t *testing.T) {
	s, err := StringArg([]any{"hi"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	_, err = StringArg([]any{}, 0)
	assert.True(t, IsBadParameterError(err))
	_, err = StringArg([]any{1}, 0)
	assert.True(t, IsBadParameterError(err))
}
