package main

import (
	"context"
	"testing"

	"mynaming/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcDispatcher(t *testing.T) {
	d := newCalcDispatcher(log.NewNopLogger())
	assert.Equal(t, []string{"add", "echo", "mul"}, d.Methods())

	tests := []struct {
		name     string
		method   string
		args     []any
		want     any
		wantCode string
	}{
		{name: "add", method: "add", args: []any{2.0, 3.0}, want: 5.0},
		{name: "add ints", method: "add", args: []any{2, 3}, want: 5.0},
		{name: "mul", method: "mul", args: []any{4.0, 5.0}, want: 20.0},
		{name: "echo", method: "echo", args: []any{"hi"}, want: "hi"},
		{name: "echo object", method: "echo", args: []any{map[string]any{"a": 1.0}}, want: map[string]any{"a": 1.0}},
		{name: "add wrong arity", method: "add", args: []any{1.0}, wantCode: service.ErrBadParameter},
		{name: "add not a number", method: "add", args: []any{"1", 2.0}, wantCode: service.ErrBadParameter},
		{name: "unknown", method: "div", args: []any{1.0, 2.0}, wantCode: service.ErrUnknownMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Invoke(context.Background(), tt.method, tt.args)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, service.ToMyErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
