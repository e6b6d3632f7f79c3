package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRecoverable = errors.New("recoverable")

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		name string
		args []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"hello", "hello", []string{}},
		{"  ADD john 0123456789 ", "add", []string{"john", "0123456789"}},
		{"change\tJohn  1  2", "change", []string{"John", "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, args := Parse(tt.line)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestRouter_Serve(t *testing.T) {
	var calls int
	r := New(
		OptMessage(func(err error) (string, bool) {
			if errors.Is(err, errRecoverable) {
				return "try again", true
			}
			return "", false
		}),
	)
	r.Handle("echo", 1, func(_ context.Context, args []string) (string, error) {
		calls++
		return args[0], nil
	})
	r.Handle("soft", 0, func(context.Context, []string) (string, error) { return "", errRecoverable })
	r.Handle("hard", 0, func(context.Context, []string) (string, error) { return "", errors.New("boom") })
	r.Handle("quit", 0, func(context.Context, []string) (string, error) { return "bye", ErrStop })
	ctx := context.Background()

	out, err := r.Serve(ctx, "ECHO hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	out, err = r.Serve(ctx, "echo hi there")
	require.NoError(t, err)
	assert.Equal(t, "Command should have '1' arguments.", out)
	assert.Equal(t, 1, calls, "handler is not run on mismatch")

	out, err = r.Serve(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "Invalid command.", out)

	out, err = r.Serve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Invalid command.", out)

	out, err = r.Serve(ctx, "soft")
	require.NoError(t, err)
	assert.Equal(t, "try again", out)

	_, err = r.Serve(ctx, "hard")
	assert.EqualError(t, err, "boom")

	out, err = r.Serve(ctx, "quit")
	assert.ErrorIs(t, err, ErrStop)
	assert.Equal(t, "bye", out)
}

func TestRouter_Middlewares(t *testing.T) {
	var trace []string
	mw := func(tag string) Middleware {
		return func(c *Context, next func(*Context)) {
			trace = append(trace, tag+">")
			next(c)
			trace = append(trace, "<"+tag+":"+c.Outcome)
		}
	}

	r := New(
		OptUseMiddleware(mw("a"), mw("b")),
		OptRegister(registerFunc(func(r *Router) {
			r.Handle("ping", 0, func(context.Context, []string) (string, error) { return "pong", nil })
		})),
	)

	out, err := r.Serve(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
	assert.Equal(t, []string{"a>", "b>", "<b:ok", "<a:ok"}, trace)
	assert.ElementsMatch(t, []string{"ping"}, r.Commands())
}

type registerFunc func(*Router)

func (f registerFunc) Register(r *Router) { f(r) }
