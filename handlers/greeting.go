package handlers

import (
	"context"

	"github.com/oaiiae/contacts-bot/router"
)

type Greeting struct{}

func (h *Greeting) Register(r *router.Router) { // called by [router.OptRegister]
	r.Handle("hello", 0, h.hello)
	r.Handle("close", 0, h.goodbye)
	r.Handle("exit", 0, h.goodbye)
}

func (h *Greeting) hello(context.Context, []string) (string, error) {
	return "How can I help you?", nil
}

func (h *Greeting) goodbye(context.Context, []string) (string, error) {
	return "Goodbye!", router.ErrStop
}
