package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Handler runs a command with its positional arguments.
type Handler = func(ctx context.Context, args []string) (string, error)

// Middleware wraps every command served by a [Router].
type Middleware = func(c *Context, next func(*Context))

// ErrStop is returned by handlers that end the session.
var ErrStop = errors.New("router: stop")

// Outcomes of a served command, as seen by middlewares.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"  // unknown command
	OutcomeMismatch = "mismatch" // wrong argument count
	OutcomeRejected = "rejected" // handler error translated to a message
	OutcomeFailed   = "failed"   // unexpected handler error
	OutcomeStop     = "stop"
)

const (
	msgInvalidCommand = "Invalid command."
	msgArgsMismatch   = "Command should have '%d' arguments."
)

// Context is the state of one served command line. Err holds the handler
// error, including the rejected ones rendered as Output.
type Context struct {
	ctx context.Context

	Command string
	Args    []string
	Known   bool

	Output  string
	Outcome string
	Err     error
}

// Context returns the context of the session serving the command.
func (c *Context) Context() context.Context { return c.ctx }

type command struct {
	args   int
	handle Handler
}

type Router struct {
	commands    map[string]command
	middlewares []Middleware
	message     func(error) (string, bool)
}

func New(opts ...func(*Router)) *Router {
	r := &Router{commands: make(map[string]command)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers h under name. Lines for name must carry exactly args arguments.
func (r *Router) Handle(name string, args int, h Handler) {
	r.commands[strings.ToLower(name)] = command{args, h}
}

// Commands returns the registered command names.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}

// Serve parses line and runs the matching command.
//
// Handler errors accepted by the message option are rendered as output.
// Other errors are returned, wrapped [ErrStop] included.
func (r *Router) Serve(ctx context.Context, line string) (string, error) {
	name, args := Parse(line)
	cmd, known := r.commands[name]

	c := &Context{ctx: ctx, Command: name, Args: args, Known: known}
	next := func(c *Context) { r.serve(c, cmd) }
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		mw, inner := r.middlewares[i], next
		next = func(c *Context) { mw(c, inner) }
	}
	next(c)

	if c.Outcome == OutcomeRejected {
		return c.Output, nil
	}
	return c.Output, c.Err
}

func (r *Router) serve(c *Context, cmd command) {
	if !c.Known {
		c.Output, c.Outcome = msgInvalidCommand, OutcomeInvalid
		return
	}
	if len(c.Args) != cmd.args {
		c.Output, c.Outcome = fmt.Sprintf(msgArgsMismatch, cmd.args), OutcomeMismatch
		return
	}

	out, err := cmd.handle(c.ctx, c.Args)
	switch {
	case err == nil:
		c.Output, c.Outcome = out, OutcomeOK
	case errors.Is(err, ErrStop):
		c.Output, c.Outcome, c.Err = out, OutcomeStop, err
	default:
		if r.message != nil {
			if msg, ok := r.message(err); ok {
				c.Output, c.Outcome, c.Err = msg, OutcomeRejected, err
				return
			}
		}
		c.Outcome, c.Err = OutcomeFailed, err
	}
}

// Parse splits line on white spaces. The first token, lowercased, is the command name.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func OptUseMiddleware(mws ...Middleware) func(*Router) {
	return func(r *Router) { r.middlewares = append(r.middlewares, mws...) }
}

// OptMessage sets the function rendering recoverable handler errors.
func OptMessage(f func(error) (string, bool)) func(*Router) {
	return func(r *Router) { r.message = f }
}

// OptRegister calls Register on each of regs.
func OptRegister(regs ...interface{ Register(*Router) }) func(*Router) {
	return func(r *Router) {
		for _, reg := range regs {
			reg.Register(r)
		}
	}
}
