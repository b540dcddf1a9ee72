package function

import (
	"fmt"
	"io"
)

// Handler answers one call of a mocked function.
type Handler func(args []any) any

// Handlers is the dispatch table every forwarding symbol calls into.
type Handlers struct {
	handlers map[string]Handler
	policy   Policy
	observer Observer
	output   io.Writer
}

// NewHandlers creates an empty dispatch table. Echo-style defaults write to
// output.
func NewHandlers(policy Policy, output io.Writer, observer Observer) *Handlers {
	if output == nil {
		output = io.Discard
	}
	return &Handlers{
		handlers: make(map[string]Handler),
		policy:   policy,
		observer: observer,
		output:   output,
	}
}

// Set binds h to name, replacing any previous handler.
func (h *Handlers) Set(name string, fn Handler) {
	h.handlers[normalize(name)] = fn
}

// Exists reports whether a handler is bound to name.
func (h *Handlers) Exists(name string) bool {
	_, ok := h.handlers[normalize(name)]
	return ok
}

// Handle dispatches a call. A bound handler wins; otherwise builtin
// passthru and echo symbols apply their default, and anything else returns
// nil or fails in strict mode.
func (h *Handlers) Handle(name string, args []any) any {
	name = normalize(name)

	if fn, ok := h.handlers[name]; ok {
		h.observe(name, OutcomeMocked)
		return fn(args)
	}

	if sym, ok := Lookup(name); ok {
		switch sym.Behavior {
		case Passthru:
			h.observe(name, OutcomeDefault)
			return first(args)
		case Echo:
			h.observe(name, OutcomeDefault)
			WriteEcho(h.output, first(args))
			return nil
		}
	}

	h.observe(name, OutcomeUnhandled)
	if h.policy != nil && h.policy.Strict() {
		h.policy.Fail(fmt.Sprintf("No handler found for %s", name))
	}
	return nil
}

// Cleanup unbinds every handler.
func (h *Handlers) Cleanup() {
	clear(h.handlers)
}

func (h *Handlers) observe(name, outcome string) {
	if h.observer != nil {
		h.observer.FunctionCalled(name, outcome)
	}
}

func first(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// WriteEcho prints v to w the way the platform echoes scalars: true is
// "1", false and nil print nothing.
func WriteEcho(w io.Writer, v any) {
	switch t := v.(type) {
	case nil:
		return
	case string:
		io.WriteString(w, t)
	case bool:
		if t {
			io.WriteString(w, "1")
		}
	default:
		fmt.Fprint(w, v)
	}
}
