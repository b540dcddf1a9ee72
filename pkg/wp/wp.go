// Package wp is the platform facade production code calls instead of the
// global WordPress API.
//
// Every function forwards to the Platform bound with Use. Tests bind a
// mock session; without a binding the facade behaves like an empty site:
// hook registration succeeds, actions do nothing, filters return their
// value, natives run their real implementation and other functions return
// nil.
package wp

//go:generate go run ../../cmd/wpmockgen generate -m manifest.yaml -o functions_gen.go

import (
	"os"
	"sync"

	"github.com/flemzord/wpmock/pkg/function"
	"github.com/flemzord/wpmock/pkg/hook"
)

// Defaults of add_action and add_filter.
const (
	DefaultPriority     = 10
	DefaultAcceptedArgs = 1
)

// Platform receives every facade call.
type Platform interface {
	RegisterHook(kind hook.Kind, tag string, callback any, priority, acceptedArgs int) bool
	DoAction(tag string, args []any)
	ApplyFilters(tag string, args []any) any
	DidAction(tag string) int
	Call(name string, args []any) any
}

var (
	mu    sync.RWMutex
	bound Platform

	// fallback serves unbound calls to passthru and echo builtins.
	fallback = function.NewHandlers(nil, os.Stdout, nil)
)

// Use binds p and returns a function restoring the previous binding.
// Use(nil) unbinds.
func Use(p Platform) (restore func()) {
	mu.Lock()
	prev := bound
	bound = p
	mu.Unlock()

	return func() {
		mu.Lock()
		bound = prev
		mu.Unlock()
	}
}

// Bound returns the bound platform, or nil.
func Bound() Platform {
	mu.RLock()
	defer mu.RUnlock()
	return bound
}

// AddAction hooks callback to an action. The optional ints are the priority
// and the accepted argument count.
func AddAction(tag string, callback any, opts ...int) bool {
	return register(hook.KindAction, tag, callback, opts)
}

// AddFilter hooks callback to a filter. The optional ints are the priority
// and the accepted argument count.
func AddFilter(tag string, callback any, opts ...int) bool {
	return register(hook.KindFilter, tag, callback, opts)
}

func register(kind hook.Kind, tag string, callback any, opts []int) bool {
	priority, acceptedArgs := DefaultPriority, DefaultAcceptedArgs
	if len(opts) > 0 {
		priority = opts[0]
	}
	if len(opts) > 1 {
		acceptedArgs = opts[1]
	}
	if p := Bound(); p != nil {
		return p.RegisterHook(kind, tag, callback, priority, acceptedArgs)
	}
	return true
}

// DoAction fires an action.
func DoAction(tag string, args ...any) {
	DoActionRefArray(tag, args)
}

// DoActionRefArray fires an action with an argument slice.
func DoActionRefArray(tag string, args []any) {
	if p := Bound(); p != nil {
		p.DoAction(tag, args)
	}
}

// ApplyFilters filters v through tag.
func ApplyFilters(tag string, v any, args ...any) any {
	return ApplyFiltersRefArray(tag, append([]any{v}, args...))
}

// ApplyFiltersRefArray filters args[0] through tag.
func ApplyFiltersRefArray(tag string, args []any) any {
	if p := Bound(); p != nil {
		return p.ApplyFilters(tag, args)
	}
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// DidAction returns how many times tag fired.
func DidAction(tag string) int {
	if p := Bound(); p != nil {
		return p.DidAction(tag)
	}
	return 0
}

// Call invokes the platform function name.
func Call(name string, args ...any) any {
	if p := Bound(); p != nil {
		return p.Call(name, args)
	}
	if sym, ok := function.Lookup(name); ok && sym.IsNative() {
		return sym.Native(args...)
	}
	return fallback.Handle(name, args)
}
