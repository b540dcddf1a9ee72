package function

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Behavior is what a forwarding symbol does when no handler is bound.
type Behavior int

const (
	// Forward returns nil (or fails in strict mode).
	Forward Behavior = iota

	// Passthru returns the first argument.
	Passthru

	// Echo writes the first argument to the session output.
	Echo
)

func (b Behavior) String() string {
	switch b {
	case Passthru:
		return "passthru"
	case Echo:
		return "echo"
	default:
		return "forward"
	}
}

// Symbol is a process-wide platform function.
type Symbol struct {
	Name     string
	Behavior Behavior

	// Native is the real implementation, nil for forwarding symbols.
	Native func(args ...any) any
}

// IsNative reports whether the symbol has a real implementation.
func (s Symbol) IsNative() bool { return s.Native != nil }

// The symbol table only grows: a defined function is never undefined.
var (
	symbols   = make(map[string]Symbol)
	symbolsMu sync.RWMutex
)

// Define declares a forwarding symbol. Defining an existing name returns the
// existing symbol unchanged.
func Define(name string, b Behavior) Symbol {
	name = normalize(name)

	symbolsMu.Lock()
	defer symbolsMu.Unlock()

	if s, ok := symbols[name]; ok {
		return s
	}
	s := Symbol{Name: name, Behavior: b}
	symbols[name] = s
	return s
}

// DefineNative declares a function with a real implementation. It panics if
// the name is empty, impl is nil, or the name is already defined. Intended
// to be called from init() functions.
func DefineNative(name string, impl func(args ...any) any) {
	name = normalize(name)
	if name == "" {
		panic("function: native name must not be empty")
	}
	if impl == nil {
		panic(fmt.Sprintf("function %s: native implementation must not be nil", name))
	}

	symbolsMu.Lock()
	defer symbolsMu.Unlock()

	if _, exists := symbols[name]; exists {
		panic(fmt.Sprintf("function already defined: %s", name))
	}
	symbols[name] = Symbol{Name: name, Native: impl}
}

// Lookup returns the symbol for name.
func Lookup(name string) (Symbol, bool) {
	symbolsMu.RLock()
	defer symbolsMu.RUnlock()
	s, ok := symbols[normalize(name)]
	return s, ok
}

// Symbols returns all defined symbols sorted by name.
func Symbols() []Symbol {
	symbolsMu.RLock()
	defer symbolsMu.RUnlock()

	result := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Symbol) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return result
}

// resetSymbols restores the table to the builtins. Only for testing.
func resetSymbols() {
	symbolsMu.Lock()
	symbols = make(map[string]Symbol)
	symbolsMu.Unlock()
	defineBuiltins()
}
