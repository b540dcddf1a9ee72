// Package value turns arbitrary call arguments into deterministic string keys
// so that heterogeneous values (scalars, closures, objects, collections) can
// index the hook matcher tries, and renders callbacks for failure messages.
package value

import (
	"fmt"
	"reflect"
)

const (
	// NullKey is the key of nil. It cannot be produced by any other value
	// short of a string carrying the same NUL-prefixed bytes.
	NullKey = "\x00null"

	// ClosureKey is shared by every closure so that "expects a closure"
	// registrations match whichever closure instance is passed.
	ClosureKey = "\x00closure"

	// ClosureMarker is the literal stand-in tests may pass where a closure
	// is expected.
	ClosureMarker = "Closure"

	objectPrefix   = "\x00object:"
	instancePrefix = "\x00instanceof:"
)

type anyClosure struct{}

// AnyClosure is a type matcher for closures. It encodes like any closure.
var AnyClosure = anyClosure{}

// Method is an array-style [object, method] callback.
type Method struct {
	Receiver any
	Name     string
}

// AnyInstance matches any object of the named type. Built with AnyInstanceOf.
type AnyInstance struct {
	Type string
}

// AnyInstanceOf returns a matcher for any instance of obj's type.
func AnyInstanceOf(obj any) AnyInstance {
	if ai, ok := obj.(AnyInstance); ok {
		return ai
	}
	return AnyInstance{Type: TypeName(obj)}
}

// TypeName returns the package-qualified type name of v with pointers
// dereferenced, or "" for nil.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// IsClosure reports whether v is a func value or one of the closure stand-ins.
func IsClosure(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case anyClosure:
		return true
	case string:
		return x == ClosureMarker
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// Describe renders a callback the way failure messages show it.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case anyClosure:
		return ClosureMarker
	case AnyInstance:
		return x.Type + " (any instance)"
	case Method:
		if ai, ok := x.Receiver.(AnyInstance); ok {
			return ai.Type + "::" + x.Name
		}
		return TypeName(x.Receiver) + "::" + x.Name
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return ClosureMarker
	}
	return fmt.Sprintf("%v", v)
}
