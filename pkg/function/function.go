// Package function mocks platform functions.
//
// Every platform function is a named symbol. Forwarding symbols send each
// call to a per-test dispatch table; native symbols run a real Go
// implementation unless the test patches them. Expectations registered for a
// name are layered on one shared testify mock, which matches arguments and
// enforces call counts.
package function

import (
	"errors"
)

var (
	// ErrInvalidName is returned for malformed function identifiers.
	ErrInvalidName = errors.New("invalid function name")

	// ErrReservedWord is returned when a name segment is a reserved word.
	ErrReservedWord = errors.New("function name is a reserved word")

	// ErrNativeFunction is returned when a native function is mocked
	// without patching enabled.
	ErrNativeFunction = errors.New("native function cannot be mocked without patching")

	// ErrInvalidTimes is returned for an unparsable times option.
	ErrInvalidTimes = errors.New("invalid times")

	// ErrInvalidReturnArg is returned for an unusable return_arg option.
	ErrInvalidReturnArg = errors.New("invalid return_arg")
)

// Dispatch outcomes reported to the Observer.
const (
	OutcomeMocked    = "mocked"
	OutcomeDefault   = "default"
	OutcomeNative    = "native"
	OutcomeUnhandled = "unhandled"
)

// Policy decides what happens to calls nobody mocked, and how failures are
// reported. Fail is expected not to return.
type Policy interface {
	Strict() bool
	Fail(msg string)
}

// Observer is notified of every dispatched call. Optional.
type Observer interface {
	FunctionCalled(name, outcome string)
}
