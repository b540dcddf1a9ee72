package function

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// Expectation is one registered call shape of a mocked function.
type Expectation struct {
	name string
	reg  *Registry
	call *mock.Call

	args      []any
	minCalls  int
	maxCalls  int
	ret       any
	sequence  *ReturnSequence
	returnArg int

	cursor int
	calls  int
}

func newExpectation(name string, opts Options) (*Expectation, error) {
	minCalls, maxCalls, err := ParseTimes(opts.Times)
	if err != nil {
		return nil, err
	}
	returnArg, err := parseReturnArg(opts.ReturnArg)
	if err != nil {
		return nil, err
	}

	e := &Expectation{
		name:      name,
		args:      matchers(opts.Args),
		minCalls:  minCalls,
		maxCalls:  maxCalls,
		ret:       opts.Return,
		returnArg: returnArg,
	}
	switch {
	case opts.ReturnInOrder != nil:
		seq := NewReturnSequence(opts.ReturnInOrder...)
		e.sequence = &seq
	default:
		if seq, ok := opts.Return.(ReturnSequence); ok {
			e.sequence = &seq
		}
	}
	return e, nil
}

// Name returns the mocked function name.
func (e *Expectation) Name() string { return e.name }

// Calls returns how many calls this expectation answered.
func (e *Expectation) Calls() int { return e.calls }

// Mock returns the underlying testify call for further configuration.
func (e *Expectation) Mock() *mock.Call { return e.call }

// Times replaces the call count bounds. See Options.Times.
func (e *Expectation) Times(v any) *Expectation {
	minCalls, maxCalls, err := ParseTimes(v)
	if err != nil {
		e.reg.fail(err.Error())
		return e
	}
	e.minCalls, e.maxCalls = minCalls, maxCalls
	if maxCalls > 0 {
		e.call.Times(maxCalls)
	} else {
		e.call.Times(0)
	}
	return e
}

// Once expects exactly one call.
func (e *Expectation) Once() *Expectation { return e.Times(1) }

// Never expects no call at all.
func (e *Expectation) Never() *Expectation { return e.Times(0) }

// With replaces the expected arguments. See Options.Args.
func (e *Expectation) With(args ...any) *Expectation {
	if args == nil {
		args = []any{}
	}
	e.args = matchers(args)
	return e
}

// WithAnyArgs accepts any argument list.
func (e *Expectation) WithAnyArgs() *Expectation {
	e.args = nil
	return e
}

// Return sets the return value, replacing any earlier Return,
// ReturnInOrder or ReturnArg. See Options.Return.
func (e *Expectation) Return(v any) *Expectation {
	e.ret, e.sequence, e.cursor, e.returnArg = v, nil, 0, -1
	if seq, ok := v.(ReturnSequence); ok {
		e.sequence = &seq
	}
	return e
}

// ReturnInOrder returns values one per call, repeating the last. It
// replaces any earlier return setting.
func (e *Expectation) ReturnInOrder(values ...any) *Expectation {
	seq := NewReturnSequence(values...)
	e.ret, e.sequence, e.cursor, e.returnArg = nil, &seq, 0, -1
	return e
}

// ReturnArg echoes the i-th argument.
func (e *Expectation) ReturnArg(i int) *Expectation {
	if i < 0 {
		e.reg.fail(fmt.Sprintf("function: %v: %d", ErrInvalidReturnArg, i))
		return e
	}
	e.returnArg = i
	return e
}

// matches is the testify argument matcher of this expectation.
func (e *Expectation) matches(actual []any) bool {
	if e.args == nil {
		return true
	}
	_, diffs := mock.Arguments(e.args).Diff(actual)
	return diffs == 0
}

// respond computes the return value: return_arg first, then a sequence,
// then a return callable, then the literal.
func (e *Expectation) respond(args []any) (any, error) {
	if e.returnArg >= 0 {
		if e.returnArg >= len(args) {
			return nil, fmt.Errorf("function: %s: return_arg %d out of range (%d arguments)", e.name, e.returnArg, len(args))
		}
		return args[e.returnArg], nil
	}
	if e.sequence != nil {
		v := e.sequence.At(e.cursor)
		e.cursor++
		return v, nil
	}
	if fn, ok := e.ret.(func(args ...any) any); ok {
		return fn(args...), nil
	}
	return e.ret, nil
}

func (e *Expectation) verify() error {
	if e.calls >= e.minCalls {
		return nil
	}
	return fmt.Errorf("function: %s: expected to be called %s, called %d time(s)", e.name, e.describeTimes(), e.calls)
}

func (e *Expectation) describeTimes() string {
	switch {
	case e.maxCalls == Unbounded:
		return fmt.Sprintf("at least %d time(s)", e.minCalls)
	case e.minCalls == e.maxCalls:
		return fmt.Sprintf("exactly %d time(s)", e.minCalls)
	case e.minCalls == 0:
		return fmt.Sprintf("at most %d time(s)", e.maxCalls)
	default:
		return fmt.Sprintf("between %d and %d time(s)", e.minCalls, e.maxCalls)
	}
}
