package wpmock

import "github.com/flemzord/wpmock/pkg/function"

// UserFunction mocks the platform function name. Each call layers another
// expectation; see function.Options. Invalid options fail the test.
func (s *Session) UserFunction(name string, opts ...function.Options) *function.Expectation {
	s.t.Helper()
	exp, err := s.functions.Register(name, first(opts))
	if err != nil {
		s.t.Errorf("%v", err)
		s.t.FailNow()
		return nil
	}
	return exp
}

// EchoFunction mocks name to print its first argument. An explicit Return
// in opts wins.
func (s *Session) EchoFunction(name string, opts ...function.Options) *function.Expectation {
	s.t.Helper()
	o := first(opts)
	if o.Return == nil {
		o.Return = func(args ...any) any {
			if len(args) > 0 {
				function.WriteEcho(s.out, args[0])
			}
			return nil
		}
	}
	return s.UserFunction(name, o)
}

// PassthruFunction mocks name to return its first argument. An explicit
// Return in opts wins.
func (s *Session) PassthruFunction(name string, opts ...function.Options) *function.Expectation {
	s.t.Helper()
	o := first(opts)
	if o.Return == nil && o.ReturnInOrder == nil && o.ReturnArg == nil {
		o.ReturnArg = 0
	}
	return s.UserFunction(name, o)
}

// Alias mocks name to forward its arguments to target, either the name of
// another platform function or a func(args ...any) any.
func (s *Session) Alias(name string, target any, opts ...function.Options) *function.Expectation {
	s.t.Helper()
	var call func(args ...any) any
	switch t := target.(type) {
	case string:
		if err := function.ValidateName(t); err != nil {
			s.t.Errorf("%v", err)
			s.t.FailNow()
			return nil
		}
		call = func(args ...any) any { return s.Call(t, args) }
	case func(args ...any) any:
		call = t
	default:
		s.t.Errorf("wpmock: alias %s: unsupported target %T", name, target)
		s.t.FailNow()
		return nil
	}
	o := first(opts)
	o.Return = call
	return s.UserFunction(name, o)
}

func first(opts []function.Options) function.Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return function.Options{}
}
