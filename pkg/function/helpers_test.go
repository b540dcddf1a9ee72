package function

import (
	"fmt"
	"testing"
)

// fakeT is a mock.TestingT whose FailNow unwinds with a panic.
type fakeT struct {
	errors []string
}

type failNow struct{}

func (f *fakeT) Logf(string, ...any) {}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) FailNow() { panic(failNow{}) }

// capture runs fn and reports whether it failed through FailNow.
func (f *fakeT) capture(fn func()) (failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failNow); !ok {
				panic(r)
			}
			failed = true
		}
	}()
	fn()
	return false
}

type testPolicy struct {
	strict bool
	t      *fakeT
}

func (p testPolicy) Strict() bool { return p.strict }

func (p testPolicy) Fail(msg string) {
	p.t.Errorf("%s", msg)
	p.t.FailNow()
}

type callLog []string

func (c *callLog) FunctionCalled(name, outcome string) {
	*c = append(*c, name+":"+outcome)
}

func newTestRegistry(t *testing.T, strict bool, opts ...Option) (*Registry, *fakeT) {
	t.Helper()
	t.Cleanup(resetSymbols)
	ft := &fakeT{}
	return NewRegistry(ft, testPolicy{strict: strict, t: ft}, opts...), ft
}
