package wpmock

import (
	"fmt"
	"strings"

	"github.com/flemzord/wpmock/pkg/hook"
	"github.com/stretchr/testify/mock"
)

const interceptMethod = "intercepted"

// intercept is a one-method testify mock wired into a hook responder, used
// to verify that the responder ran (or never ran).
type intercept struct {
	what     string
	mock     *mock.Mock
	expected bool
}

func (s *Session) intercept(what string, expectCall bool) *intercept {
	ic := &intercept{what: what, mock: new(mock.Mock), expected: expectCall}
	ic.mock.Test(s.t)
	if expectCall {
		ic.mock.On(interceptMethod, mock.Anything).Return()
	}
	s.intercepts = append(s.intercepts, ic)
	return ic
}

// fire records a call. A call nobody expected fails immediately.
func (ic *intercept) fire(v any) {
	ic.mock.MethodCalled(interceptMethod, v)
}

func (ic *intercept) verify(t TestingT) {
	t.Helper()
	if ic.expected {
		if len(ic.mock.Calls) == 0 {
			t.Errorf("expected %s", ic.what)
		}
		return
	}
	ic.mock.AssertNotCalled(t, interceptMethod, mock.Anything)
}

// OnAction returns the named action to set up responders on.
func (s *Session) OnAction(name string) *hook.Action { return s.events.Action(name) }

// OnFilter returns the named filter to set up replies on.
func (s *Session) OnFilter(name string) *hook.Filter { return s.events.Filter(name) }

// OnHookAdded returns the observer of kind callbacks added to name.
func (s *Session) OnHookAdded(name string, kind hook.Kind) *hook.HookedCallback {
	return s.events.Callback(name, kind)
}

// InvokeAction fires an action the way do_action does.
func (s *Session) InvokeAction(name string, args ...any) {
	s.DoAction(name, args)
}

// AddHook registers callback the way add_action and add_filter do.
func (s *Session) AddHook(kind hook.Kind, name string, callback any, priority, acceptedArgs int) {
	s.RegisterHook(kind, name, callback, priority, acceptedArgs)
}

// ExpectAction expects name to fire with exactly args at least once.
func (s *Session) ExpectAction(name string, args ...any) {
	ic := s.intercept(fmt.Sprintf("action %s to fire with %s", name, describeArgs(args)), true)
	s.events.Action(name).With(args...).Perform(func() { ic.fire(name) })
}

// ExpectFilter expects name to be applied with exactly args (the filtered
// value first) at least once. The value is returned unchanged.
func (s *Session) ExpectFilter(name string, args ...any) {
	ic := s.intercept(fmt.Sprintf("filter %s to be applied with %s", name, describeArgs(args)), true)
	s.events.Filter(name).With(args...).Reply(hook.InvokedFilterValue(func(in ...any) any {
		v := in[0]
		ic.fire(v)
		return v
	}))
}

// ExpectHookAdded expects callback to be hooked to name with this priority
// and accepted argument count.
func (s *Session) ExpectHookAdded(kind hook.Kind, name string, callback any, priority, acceptedArgs int) {
	ic := s.intercept(fmt.Sprintf("add_%s for %s %s", kind, kind, name), true)
	s.events.Callback(name, kind).With(callback, priority, acceptedArgs).Perform(func() { ic.fire(name) })
}

// ExpectHookNotAdded fails the test if callback is hooked to name with this
// priority and accepted argument count.
func (s *Session) ExpectHookNotAdded(kind hook.Kind, name string, callback any, priority, acceptedArgs int) {
	ic := s.intercept(fmt.Sprintf("no add_%s for %s %s", kind, kind, name), false)
	s.events.CallbackUntracked(name, kind).With(callback, priority, acceptedArgs).Perform(func() { ic.fire(name) })
}

// ExpectActionAdded is ExpectHookAdded for actions.
func (s *Session) ExpectActionAdded(name string, callback any, priority, acceptedArgs int) {
	s.ExpectHookAdded(hook.KindAction, name, callback, priority, acceptedArgs)
}

// ExpectFilterAdded is ExpectHookAdded for filters.
func (s *Session) ExpectFilterAdded(name string, callback any, priority, acceptedArgs int) {
	s.ExpectHookAdded(hook.KindFilter, name, callback, priority, acceptedArgs)
}

// ExpectActionNotAdded is ExpectHookNotAdded for actions.
func (s *Session) ExpectActionNotAdded(name string, callback any, priority, acceptedArgs int) {
	s.ExpectHookNotAdded(hook.KindAction, name, callback, priority, acceptedArgs)
}

// ExpectFilterNotAdded is ExpectHookNotAdded for filters.
func (s *Session) ExpectFilterNotAdded(name string, callback any, priority, acceptedArgs int) {
	s.ExpectHookNotAdded(hook.KindFilter, name, callback, priority, acceptedArgs)
}

// AssertActionsCalled fails the test once, listing every expected action
// that has not fired.
func (s *Session) AssertActionsCalled() bool {
	s.t.Helper()
	pending := s.events.ExpectedActions()
	if len(pending) == 0 {
		return true
	}
	s.t.Errorf("Method failed to invoke actions: %s", strings.Join(pending, ", "))
	return false
}

// AssertHooksAdded fails the test once, listing every expected callback
// that has not been added.
func (s *Session) AssertHooksAdded() bool {
	s.t.Helper()
	pending := s.events.ExpectedHooks()
	if len(pending) == 0 {
		return true
	}
	s.t.Errorf("Method failed to add hooks: %s", strings.Join(pending, ", "))
	return false
}

func describeArgs(args []any) string {
	if len(args) == 0 {
		return "no arguments"
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
