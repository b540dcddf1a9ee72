package hook

import "fmt"

// Action reacts to do_action calls.
type Action struct {
	hook[ActionResponder]
	fired int
}

// ActionResponder is the trigger bound to one argument tuple.
type ActionResponder struct {
	callback func()
}

// Perform sets the side effect run when the tuple fires.
func (r *ActionResponder) Perform(fn func()) *ActionResponder {
	r.callback = fn
	return r
}

func (r *ActionResponder) react() {
	if r.callback != nil {
		r.callback()
	}
}

// With registers an expectation for the given argument tuple and returns its
// responder. With(nil) or With() expects the action fired with no arguments.
func (a *Action) With(args ...any) *ActionResponder {
	r := &ActionResponder{}
	a.register(args, r)
	return r
}

// Fired returns how many times the action has fired.
func (a *Action) Fired() int { return a.fired }

// React handles one firing. The registered arguments only select which
// responder runs; the responder itself takes no arguments.
func (a *Action) React(args []any) {
	a.mgr.invokeAction(a.name)
	a.fired++

	var (
		r  *ActionResponder
		ok bool
	)
	if len(args) == 0 {
		r, ok = a.argsNull, a.argsNull != nil
	} else {
		r, ok = a.lookup(args)
	}
	if !ok {
		a.mgr.miss(string(KindAction), a.name, fmt.Sprintf("Unexpected use of do_action for action %s", a.name))
		return
	}
	a.mgr.hit(string(KindAction), a.name)
	r.react()
}
