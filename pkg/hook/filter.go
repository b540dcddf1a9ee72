package hook

import "fmt"

// InvokedFilterValue is a computed filter reply. It receives the full
// apply_filters argument list, the filtered value first.
type InvokedFilterValue func(args ...any) any

// Filter reacts to apply_filters calls.
type Filter struct {
	hook[FilterResponder]
}

// FilterResponder holds the reply for one argument tuple.
type FilterResponder struct {
	value any
}

// Reply sets the value returned for the tuple. An InvokedFilterValue is
// called instead of returned.
func (r *FilterResponder) Reply(v any) *FilterResponder {
	r.value = v
	return r
}

func (r *FilterResponder) send(args []any) any {
	if fn, ok := r.value.(InvokedFilterValue); ok {
		return fn(args...)
	}
	return r.value
}

// With registers a reply for the complete call signature, the value being
// filtered included.
func (f *Filter) With(args ...any) *FilterResponder {
	r := &FilterResponder{}
	f.register(args, r)
	return r
}

// Apply filters args[0]. Without a matching expectation the value is
// returned unchanged.
func (f *Filter) Apply(args []any) any {
	f.mgr.Called(filterID(f.name))

	if len(args) == 0 {
		args = []any{nil}
	}
	if len(args) == 1 && args[0] == nil {
		if f.argsNull == nil {
			f.mgr.miss(string(KindFilter), f.name, fmt.Sprintf("Unexpected use of apply_filters for filter %s", f.name))
			return nil
		}
		f.mgr.hit(string(KindFilter), f.name)
		return f.argsNull.send(args)
	}

	r, ok := f.lookup(args)
	if !ok {
		f.mgr.miss(string(KindFilter), f.name, fmt.Sprintf("Unexpected use of apply_filters for filter %s", f.name))
		return args[0]
	}
	f.mgr.hit(string(KindFilter), f.name)
	return r.send(args)
}
