package hook

import (
	"fmt"

	"github.com/flemzord/wpmock/pkg/value"
)

// HookedCallback observes add_action / add_filter registrations of a hook.
// Its trie always has three levels: callback, priority, accepted args.
type HookedCallback struct {
	hook[HookedCallbackResponder]
	kind Kind

	// tracked is set once the callback has been requested as pending.
	tracked bool

	// callback is the last callback that matched nothing.
	callback any
}

// HookedCallbackResponder is the trigger for one (callback, priority, args) triple.
type HookedCallbackResponder struct {
	callback func()
}

// Perform sets the function run when the triple is registered.
func (r *HookedCallbackResponder) Perform(fn func()) *HookedCallbackResponder {
	r.callback = fn
	return r
}

func (r *HookedCallbackResponder) react() {
	if r.callback != nil {
		r.callback()
	}
}

// Unmatched returns the last callback whose registration matched nothing.
func (h *HookedCallback) Unmatched() any { return h.callback }

// Kind returns the hook family observed.
func (h *HookedCallback) Kind() Kind { return h.kind }

// With expects callback to be registered with exactly this priority and
// accepted argument count. Use value.Method with a value.AnyInstance
// receiver to accept any instance of a type.
func (h *HookedCallback) With(callback any, priority, acceptedArgs int) *HookedCallbackResponder {
	r := &HookedCallbackResponder{}
	h.trie.insert(h.keys([]any{callback, priority, acceptedArgs}), r)
	return r
}

// React handles one registration of callback.
func (h *HookedCallback) React(callback any, priority, acceptedArgs int) {
	h.mgr.addHook(h.name, h.kind)

	enc := h.encoder()
	keys := []string{enc.Encode(callback), enc.Encode(priority), enc.Encode(acceptedArgs)}
	if m, ok := callback.(value.Method); ok {
		alt := enc.Encode(value.Method{Receiver: value.AnyInstanceOf(m.Receiver), Name: m.Name})
		if h.trie.hasFirst(len(keys), alt) {
			keys[0] = alt
		}
	}

	r, ok := h.trie.lookup(keys)
	if !ok {
		h.callback = callback
		h.mgr.miss(observedCallback, h.name, fmt.Sprintf(
			"Unexpected use of add_%s for %s %s with callback %s",
			h.kind, h.kind, h.name, value.Describe(callback),
		))
		return
	}
	h.mgr.hit(observedCallback, h.name)
	r.react()
}
