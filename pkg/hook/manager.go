package hook

import (
	"io"
	"log/slog"
	"strings"

	"github.com/flemzord/wpmock/pkg/value"
)

const (
	actionPrefix   = "action::"
	filterPrefix   = "filter::"
	callbackPrefix = "callback::"

	observedCallback = "callback"
)

func actionID(name string) string { return actionPrefix + name }
func filterID(name string) string { return filterPrefix + name }
func callbackID(kind Kind, name string) string {
	return callbackPrefix + string(kind) + "::" + name
}

// Manager owns the actions, filters and hooked callbacks of one test and
// tracks which of them are still pending.
//
// Not safe for concurrent use.
type Manager struct {
	policy   Policy
	observer Observer
	logger   *slog.Logger
	enc      *value.Encoder

	actions   map[string]*Action
	filters   map[string]*Filter
	callbacks map[string]*HookedCallback

	// expected holds one identifier per hook the test asked to observe,
	// removed the first time the hook is observed.
	expected []string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithObserver sets the invocation observer.
func WithObserver(o Observer) ManagerOption {
	return func(m *Manager) { m.observer = o }
}

// WithLogger sets the logger used to report misses.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates an empty manager. A nil policy is lenient.
func NewManager(policy Policy, opts ...ManagerOption) *Manager {
	m := &Manager{
		policy: policy,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		enc:    value.NewEncoder(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Flush()
	return m
}

// Action returns the named action, creating it on first use.
func (m *Manager) Action(name string) *Action {
	if a, ok := m.actions[name]; ok {
		return a
	}
	a := &Action{hook: hook[ActionResponder]{name: name, mgr: m}}
	m.actions[name] = a
	m.expected = append(m.expected, actionID(name))
	return a
}

// Filter returns the named filter, creating it on first use.
func (m *Manager) Filter(name string) *Filter {
	if f, ok := m.filters[name]; ok {
		return f
	}
	f := &Filter{hook: hook[FilterResponder]{name: name, mgr: m}}
	m.filters[name] = f
	m.expected = append(m.expected, filterID(name))
	return f
}

// Callback returns the hooked callback observer for (kind, name), creating
// it on first use.
func (m *Manager) Callback(name string, kind Kind) *HookedCallback {
	return m.callback(name, kind, true)
}

// CallbackUntracked is Callback without recording a pending expectation;
// used to assert that a callback is never added. A later Callback for the
// same hook still records it.
func (m *Manager) CallbackUntracked(name string, kind Kind) *HookedCallback {
	return m.callback(name, kind, false)
}

func (m *Manager) callback(name string, kind Kind, track bool) *HookedCallback {
	id := callbackID(kind, name)
	h, ok := m.callbacks[id]
	if !ok {
		h = &HookedCallback{hook: hook[HookedCallbackResponder]{name: name, mgr: m}, kind: kind}
		m.callbacks[id] = h
	}
	if track && !h.tracked {
		h.tracked = true
		m.expected = append(m.expected, id)
	}
	return h
}

// Fired returns how many times the named action fired, without creating it.
func (m *Manager) Fired(name string) int {
	if a, ok := m.actions[name]; ok {
		return a.fired
	}
	return 0
}

// Called removes the first pending entry equal to id. Unknown ids are ignored.
func (m *Manager) Called(id string) {
	for i, e := range m.expected {
		if e == id {
			m.expected = append(m.expected[:i], m.expected[i+1:]...)
			return
		}
	}
}

// AllActionsCalled reports whether no action is pending.
func (m *Manager) AllActionsCalled() bool {
	return len(m.pendingWith(actionPrefix)) == 0
}

// AllHooksAdded reports whether no hooked callback is pending.
func (m *Manager) AllHooksAdded() bool {
	return len(m.pendingWith(callbackPrefix)) == 0
}

// ExpectedActions lists the pending action names.
func (m *Manager) ExpectedActions() []string {
	return m.pendingWith(actionPrefix)
}

// ExpectedHooks lists the pending callbacks as "kind::name".
func (m *Manager) ExpectedHooks() []string {
	return m.pendingWith(callbackPrefix)
}

// Pending returns a copy of every pending identifier.
func (m *Manager) Pending() []string {
	return append([]string(nil), m.expected...)
}

func (m *Manager) pendingWith(prefix string) []string {
	var out []string
	for _, e := range m.expected {
		if rest, ok := strings.CutPrefix(e, prefix); ok {
			out = append(out, rest)
		}
	}
	return out
}

// Flush discards every hook, pending entry and object identity.
func (m *Manager) Flush() {
	m.actions = make(map[string]*Action)
	m.filters = make(map[string]*Filter)
	m.callbacks = make(map[string]*HookedCallback)
	m.expected = nil
	m.enc.Reset()
}

func (m *Manager) invokeAction(name string) {
	m.Called(actionID(name))
}

func (m *Manager) addHook(name string, kind Kind) {
	m.Called(callbackID(kind, name))
}

func (m *Manager) hit(kind, name string) {
	if m.observer != nil {
		m.observer.HookObserved(kind, name, true)
	}
}

// miss applies the strict-mode policy to an unmatched invocation.
func (m *Manager) miss(kind, name, msg string) {
	if m.observer != nil {
		m.observer.HookObserved(kind, name, false)
	}
	m.logger.Debug("hook: no matching expectation", "kind", kind, "hook", name)
	if m.policy != nil && m.policy.Strict() {
		m.policy.Fail(msg)
	}
}
