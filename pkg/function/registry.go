package function

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/stretchr/testify/mock"
)

// Option configures a Registry.
type Option func(*Registry)

// WithPatching allows native symbols to be mocked.
func WithPatching(enabled bool) Option {
	return func(r *Registry) { r.patching = enabled }
}

// WithLogger sets the registry logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver reports every dispatched call to o.
func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// WithOutput sets where echo-style functions write.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) { r.output = w }
}

// Registry holds the function mocks of one test.
type Registry struct {
	t        mock.TestingT
	policy   Policy
	observer Observer
	logger   *slog.Logger
	output   io.Writer
	patching bool

	handlers     *Handlers
	mocks        map[string]*mock.Mock
	expectations map[string][]*Expectation
	patched      map[string]bool
}

// NewRegistry creates a registry reporting expectation failures to t.
func NewRegistry(t mock.TestingT, policy Policy, opts ...Option) *Registry {
	r := &Registry{
		t:            t,
		policy:       policy,
		logger:       slog.New(slog.DiscardHandler),
		mocks:        make(map[string]*mock.Mock),
		expectations: make(map[string][]*Expectation),
		patched:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.handlers = NewHandlers(policy, r.output, r.observer)
	return r
}

// Handlers returns the dispatch table.
func (r *Registry) Handlers() *Handlers { return r.handlers }

// Register layers a new expectation on the mock of name, defining the
// symbol first if needed.
func (r *Registry) Register(name string, opts Options) (*Expectation, error) {
	name, err := r.ensure(name)
	if err != nil {
		return nil, err
	}

	exp, err := newExpectation(name, opts)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", name, err)
	}
	exp.reg = r

	m, ok := r.mocks[name]
	if !ok {
		m = new(mock.Mock)
		m.Test(r.t)
		r.mocks[name] = m
		r.handlers.Set(name, r.dispatcher(name, m))
	}
	exp.call = m.On(name, mock.MatchedBy(exp.matches)).Return(exp)
	if exp.maxCalls > 0 {
		exp.call.Times(exp.maxCalls)
	}
	r.expectations[name] = append(r.expectations[name], exp)

	r.logger.Debug("function expectation registered",
		"function", name,
		"times", exp.describeTimes(),
	)
	return exp, nil
}

// ensure validates name and makes sure it is a mockable symbol.
func (r *Registry) ensure(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	name = normalize(name)

	sym, ok := Lookup(name)
	if !ok {
		sym = Define(name, Forward)
		r.logger.Debug("function defined", "function", name)
	}
	if sym.IsNative() {
		if !r.patching {
			return "", fmt.Errorf("function: %w: %s", ErrNativeFunction, name)
		}
		if !r.patched[name] {
			r.patched[name] = true
			r.logger.Debug("native function patched", "function", name)
		}
	}
	return name, nil
}

// Patched reports whether the native symbol name is patched in this registry.
func (r *Registry) Patched(name string) bool {
	return r.patched[normalize(name)]
}

// Invoke calls name the way production code does: unpatched natives run
// their real implementation, everything else goes through the dispatch table.
func (r *Registry) Invoke(name string, args []any) any {
	name = normalize(name)
	if sym, ok := Lookup(name); ok && sym.IsNative() && !r.patched[name] {
		if r.observer != nil {
			r.observer.FunctionCalled(name, OutcomeNative)
		}
		return sym.Native(args...)
	}
	return r.handlers.Handle(name, args)
}

// Expectations returns the expectations registered for name, oldest first.
func (r *Registry) Expectations(name string) []*Expectation {
	return slices.Clone(r.expectations[normalize(name)])
}

// Verify reports every expectation called fewer times than its minimum.
func (r *Registry) Verify() error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(r.expectations)) {
		for _, exp := range r.expectations[name] {
			if err := exp.verify(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Flush discards every mock, handler and patch.
func (r *Registry) Flush() {
	r.handlers.Cleanup()
	clear(r.mocks)
	clear(r.expectations)
	clear(r.patched)
}

func (r *Registry) dispatcher(name string, m *mock.Mock) Handler {
	return func(args []any) any {
		if args == nil {
			args = []any{}
		}
		ret := m.MethodCalled(name, args)
		exp, ok := ret.Get(0).(*Expectation)
		if !ok {
			r.fail(fmt.Sprintf("function %s: no expectation answered the call", name))
			return nil
		}
		exp.calls++
		if exp.maxCalls == 0 {
			r.fail(fmt.Sprintf("function %s: expected not to be called", name))
			return nil
		}
		v, err := exp.respond(args)
		if err != nil {
			r.fail(err.Error())
			return nil
		}
		return v
	}
}

// fail reports a configuration or expectation failure. These are fatal
// regardless of strict mode.
func (r *Registry) fail(msg string) {
	if r.t == nil {
		panic(msg)
	}
	if h, ok := r.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	r.t.Errorf("%s", msg)
	r.t.FailNow()
}
