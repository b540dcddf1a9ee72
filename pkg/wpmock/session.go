// Package wpmock is a test double for code written against the WordPress
// hook and function API.
//
// A Session owns every mock of one test. Open binds it as the wp platform
// and registers its Close with t.Cleanup, so production code calling the
// wp facade talks to the session until the test ends:
//
//	s := wpmock.Open(t)
//	s.UserFunction("get_option", function.Options{Args: []any{"siteurl"}, Return: "https://example.test"})
//	s.ExpectAction("init")
//
//	plugin.Boot()
//
//	s.AssertActionsCalled()
package wpmock

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/flemzord/wpmock/internal/config"
	"github.com/flemzord/wpmock/pkg/function"
	"github.com/flemzord/wpmock/pkg/hook"
	"github.com/flemzord/wpmock/pkg/wp"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace"
)

// TestingT is the subset of *testing.T a session needs.
type TestingT interface {
	mock.TestingT
	Helper()
	Cleanup(func())
}

// Config is the YAML session configuration.
type Config = config.Config

// LoadConfig reads and validates a session configuration file.
func LoadConfig(path string) (*Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Option configures a session.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	output         io.Writer
	patching       bool
	tracerProvider trace.TracerProvider
	cfg            *Config
}

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOutput copies everything echo-style functions print to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithPatching allows native functions to be mocked.
func WithPatching() Option {
	return func(o *options) { o.patching = true }
}

// WithTracerProvider sets the provider of the session tracer. Defaults to
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.cfg = cfg }
}

var (
	activeMu sync.Mutex
	active   *Session
)

// Session holds the hook and function mocks of one test.
//
// Not safe for concurrent use.
type Session struct {
	t         TestingT
	logger    *slog.Logger
	output    bytes.Buffer
	out       io.Writer
	events    *hook.Manager
	functions *function.Registry
	telemetry *telemetry

	intercepts []*intercept
	restore    func()
	closed     bool
}

// Open starts a session for t and binds it as the wp platform. A session
// left open by an earlier test is flushed first.
func Open(t TestingT, opts ...Option) *Session {
	t.Helper()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg != nil && o.cfg.StrictMode {
		ActivateStrictMode()
	}
	Bootstrap()

	s := &Session{t: t, logger: sessionLogger(o)}
	s.telemetry = newTelemetry(s, o.tracerProvider)

	var out io.Writer = &s.output
	if o.output != nil {
		out = io.MultiWriter(&s.output, o.output)
	}
	s.out = out
	pol := policy{t: t}
	s.events = hook.NewManager(pol,
		hook.WithObserver(s.telemetry),
		hook.WithLogger(s.logger),
	)
	s.functions = function.NewRegistry(t, pol,
		function.WithPatching(o.patching || (o.cfg != nil && o.cfg.Patching)),
		function.WithObserver(s.telemetry),
		function.WithLogger(s.logger),
		function.WithOutput(out),
	)

	activeMu.Lock()
	stale := active
	active = s
	activeMu.Unlock()
	if stale != nil {
		stale.logger.Warn("flushing session left open by a previous test")
		stale.abandon()
	}

	s.restore = wp.Use(s)
	t.Cleanup(s.Close)

	if o.cfg != nil {
		s.apply(o.cfg)
	}
	s.logger.Debug("session opened", "strict", StrictMode())
	return s
}

func sessionLogger(o options) *slog.Logger {
	l := o.logger
	if l == nil && o.cfg != nil {
		if lvl, ok := o.cfg.Level(); ok {
			l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		}
	}
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", "wpmock")
}

// apply registers the functions a configuration declares.
func (s *Session) apply(cfg *Config) {
	s.t.Helper()
	for _, name := range config.Resolve(cfg) {
		for _, opts := range cfg.Functions[name] {
			s.UserFunction(name, opts)
		}
	}
	for _, name := range cfg.Echo {
		s.EchoFunction(name)
	}
	for _, name := range cfg.Passthru {
		s.PassthruFunction(name)
	}
}

// Close verifies every function expectation and intercept, then discards
// all mocks and unbinds the session. Calling Close again does nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.t.Helper()
	s.closed = true

	if err := s.functions.Verify(); err != nil {
		s.t.Errorf("%v", err)
	}
	for _, ic := range s.intercepts {
		ic.verify(s.t)
	}

	s.abandon()
	s.logger.Debug("session closed")
}

// abandon discards the session state without verifying it.
func (s *Session) abandon() {
	s.closed = true
	s.events.Flush()
	s.functions.Flush()
	s.intercepts = nil

	if s.restore != nil {
		s.restore()
		s.restore = nil
	}
	activeMu.Lock()
	if active == s {
		active = nil
	}
	activeMu.Unlock()
}

// Output returns everything echo-style functions printed.
func (s *Session) Output() string { return s.output.String() }

// Events returns the hook manager.
func (s *Session) Events() *hook.Manager { return s.events }

// Functions returns the function registry.
func (s *Session) Functions() *function.Registry { return s.functions }
