package wpmock

import (
	"context"

	"github.com/flemzord/wpmock/pkg/function"
	"github.com/flemzord/wpmock/pkg/hook"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName   = "github.com/flemzord/wpmock"
	spanHook     = "wpmock.hook"
	spanFunction = "wpmock.function"
)

// telemetry counts and traces every hook event and function dispatch of a
// session. Each session has its own prometheus registry.
type telemetry struct {
	registry      *prometheus.Registry
	hookEvents    *prometheus.CounterVec
	functionCalls *prometheus.CounterVec
	tracer        trace.Tracer

	// ctx carries the span of the operation in progress. Operations started
	// while it runs become its children.
	ctx context.Context
}

var (
	_ hook.Observer     = (*telemetry)(nil)
	_ function.Observer = (*telemetry)(nil)
)

func newTelemetry(s *Session, tp trace.TracerProvider) *telemetry {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	t := &telemetry{
		registry: prometheus.NewRegistry(),
		hookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wpmock_hook_events_total",
			Help: "Hook events observed, by kind, hook and outcome.",
		}, []string{"kind", "hook", "outcome"}),
		functionCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wpmock_function_calls_total",
			Help: "Platform function calls, by function and dispatch outcome.",
		}, []string{"function", "outcome"}),
		tracer: tp.Tracer(tracerName),
		ctx:    context.Background(),
	}
	pending := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "wpmock_pending_expectations",
		Help: "Hooks expected by the test and not observed yet.",
	}, func() float64 {
		if s.events == nil {
			return 0
		}
		return float64(len(s.events.Pending()))
	})
	t.registry.MustRegister(t.hookEvents, t.functionCalls, pending)
	return t
}

// start opens a span for one operation, child of the operation in
// progress, and returns the function ending it.
func (t *telemetry) start(spanName, kind, name string) func() {
	prev := t.ctx
	ctx, span := t.tracer.Start(prev, spanName, trace.WithAttributes(
		attribute.String("wpmock.kind", kind),
		attribute.String("wpmock.name", name),
	))
	t.ctx = ctx
	return func() {
		span.End()
		t.ctx = prev
	}
}

// HookObserved implements hook.Observer.
func (t *telemetry) HookObserved(kind, name string, matched bool) {
	outcome := "unmatched"
	if matched {
		outcome = "matched"
	}
	t.hookEvents.WithLabelValues(kind, name, outcome).Inc()
	trace.SpanFromContext(t.ctx).SetAttributes(attribute.Bool("wpmock.matched", matched))
}

// FunctionCalled implements function.Observer.
func (t *telemetry) FunctionCalled(name, outcome string) {
	t.functionCalls.WithLabelValues(name, outcome).Inc()
	trace.SpanFromContext(t.ctx).SetAttributes(attribute.String("wpmock.outcome", outcome))
}

// Metrics returns the session metrics registry.
func (s *Session) Metrics() *prometheus.Registry { return s.telemetry.registry }
