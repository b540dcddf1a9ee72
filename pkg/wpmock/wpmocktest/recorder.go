// Package wpmocktest provides test doubles for the wpmock package.
package wpmocktest

import (
	"fmt"
	"slices"
	"sync"

	"github.com/flemzord/wpmock/pkg/wpmock"
)

// failNow is the panic value FailNow unwinds with.
type failNow struct{}

// Recorder is a wpmock.TestingT that records failures instead of failing
// the real test. FailNow panics; wrap calls that may fail in Capture.
type Recorder struct {
	mu       sync.Mutex
	errors   []string
	logs     []string
	failed   bool
	cleanups []func()
}

// Compile-time interface check.
var _ wpmock.TestingT = (*Recorder)(nil)

// Errorf records a failure.
func (r *Recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
	r.failed = true
}

// Logf records a log line.
func (r *Recorder) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

// FailNow marks the recorder failed and unwinds to the enclosing Capture.
func (r *Recorder) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	panic(failNow{})
}

// Helper implements wpmock.TestingT.
func (r *Recorder) Helper() {}

// Cleanup registers fn to run on RunCleanups.
func (r *Recorder) Cleanup(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleanups = append(r.cleanups, fn)
}

// RunCleanups runs the registered cleanups, last registered first, inside
// Capture. It reports whether any of them called FailNow.
func (r *Recorder) RunCleanups() bool {
	r.mu.Lock()
	fns := r.cleanups
	r.cleanups = nil
	r.mu.Unlock()

	stopped := false
	for _, fn := range slices.Backward(fns) {
		if r.Capture(fn) {
			stopped = true
		}
	}
	return stopped
}

// Capture runs fn and reports whether it called FailNow.
func (r *Recorder) Capture(fn func()) (stopped bool) {
	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(failNow); !ok {
				panic(v)
			}
			stopped = true
		}
	}()
	fn()
	return false
}

// Failed reports whether Errorf or FailNow was called.
func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Errors returns the recorded failure messages.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.errors)
}

// Logs returns the recorded log lines.
func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.logs)
}
