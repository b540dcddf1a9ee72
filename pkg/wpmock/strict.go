package wpmock

import "sync/atomic"

var (
	strictMode   atomic.Bool
	bootstrapped atomic.Bool
)

// ActivateStrictMode makes unmatched hooks and unmocked functions fail the
// test. It only takes effect before the first session opens and reports
// whether it did.
func ActivateStrictMode() bool {
	if bootstrapped.Load() {
		return false
	}
	strictMode.Store(true)
	return true
}

// StrictMode reports whether strict mode is active.
func StrictMode() bool { return strictMode.Load() }

// Bootstrap locks the strict mode setting. Open calls it; calling it from
// TestMain pins the setting before any test runs.
func Bootstrap() { bootstrapped.Store(true) }

// resetBootstrap unlocks and clears strict mode. Only for testing.
func resetBootstrap() {
	bootstrapped.Store(false)
	strictMode.Store(false)
}

// policy applies strict mode on behalf of a session.
type policy struct {
	t TestingT
}

func (p policy) Strict() bool { return StrictMode() }

func (p policy) Fail(msg string) {
	p.t.Helper()
	p.t.Errorf("%s", msg)
	p.t.FailNow()
}
