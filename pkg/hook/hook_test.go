package hook

import (
	"slices"
	"testing"

	"github.com/flemzord/wpmock/pkg/value"
)

// recordingPolicy records failures instead of stopping the test.
type recordingPolicy struct {
	strict   bool
	failures []string
}

func (p *recordingPolicy) Strict() bool    { return p.strict }
func (p *recordingPolicy) Fail(msg string) { p.failures = append(p.failures, msg) }

type observation struct {
	kind, name string
	matched    bool
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) HookObserved(kind, name string, matched bool) {
	o.seen = append(o.seen, observation{kind, name, matched})
}

type service struct{ id int }

func (s *service) Boot() {}

func TestAction_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager(&recordingPolicy{})
	fired := 0
	m.Action("save_post").With(42, "draft").Perform(func() { fired++ })

	m.Action("save_post").React([]any{42, "draft"})
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	m.Action("save_post").React([]any{42, "publish"})
	m.Action("save_post").React([]any{43, "draft"})
	if fired != 1 {
		t.Errorf("differing tuples should not fire; fired = %d", fired)
	}
	if got := m.Action("save_post").Fired(); got != 3 {
		t.Errorf("Fired() = %d, want 3", got)
	}
}

func TestAction_NoArguments(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	fired := 0
	m.Action("init").With(nil).Perform(func() { fired++ })

	m.Action("init").React(nil)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// A one-argument firing never reaches the argsnull responder.
	m.Action("init").React([]any{"x"})
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestAction_SilentByDefault(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{}
	m := NewManager(p)
	m.Action("init").React([]any{"anything"})
	m.Action("init").React(nil)

	if len(p.failures) != 0 {
		t.Errorf("unexpected failures: %v", p.failures)
	}
}

func TestAction_StrictMiss(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{strict: true}
	m := NewManager(p)
	m.Action("init").React([]any{1})

	want := []string{"Unexpected use of do_action for action init"}
	if !slices.Equal(p.failures, want) {
		t.Errorf("failures = %v, want %v", p.failures, want)
	}
}

func TestAction_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	var got string
	m.Action("a").With("x").Perform(func() { got = "first" })
	m.Action("a").With("x").Perform(func() { got = "second" })

	m.Action("a").React([]any{"x"})
	if got != "second" {
		t.Errorf("got %q, want %q", got, "second")
	}
}

func TestAction_MixedArities(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	var got []string
	m.Action("a").With("x").Perform(func() { got = append(got, "one") })
	m.Action("a").With("x", "y").Perform(func() { got = append(got, "two") })

	m.Action("a").React([]any{"x"})
	m.Action("a").React([]any{"x", "y"})
	m.Action("a").React([]any{"x", "y", "z"})

	if !slices.Equal(got, []string{"one", "two"}) {
		t.Errorf("got %v, want [one two]", got)
	}
}

func TestAction_ClosureArgumentsUnify(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	fired := 0
	m.Action("register").With(value.ClosureMarker).Perform(func() { fired++ })

	m.Action("register").React([]any{func() {}})
	m.Action("register").React([]any{func(int) {}})
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
}

func TestAction_ObjectIdentity(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	a, b := &service{id: 1}, &service{id: 1}
	fired := 0
	m.Action("boot").With(a).Perform(func() { fired++ })

	m.Action("boot").React([]any{b})
	m.Action("boot").React([]any{a})
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestFilter_ReplyAndPassThrough(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{}
	m := NewManager(p)
	m.Filter("title").With("x").Reply("Y")

	if got := m.Filter("title").Apply([]any{"x"}); got != "Y" {
		t.Errorf("Apply(x) = %v, want Y", got)
	}
	if got := m.Filter("title").Apply([]any{"z"}); got != "z" {
		t.Errorf("Apply(z) = %v, want z", got)
	}
	if got := m.Filter("unregistered").Apply([]any{"value"}); got != "value" {
		t.Errorf("unregistered filter = %v, want value", got)
	}
	if len(p.failures) != 0 {
		t.Errorf("unexpected failures: %v", p.failures)
	}
}

func TestFilter_ExtraArgumentsArePartOfTheKey(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.Filter("price").With(10, "EUR").Reply(12)

	if got := m.Filter("price").Apply([]any{10, "EUR"}); got != 12 {
		t.Errorf("got %v, want 12", got)
	}
	if got := m.Filter("price").Apply([]any{10, "USD"}); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
	if got := m.Filter("price").Apply([]any{10}); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestFilter_InvokedValue(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.Filter("content").With("a", 2).Reply(InvokedFilterValue(func(args ...any) any {
		return args[0].(string) + "!" + value.Describe(args[1])
	}))

	if got := m.Filter("content").Apply([]any{"a", 2}); got != "a!2" {
		t.Errorf("got %v, want a!2", got)
	}
}

func TestFilter_ArgsNull(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{strict: true}
	m := NewManager(p)

	if got := m.Filter("empty").Apply([]any{nil}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if len(p.failures) != 1 {
		t.Fatalf("failures = %v, want one", p.failures)
	}

	m.Filter("empty").With(nil).Reply("filled")
	if got := m.Filter("empty").Apply([]any{nil}); got != "filled" {
		t.Errorf("got %v, want filled", got)
	}
}

func TestFilter_StrictMissStillPassesThrough(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{strict: true}
	m := NewManager(p)

	if got := m.Filter("title").Apply([]any{"keep"}); got != "keep" {
		t.Errorf("got %v, want keep", got)
	}
	want := []string{"Unexpected use of apply_filters for filter title"}
	if !slices.Equal(p.failures, want) {
		t.Errorf("failures = %v, want %v", p.failures, want)
	}
}

func TestHookedCallback_ExactTriple(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{}
	m := NewManager(p)
	hits := 0
	m.Callback("init", KindAction).With("my_setup", 10, 1).Perform(func() { hits++ })

	m.Callback("init", KindAction).React("my_setup", 10, 1)
	m.Callback("init", KindAction).React("my_setup", 20, 1)
	m.Callback("init", KindAction).React("my_setup", 10, 2)

	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if got := m.Callback("init", KindAction).Unmatched(); got != "my_setup" {
		t.Errorf("Unmatched() = %v", got)
	}
}

func TestHookedCallback_AnyInstance(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	hits := 0
	cb := value.Method{Receiver: value.AnyInstanceOf(&service{}), Name: "Boot"}
	m.Callback("init", KindAction).With(cb, 10, 1).Perform(func() { hits++ })

	m.Callback("init", KindAction).React(value.Method{Receiver: &service{id: 7}, Name: "Boot"}, 10, 1)
	m.Callback("init", KindAction).React(value.Method{Receiver: &service{id: 8}, Name: "Boot"}, 10, 1)
	m.Callback("init", KindAction).React(value.Method{Receiver: &service{id: 8}, Name: "Halt"}, 10, 1)

	if hits != 2 {
		t.Errorf("hits = %d, want 2", hits)
	}
}

func TestHookedCallback_StrictMessage(t *testing.T) {
	t.Parallel()

	p := &recordingPolicy{strict: true}
	m := NewManager(p)
	m.Callback("the_content", KindFilter).React(value.Method{Receiver: &service{}, Name: "Boot"}, 10, 1)
	m.Callback("init", KindAction).React(func() {}, 10, 1)

	want := []string{
		"Unexpected use of add_filter for filter the_content with callback hook.service::Boot",
		"Unexpected use of add_action for action init with callback Closure",
	}
	if !slices.Equal(p.failures, want) {
		t.Errorf("failures = %v, want %v", p.failures, want)
	}
}

func TestManager_PendingLifecycle(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.Action("init")
	m.Action("init")
	m.Callback("wp_head", KindAction)

	if m.AllActionsCalled() {
		t.Error("init should be pending")
	}
	if got := m.ExpectedActions(); !slices.Equal(got, []string{"init"}) {
		t.Errorf("ExpectedActions() = %v, want [init]", got)
	}
	if got := m.ExpectedHooks(); !slices.Equal(got, []string{"action::wp_head"}) {
		t.Errorf("ExpectedHooks() = %v, want [action::wp_head]", got)
	}

	m.Action("init").React(nil)
	if !m.AllActionsCalled() {
		t.Error("init should no longer be pending")
	}

	m.Callback("wp_head", KindAction).React("cb", 10, 1)
	if !m.AllHooksAdded() {
		t.Error("wp_head callback should no longer be pending")
	}
}

func TestManager_CalledRemovesFirstMatchOnly(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.expected = []string{"action::a", "action::b", "action::a"}

	m.Called("action::a")
	if got := m.Pending(); !slices.Equal(got, []string{"action::b", "action::a"}) {
		t.Errorf("Pending() = %v", got)
	}

	m.Called("action::missing")
	if len(m.Pending()) != 2 {
		t.Errorf("removing an unknown id should be a no-op")
	}
}

func TestManager_CallbackUntracked(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.CallbackUntracked("init", KindAction)
	if !m.AllHooksAdded() {
		t.Error("untracked callback should not be pending")
	}
	if m.Callback("init", KindAction) != m.CallbackUntracked("init", KindAction) {
		t.Error("tracked and untracked lookups should share the instance")
	}
}

func TestManager_TrackedAfterUntracked(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.CallbackUntracked("init", KindAction)
	m.Callback("init", KindAction)
	m.Callback("init", KindAction)

	if got := m.ExpectedHooks(); len(got) != 1 || got[0] != "action::init" {
		t.Fatalf("ExpectedHooks() = %v, want [action::init]", got)
	}

	m.Callback("init", KindAction).React("cb", 10, 1)
	if !m.AllHooksAdded() {
		t.Errorf("pending after add: %v", m.Pending())
	}
	m.Callback("init", KindAction)
	if !m.AllHooksAdded() {
		t.Errorf("satisfied callback requested again should stay satisfied: %v", m.Pending())
	}
}

func TestManager_Flush(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	fired := 0
	m.Action("init").With(nil).Perform(func() { fired++ })
	m.Flush()

	if len(m.Pending()) != 0 {
		t.Errorf("Pending() = %v after flush", m.Pending())
	}
	m.Action("init").React(nil)
	if fired != 0 {
		t.Error("flushed expectation still fired")
	}
}

func TestManager_Observer(t *testing.T) {
	t.Parallel()

	o := &recordingObserver{}
	m := NewManager(nil, WithObserver(o))
	m.Filter("title").With("a").Reply("b")

	m.Filter("title").Apply([]any{"a"})
	m.Action("init").React(nil)
	m.Callback("init", KindAction).React("cb", 10, 1)

	want := []observation{
		{"filter", "title", true},
		{"action", "init", false},
		{"callback", "init", false},
	}
	if !slices.Equal(o.seen, want) {
		t.Errorf("observations = %v, want %v", o.seen, want)
	}
}

func TestManager_FiredDoesNotCreate(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	if got := m.Fired("init"); got != 0 {
		t.Errorf("Fired() = %d, want 0", got)
	}
	if len(m.Pending()) != 0 {
		t.Errorf("Fired should not create the action; pending = %v", m.Pending())
	}

	m.Action("init").React(nil)
	m.Action("init").React([]any{1})
	if got := m.Fired("init"); got != 2 {
		t.Errorf("Fired() = %d, want 2", got)
	}
}
