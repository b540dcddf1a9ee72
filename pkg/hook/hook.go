// Package hook emulates the platform's action and filter system for tests.
//
// A hook keeps a trie of argument expectations: each level is keyed by the
// encoded value of one call argument and each leaf holds a responder. Actions
// run a side effect when fired with a registered argument tuple, filters
// return a registered reply (or pass the value through), and hooked callbacks
// observe callback registrations rather than firings.
package hook

import (
	"github.com/flemzord/wpmock/pkg/value"
)

// Kind distinguishes the two hook families.
type Kind string

const (
	// KindAction hooks fire side effects.
	KindAction Kind = "action"

	// KindFilter hooks transform a value.
	KindFilter Kind = "filter"
)

// Policy decides what happens on an invocation that matches no expectation.
// When Strict reports true the miss is reported through Fail, which is
// expected not to return (it stops the running test).
type Policy interface {
	Strict() bool
	Fail(msg string)
}

// Observer is notified of every hook invocation. Optional.
type Observer interface {
	HookObserved(kind, name string, matched bool)
}

// node is either a leaf (responder set) or a branch (children set).
type node[R any] struct {
	leaf     *R
	children map[string]*node[R]
}

func newBranch[R any]() *node[R] {
	return &node[R]{children: make(map[string]*node[R])}
}

// trie keeps one root per registered arity, so tuples of different lengths
// never share a path.
type trie[R any] struct {
	roots map[int]*node[R]
}

func (t *trie[R]) insert(keys []string, r *R) {
	if t.roots == nil {
		t.roots = make(map[int]*node[R])
	}
	n, ok := t.roots[len(keys)]
	if !ok {
		n = newBranch[R]()
		t.roots[len(keys)] = n
	}
	last := len(keys) - 1
	for _, k := range keys[:last] {
		child, ok := n.children[k]
		if !ok {
			child = newBranch[R]()
			n.children[k] = child
		}
		n = child
	}
	n.children[keys[last]] = &node[R]{leaf: r}
}

func (t *trie[R]) lookup(keys []string) (*R, bool) {
	n, ok := t.roots[len(keys)]
	if !ok {
		return nil, false
	}
	for _, k := range keys {
		if n.children == nil {
			return nil, false
		}
		if n, ok = n.children[k]; !ok {
			return nil, false
		}
	}
	return n.leaf, n.leaf != nil
}

// hasFirst reports whether any tuple of the given arity starts with key.
func (t *trie[R]) hasFirst(arity int, key string) bool {
	n, ok := t.roots[arity]
	if !ok {
		return false
	}
	_, ok = n.children[key]
	return ok
}

// hook is the shared base of Action, Filter and HookedCallback.
type hook[R any] struct {
	name string
	mgr  *Manager
	trie trie[R]

	// argsNull answers invocations carrying no meaningful argument.
	argsNull *R
}

// Name returns the hook name.
func (h *hook[R]) Name() string { return h.name }

// register stores r under the encoded args. A lone nil (or no argument at
// all) registers the argsnull slot. Identical tuples overwrite.
func (h *hook[R]) register(args []any, r *R) {
	if len(args) == 0 || (len(args) == 1 && args[0] == nil) {
		h.argsNull = r
		return
	}
	h.trie.insert(h.keys(args), r)
}

func (h *hook[R]) lookup(args []any) (*R, bool) {
	return h.trie.lookup(h.keys(args))
}

func (h *hook[R]) keys(args []any) []string {
	keys := make([]string, len(args))
	for i, a := range args {
		keys[i] = h.mgr.enc.Encode(a)
	}
	return keys
}

func (h *hook[R]) encoder() *value.Encoder { return h.mgr.enc }
