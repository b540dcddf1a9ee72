package value

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Assoc is a keyed collection that remembers insertion order, the shape of
// associative arrays passed through hooks. Its encoding depends on both keys
// and order.
type Assoc struct {
	pairs *orderedmap.OrderedMap[string, any]
}

// NewAssoc returns an empty collection.
func NewAssoc() *Assoc {
	return &Assoc{pairs: orderedmap.New[string, any]()}
}

// AssocOf builds a collection from alternating keys and values.
// It panics on an odd argument count or a non-string key.
func AssocOf(kv ...any) *Assoc {
	if len(kv)%2 != 0 {
		panic("value: AssocOf requires key/value pairs")
	}
	a := NewAssoc()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("value: AssocOf keys must be strings")
		}
		a.Set(key, kv[i+1])
	}
	return a
}

// Set stores v under key. Replacing a key keeps its original position.
func (a *Assoc) Set(key string, v any) *Assoc {
	a.pairs.Set(key, v)
	return a
}

// Get returns the value stored under key.
func (a *Assoc) Get(key string) (any, bool) {
	return a.pairs.Get(key)
}

// Delete removes key.
func (a *Assoc) Delete(key string) {
	a.pairs.Delete(key)
}

// Len returns the number of entries.
func (a *Assoc) Len() int { return a.pairs.Len() }

// Keys returns the keys in insertion order.
func (a *Assoc) Keys() []string {
	keys := make([]string, 0, a.pairs.Len())
	for p := a.pairs.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order.
func (a *Assoc) Each(fn func(key string, v any)) {
	for p := a.pairs.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}
