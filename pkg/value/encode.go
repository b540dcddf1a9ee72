package value

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Encoder produces safe-offset keys. Objects are keyed by identity; each new
// identity gets a UUID that stays stable until Reset.
//
// Encoding is not collision-proof: collections are flattened by
// concatenation, so ["ab"] and ["a", "b"] share a key.
type Encoder struct {
	ids map[any]string
}

// NewEncoder returns an encoder with an empty identity table.
func NewEncoder() *Encoder {
	return &Encoder{ids: make(map[any]string)}
}

// Reset forgets every object identity.
func (e *Encoder) Reset() {
	e.ids = make(map[any]string)
}

// Encode returns the key of v.
func (e *Encoder) Encode(v any) string {
	switch x := v.(type) {
	case nil:
		return NullKey
	case string:
		if x == ClosureMarker {
			return ClosureKey
		}
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	case anyClosure:
		return ClosureKey
	case AnyInstance:
		return instancePrefix + x.Type
	case Method:
		return e.Encode(x.Receiver) + e.Encode(x.Name)
	case *Assoc:
		if x == nil {
			return NullKey
		}
		var b strings.Builder
		x.Each(func(key string, val any) {
			if !isNumericKey(key) {
				b.WriteString(key)
			}
			b.WriteString(e.Encode(val))
		})
		return b.String()
	}
	return e.encodeValue(reflect.ValueOf(v))
}

func (e *Encoder) encodeValue(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return "1"
		}
		return ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.String:
		if rv.String() == ClosureMarker {
			return ClosureKey
		}
		return rv.String()
	case reflect.Func:
		if rv.IsNil() {
			return NullKey
		}
		return ClosureKey
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return NullKey
		}
		return e.identity(rv.Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return NullKey
		}
		return e.Encode(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		for i := range rv.Len() {
			b.WriteString(e.Encode(rv.Index(i).Interface()))
		}
		return b.String()
	case reflect.Map:
		return e.encodeMap(rv)
	case reflect.Struct:
		return fmt.Sprintf("%#v", rv.Interface())
	default:
		return ""
	}
}

// encodeMap orders entries by key encoding; Go map iteration order is random.
func (e *Encoder) encodeMap(rv reflect.Value) string {
	type entry struct {
		sortKey string
		prefix  string
		val     string
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		sortKey := e.Encode(k.Interface())
		prefix := sortKey
		switch k.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			prefix = ""
		case reflect.String:
			if isNumericKey(k.String()) {
				prefix = ""
			}
		}
		entries = append(entries, entry{sortKey: sortKey, prefix: prefix, val: e.Encode(iter.Value().Interface())})
	}
	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.sortKey, b.sortKey) })

	var b strings.Builder
	for _, en := range entries {
		b.WriteString(en.prefix)
		b.WriteString(en.val)
	}
	return b.String()
}

func (e *Encoder) identity(obj any) string {
	if id, ok := e.ids[obj]; ok {
		return id
	}
	id := objectPrefix + uuid.NewString()
	e.ids[obj] = id
	return id
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// isNumericKey reports whether a collection key is a canonical decimal integer.
func isNumericKey(key string) bool {
	n, err := strconv.Atoi(key)
	return err == nil && strconv.Itoa(n) == key
}
