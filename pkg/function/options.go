package function

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/stretchr/testify/mock"
)

// Any matches any single argument. It is testify's wildcard, so the literal
// string "mock.Anything" works in YAML fixtures too.
const Any = mock.Anything

// Unbounded is the maximum call count of an open-ended expectation.
const Unbounded = -1

// Options configures one expectation.
type Options struct {
	// Times is an exact count (int or numeric string), "N+" (at least N),
	// "N-" (at most N) or "N-M" (between N and M). Nil means any count.
	Times any `yaml:"times,omitempty"`

	// Args are the expected arguments, matched positionally. Elements are
	// literals, Any, predicates of the form func(T) bool, or testify
	// matchers. Nil accepts any arguments.
	Args []any `yaml:"args,omitempty"`

	// Return is a literal, a func(args ...any) any called with the actual
	// arguments, or a ReturnSequence.
	Return any `yaml:"return,omitempty"`

	// ReturnInOrder builds a ReturnSequence and takes precedence over Return.
	ReturnInOrder []any `yaml:"return_in_order,omitempty"`

	// ReturnArg echoes the argument at this index (true means 0). It takes
	// precedence over every other return option.
	ReturnArg any `yaml:"return_arg,omitempty"`
}

// ReturnSequence is an immutable list of return values consumed left to
// right; the last value repeats once exhausted.
type ReturnSequence struct {
	values []any
}

// NewReturnSequence copies values into a sequence.
func NewReturnSequence(values ...any) ReturnSequence {
	return ReturnSequence{values: slices.Clone(values)}
}

// Len returns the number of values.
func (s ReturnSequence) Len() int { return len(s.values) }

// At returns the value for the i-th call (zero based).
func (s ReturnSequence) At(i int) any {
	if len(s.values) == 0 {
		return nil
	}
	if i >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	return s.values[i]
}

// ParseTimes returns the call count bounds described by v. max is
// Unbounded for open-ended counts.
func ParseTimes(v any) (minCalls, maxCalls int, err error) {
	switch t := v.(type) {
	case nil:
		return 0, Unbounded, nil
	case int:
		return exactTimes(t, v)
	case int64:
		return exactTimes(int(t), v)
	case uint:
		return exactTimes(int(t), v)
	case string:
		return parseTimesString(strings.TrimSpace(t))
	}
	return 0, 0, fmt.Errorf("function: %w: %v", ErrInvalidTimes, v)
}

func exactTimes(n int, raw any) (int, int, error) {
	if n < 0 {
		return 0, 0, fmt.Errorf("function: %w: %v", ErrInvalidTimes, raw)
	}
	return n, n, nil
}

func parseTimesString(s string) (int, int, error) {
	bad := fmt.Errorf("function: %w: %q", ErrInvalidTimes, s)

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, 0, bad
		}
		return n, n, nil
	}
	if lo, ok := strings.CutSuffix(s, "+"); ok {
		n, err := strconv.Atoi(lo)
		if err != nil || n < 0 {
			return 0, 0, bad
		}
		return n, Unbounded, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, bad
	}
	n, err := strconv.Atoi(lo)
	if err != nil || n < 0 {
		return 0, 0, bad
	}
	if hi == "" {
		return 0, n, nil
	}
	m, err := strconv.Atoi(hi)
	if err != nil || m < n {
		return 0, 0, bad
	}
	return n, m, nil
}

// parseReturnArg returns the echoed argument index, or -1 when unset.
func parseReturnArg(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return -1, nil
	case bool:
		if t {
			return 0, nil
		}
		return -1, nil
	case int:
		if t >= 0 {
			return t, nil
		}
	case string:
		if n, err := strconv.Atoi(t); err == nil && n >= 0 {
			return n, nil
		}
	}
	return 0, fmt.Errorf("function: %w: %v", ErrInvalidReturnArg, v)
}

// matchers turns predicates into testify matchers; other values are kept.
// A nil slice stays nil (any arguments).
func matchers(args []any) []any {
	if args == nil {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		if isPredicate(a) {
			out[i] = mock.MatchedBy(a)
			continue
		}
		out[i] = a
	}
	return out
}

func isPredicate(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Func &&
		t.NumIn() == 1 && !t.IsVariadic() &&
		t.NumOut() == 1 && t.Out(0).Kind() == reflect.Bool
}
