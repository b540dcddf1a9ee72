package wp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/flemzord/wpmock/pkg/function"
)

// Natives are real implementations: they run unless a session with patching
// enabled mocks them.
func init() {
	function.DefineNative("absint", absint)
	function.DefineNative("trailingslashit", trailingslashit)
	function.DefineNative("untrailingslashit", untrailingslashit)
	function.DefineNative("sanitize_key", sanitizeKey)
	function.DefineNative("zeroise", zeroise)
}

// Absint converts a value to a non-negative integer.
func Absint(v any) int {
	n, _ := Call("absint", v).(int)
	return n
}

// Trailingslashit appends a single trailing slash.
func Trailingslashit(s string) string { return str(Call("trailingslashit", s)) }

// Untrailingslashit removes trailing slashes and backslashes.
func Untrailingslashit(s string) string { return str(Call("untrailingslashit", s)) }

// SanitizeKey lowercases s and keeps only [a-z0-9_-].
func SanitizeKey(s string) string { return str(Call("sanitize_key", s)) }

// Zeroise pads n with leading zeros to threshold digits.
func Zeroise(n any, threshold int) string { return str(Call("zeroise", n, threshold)) }

// str converts a mocked return to string; non-strings become "".
func str(v any) string {
	s, _ := v.(string)
	return s
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case int32:
		return int(t)
	case uint:
		return int(t)
	case float64:
		return int(t)
	case float32:
		return int(t)
	case bool:
		if t {
			return 1
		}
	case string:
		s := strings.TrimSpace(t)
		end := 0
		for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
			end++
		}
		n, err := strconv.Atoi(s[:end])
		if err == nil {
			return n
		}
	}
	return 0
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}

func absint(args ...any) any {
	n := toInt(arg(args, 0))
	if n < 0 {
		if n == math.MinInt {
			return math.MaxInt
		}
		return -n
	}
	return n
}

func untrailingslashit(args ...any) any {
	return strings.TrimRight(toString(arg(args, 0)), `/\`)
}

func trailingslashit(args ...any) any {
	return untrailingslashit(args...).(string) + "/"
}

var keyPattern = regexp.MustCompile(`[^a-z0-9_\-]`)

func sanitizeKey(args ...any) any {
	return keyPattern.ReplaceAllString(strings.ToLower(toString(arg(args, 0))), "")
}

func zeroise(args ...any) any {
	return fmt.Sprintf("%0*d", toInt(arg(args, 1)), toInt(arg(args, 0)))
}
