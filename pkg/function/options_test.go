package function

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimes(t *testing.T) {
	tests := []struct {
		in       any
		min, max int
	}{
		{nil, 0, Unbounded},
		{0, 0, 0},
		{3, 3, 3},
		{int64(2), 2, 2},
		{"4", 4, 4},
		{"2+", 2, Unbounded},
		{"0+", 0, Unbounded},
		{"3-", 0, 3},
		{"1-3", 1, 3},
		{"2-2", 2, 2},
		{" 5 ", 5, 5},
	}
	for _, tt := range tests {
		minCalls, maxCalls, err := ParseTimes(tt.in)
		require.NoError(t, err, "ParseTimes(%v)", tt.in)
		assert.Equal(t, tt.min, minCalls, "min of %v", tt.in)
		assert.Equal(t, tt.max, maxCalls, "max of %v", tt.in)
	}
}

func TestParseTimesInvalid(t *testing.T) {
	for _, in := range []any{-1, "x", "3-1", "+", "a+", "-2", 1.5, []int{1}} {
		_, _, err := ParseTimes(in)
		if !errors.Is(err, ErrInvalidTimes) {
			t.Errorf("ParseTimes(%v) error = %v, want ErrInvalidTimes", in, err)
		}
	}
}

func TestReturnSequenceRepeatsLast(t *testing.T) {
	seq := NewReturnSequence(1, 2)
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, 1, seq.At(0))
	assert.Equal(t, 2, seq.At(1))
	assert.Equal(t, 2, seq.At(2))
	assert.Equal(t, 2, seq.At(10))

	assert.Nil(t, NewReturnSequence().At(0))
}

func TestReturnSequenceCopiesValues(t *testing.T) {
	values := []any{"a"}
	seq := NewReturnSequence(values...)
	values[0] = "b"
	assert.Equal(t, "a", seq.At(0))
}

func TestParseReturnArg(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{nil, -1},
		{false, -1},
		{true, 0},
		{2, 2},
		{"1", 1},
	}
	for _, tt := range tests {
		got, err := parseReturnArg(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "parseReturnArg(%v)", tt.in)
	}

	_, err := parseReturnArg(-1)
	assert.ErrorIs(t, err, ErrInvalidReturnArg)
}

func TestMatchersWrapPredicates(t *testing.T) {
	assert.Nil(t, matchers(nil))

	got := matchers([]any{"x", func(n int) bool { return n > 1 }, func() {}})
	require.Len(t, got, 3)
	assert.Equal(t, "x", got[0])
	assert.NotEqual(t, "x", got[1])
	assert.False(t, isPredicate(got[2]))
}
