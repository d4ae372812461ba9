package uniuri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	for _, length := range []int{1, 9, 100, 5000} {
		s := Digits(length)

		require.Len(t, s, length)
		assert.Empty(t, strings.Trim(s, "0123456789"), "only digits expected")
	}
}

func TestDigitsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 200)

	for i := 0; i < 200; i++ {
		s := Digits(9)
		_, dup := seen[s]
		assert.False(t, dup, "duplicate %q", s)
		seen[s] = struct{}{}
	}
}

func TestLenCharsZero(t *testing.T) {
	assert.Empty(t, newLenChars(0, DigitChars))
	assert.Empty(t, newLenChars(-1, DigitChars))
}

func TestLenCharsBadCharset(t *testing.T) {
	assert.Panics(t, func() { newLenChars(4, []byte("a")) })
	assert.Panics(t, func() { newLenChars(4, make([]byte, 257)) })
}

func TestLenCharsDistribution(t *testing.T) {
	s := newLenChars(30000, []byte("ab"))

	a := strings.Count(s, "a")
	assert.InDelta(t, 15000, a, 1000)
}
