package ascii85

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FromBase(t *testing.T) {
	require.Equal(t, uint64(0), fromBase(rawRadix, nil))
	require.Equal(t, uint64(0x68656c6c), fromBase(rawRadix, []byte("hell")))
	require.Equal(t, uint64(math.MaxUint32), fromBase(rawRadix, []byte{0xff, 0xff, 0xff, 0xff}))
	require.Equal(t, uint64(85*85*85*85*85-1), fromBase(encodedRadix, []byte{84, 84, 84, 84, 84}))
}

func Test_ToBase(t *testing.T) {
	digits := make([]byte, encodedGroupSize)

	toBase(encodedRadix, digits, 0)
	require.Equal(t, []byte{0, 0, 0, 0, 0}, digits, "leading zeros must be kept")

	toBase(encodedRadix, digits, 84)
	require.Equal(t, []byte{0, 0, 0, 0, 84}, digits)

	toBase(encodedRadix, digits, math.MaxUint32)
	require.Equal(t, []byte("s8W-!"), addFirstDigit(digits))

	raw := make([]byte, rawGroupSize)
	toBase(rawRadix, raw, math.MaxUint32+1)
	require.Equal(t, []byte{0, 0, 0, 0}, raw, "digits above the width must be dropped")
}

func Test_BaseRoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, 84, 85, 256, 0x01020304, 0x7fffffff, math.MaxUint32} {
		raw := make([]byte, rawGroupSize)
		toBase(rawRadix, raw, value)
		require.Equal(t, value, fromBase(rawRadix, raw))

		digits := make([]byte, encodedGroupSize)
		toBase(encodedRadix, digits, value)
		require.Equal(t, value, fromBase(encodedRadix, digits))
	}
}

func Test_Padding(t *testing.T) {
	for n, want := range []int{0, 3, 2, 1, 0, 3, 2, 1, 0} {
		require.Equalf(t, want, padding(n, rawGroupSize), "padding(%d, 4)", n)
	}
	for n, want := range []int{0, 4, 3, 2, 1, 0, 4} {
		require.Equalf(t, want, padding(n, encodedGroupSize), "padding(%d, 5)", n)
	}
}

func addFirstDigit(digits []byte) []byte {
	res := make([]byte, len(digits))
	for k, d := range digits {
		res[k] = d + firstDigit
	}
	return res
}
