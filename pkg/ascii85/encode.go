package ascii85

import (
	"strings"
)

// Encode returns the Ascii85 representation of src, wrapped in "<~" and "~>".
func Encode(src []byte) string {
	padBy := padding(len(src), rawGroupSize)

	var sb strings.Builder
	sb.Grow(EncodedLen(len(src)))
	sb.WriteString(prefix)

	var raw [rawGroupSize]byte
	for i := 0; i < len(src); i += rawGroupSize {
		// The last group gets zero bytes appended...
		n := copy(raw[:], src[i:])
		for j := n; j < rawGroupSize; j++ {
			raw[j] = 0
		}

		digits, zero := encodeGroup(raw)

		// ...and loses as many characters as it got bytes. What is left of a padded group is never
		// shortened, even if it is all zeros.
		keep := encodedGroupSize
		if n < rawGroupSize {
			keep -= padBy
		} else if zero {
			sb.WriteByte(zeroGroup)
			continue
		}

		sb.Write(digits[:keep])
	}

	sb.WriteString(suffix)
	return sb.String()
}

// encodeGroup converts four bytes into five characters of the alphabet. It also reports if all bytes
// were zero.
func encodeGroup(raw [rawGroupSize]byte) (digits [encodedGroupSize]byte, zero bool) {
	value := fromBase(rawRadix, raw[:])
	toBase(encodedRadix, digits[:], value)
	for k := range digits {
		digits[k] += firstDigit
	}
	return digits, value == 0
}
