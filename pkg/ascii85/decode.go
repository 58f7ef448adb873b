package ascii85

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
)

// Decode returns the bytes represented by the Ascii85 string src. The "<~" and "~>" markers are optional
// and whitespace is ignored. Any other deviation from the alphabet fails the whole call with an error
// wrapping ErrInvalidInput.
func Decode(src string) ([]byte, error) {
	digits, err := expand(src)
	if err != nil {
		return nil, err
	}

	padBy := padding(len(digits), encodedGroupSize)
	if padBy == encodedGroupSize-1 {
		return nil, errors.Wrapf(ErrTruncatedGroup, "ascii85: dangling character %q at the end", digits[len(digits)-1])
	}
	for i := 0; i < padBy; i++ {
		digits = append(digits, padDigit)
	}

	dst := make([]byte, 0, len(digits)/encodedGroupSize*rawGroupSize)

	var group [encodedGroupSize]byte
	for i := 0; i < len(digits); i += encodedGroupSize {
		copy(group[:], digits[i:])
		raw, ok := decodeGroup(group)
		if !ok {
			return nil, errors.Wrapf(ErrGroupOverflow, "ascii85: group %q at offset %d", group[:], i)
		}
		dst = append(dst, raw[:]...)
	}

	return dst[:len(dst)-padBy], nil
}

// decodeGroup converts five characters of the alphabet back into four bytes. It returns false if the
// characters do not fit into four bytes.
func decodeGroup(group [encodedGroupSize]byte) (raw [rawGroupSize]byte, ok bool) {
	for k := range group {
		group[k] -= firstDigit
	}
	value := fromBase(encodedRadix, group[:])
	if value > math.MaxUint32 {
		return raw, false
	}
	toBase(rawRadix, raw[:], value)
	return raw, true
}

// expand removes whitespace and markers from src, checks the remaining characters and replaces every
// 'z' with the five characters of an all zero group. Offsets in errors are counted within the data
// between the markers, whitespace excluded.
func expand(src string) ([]byte, error) {
	body := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if !isSpace(src[i]) {
			body = append(body, src[i])
		}
	}

	// Markers are looked for after whitespace removal so that line wrapping may split them.
	body = bytes.TrimPrefix(body, []byte(prefix))
	body = bytes.TrimSuffix(body, []byte(suffix))

	digits := make([]byte, 0, len(body))
	for i, c := range body {
		switch {
		case c == zeroGroup:
			// Encoders that shorten any run of five '!' put a 'z' in the middle of a group too.
			digits = append(digits, zeroGroupDigits...)
		case c < firstDigit || c > lastDigit:
			return nil, errors.Wrapf(ErrInvalidCharacter, "ascii85: %q at offset %d", c, i)
		default:
			digits = append(digits, c)
		}
	}
	return digits, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
