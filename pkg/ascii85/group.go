package ascii85

const (
	rawRadix     = 256
	encodedRadix = 85

	// rawGroupSize bytes are carried by encodedGroupSize characters, as 85^5 > 256^4
	rawGroupSize     = 4
	encodedGroupSize = 5

	// firstDigit is the character for digit 0, the alphabet ends at lastDigit
	firstDigit = '!'
	lastDigit  = 'u'

	// zeroGroup stands for a whole group of zero bytes
	zeroGroup = 'z'

	// padDigit fills up the last encoded group. It must be the highest digit, as
	// the cut off tail of a group was rounded down while encoding.
	padDigit = lastDigit

	prefix = "<~"
	suffix = "~>"
)

// zeroGroupDigits is the expanded form of zeroGroup
var zeroGroupDigits = []byte{firstDigit, firstDigit, firstDigit, firstDigit, firstDigit}

// padding returns how many units must be appended to n units to fill up the last group of size width.
// The same number of units is removed from the output after the transformation.
func padding(n, width int) int {
	return (width - n%width) % width
}

// EncodedLen returns the length of Encode output for n input bytes, markers included. The value is exact
// unless the input contains groups of zero bytes, in which case the output is shorter.
func EncodedLen(n int) int {
	return n + (n+rawGroupSize-1)/rawGroupSize + len(prefix) + len(suffix)
}

// MaxDecodedLen returns the maximum number of bytes n encoded characters can decode to. A single 'z'
// decodes to four bytes.
func MaxDecodedLen(n int) int {
	return rawGroupSize * n
}
