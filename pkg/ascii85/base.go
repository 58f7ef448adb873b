package ascii85

// fromBase folds digits, most significant first, into a single value.
// Digits are expected to be smaller than radix.
func fromBase(radix uint64, digits []byte) uint64 {
	var value uint64
	for _, d := range digits {
		value = value*radix + uint64(d)
	}
	return value
}

// toBase writes value into dst as exactly len(dst) digits in the given radix,
// most significant first. Leading zero digits are kept; whatever does not fit
// into len(dst) digits is dropped.
func toBase(radix uint64, dst []byte, value uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(value % radix)
		value /= radix
	}
}
