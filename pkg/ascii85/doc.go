// Package ascii85 implements the btoa flavour of Ascii85 encoding.
//
// Every 4 raw bytes are read as one base-256 number and written as 5 base-85
// digits in the printable range '!' (33) through 'u' (117). A group of four
// zero bytes is shortened to a single 'z' and the whole result is wrapped in
// the "<~" and "~>" markers:
//
//	ascii85.Encode([]byte("hello")) // "<~BOu!rDZ~>"
//
// A short final group is padded before conversion and the padding is cut off
// again afterwards, so the encoded form of n bytes never carries more than
// n + ceil(n/4) characters between the markers.
//
// Decode is lenient about layout and strict about content: the markers are
// optional, whitespace is ignored and a 'z' is expanded wherever it appears,
// but characters outside the alphabet, a group that overflows 32 bits or a
// dangling single character are reported as ErrInvalidInput.
package ascii85
