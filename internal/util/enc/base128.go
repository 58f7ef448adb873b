package enc

// NOTE: The alphabet is taken from base128.c of the IODINE project.
/*
 * Copyright (c) 2006-2014 Erik Ekman <yarrick@kryo.se>,
 * 2006-2009 Bjorn Andersson <flex@kryo.se>
 * Mostly rewritten 2009 J.A.Bezemer@opensourcepartners.nl
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

import (
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (

	/*
	 * Don't use '-' (restricted to middle of labels), prefer iso_8859-1
	 * accent chars since they might readily be entered in normal use,
	 * don't use 254-255 because of possible function overloading in DNS systems.
	 */
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

// cb128Invert maps a character of cb128 back to its 7 bit value. Other characters map to -1.
var cb128Invert = func() [256]int {
	var res [256]int
	for i := range res {
		res[i] = -1
	}
	for i, v := range []byte(cb128) {
		res[v] = i
	}
	return res
}()

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return describe(b)
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, 0, base128.EncodedLen(len(src)))

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add current value, shifted.
		// E.g. first round is first 7 bits of value
		dst = append(dst, bufByte|(val>>whichByte))

		// Keep the low bits of the value for the next character
		bufByte = val & ((1 << whichByte) - 1)
		bufByte = bufByte << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}

		whichByte++
	}

	// Flush only if some bits are still waiting, a complete block of 7 bytes has no tail.
	if whichByte > 1 {
		dst = append(dst, bufByte)
	}
	return string(escape128(dst))
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128([]byte(data))
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

// escape128 replaces 7 bit values with the characters of cb128
func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v]
	}
	return res
}

func unescape128(src []byte) ([]byte, error) {
	res := make([]byte, len(src))
	for i, v := range src {
		pos := cb128Invert[v]
		if pos < 0 {
			return nil, errors.Errorf("illegal base128 character %q at offset %d", v, i)
		}
		res[i] = byte(pos)
	}
	return res, nil
}

func (b *Base128Encoder) TestPatterns() []string {
	return []string{
		b.Encode([]byte("aA-Aaahhh-Drink-mal-ein-J\344germeister-")),
		b.Encode([]byte("aA-La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te")),
		b.Encode([]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ")),
	}
}
