// Package hex is the fixed length hexadecimal codec for keys and signatures,
// using the SIMD accelerated xhex library for the append forms.
package hex

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/templexxx/xhex"
)

var Dec = hex.DecodeString

type InvalidByteError = hex.InvalidByteError

// ErrLength is returned by DecFixed when the text is not exactly the expected
// length.
var ErrLength = errors.New("hex string has the wrong length")

// Enc renders bytes as lower case hex.
func Enc(b by) st { return st(EncAppend(make(by, 0, len(b)*2), b)) }

// EncAppend appends the hex encoding of src to dst.
func EncAppend(dst, src by) (b by) {
	l := len(dst)
	dst = append(dst, make(by, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the decoded bytes of the hex in src to dst.
func DecAppend(dst, src by) (b by, err er) {
	if len(src)%2 != 0 {
		err = hex.ErrLength
		return
	}
	l := len(dst)
	b = append(dst, make(by, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.T(err) {
		return
	}
	return
}

// DecFixed decodes a hex string that must represent exactly n bytes, upper or
// lower case.
func DecFixed(s st, n no) (b by, err er) {
	if len(s) != n*2 {
		err = errors.Wrapf(ErrLength, "want %d characters, got %d", n*2, len(s))
		return
	}
	if b, err = Dec(s); chk.T(err) {
		return
	}
	return
}
