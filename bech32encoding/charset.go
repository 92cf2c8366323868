package bech32encoding

import (
	"fmt"
	"strings"
)

// Charset is the bech32 data alphabet. Every character after the separator of an
// npub or nsec is one of these.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// CharError reports a character that can never appear in the data part of a
// bech32 string.
type CharError struct {
	Char rune
	Pos  no
}

func (e *CharError) Error() st {
	return fmt.Sprintf("unsupported char '%c' at position %d, only '%s' are allowed",
		e.Char, e.Pos, Charset)
}

// CheckCharset returns a *CharError for the first character of s that is not in
// Charset. Matching is case sensitive, bech32 strings are lower case.
func CheckCharset(s st) (err er) {
	for i, c := range s {
		if !strings.ContainsRune(Charset, c) {
			err = &CharError{Char: c, Pos: i}
			log.T.Ln(err)
			return
		}
	}
	return
}
