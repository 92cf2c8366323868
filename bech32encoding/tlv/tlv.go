// Package tlv implements the Type Length Value encoding used inside NIP-19
// bech32 entities. Values are limited to 255 bytes.
package tlv

import (
	"io"

	"github.com/pkg/errors"
)

const (
	Default byte = iota
	Relay
	Author
	Kind
)

// ErrTooLong is returned by WriteEntry for values that don't fit a one byte
// length.
var ErrTooLong = errors.New("tlv value longer than 255 bytes")

// ReadEntry reads one TLV entry. At the end of the data it returns io.EOF; a
// truncated entry returns io.ErrUnexpectedEOF.
func ReadEntry(r io.Reader) (typ uint8, value []byte, err error) {
	var head [2]byte
	if _, err = io.ReadFull(r, head[:]); err != nil {
		return
	}
	typ = head[0]
	value = make([]byte, head[1])
	if _, err = io.ReadFull(r, value); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		value = nil
	}
	return
}

// WriteEntry writes a TLV entry.
func WriteEntry(w io.Writer, typ uint8, value []byte) (err error) {
	if len(value) > 255 {
		return errors.Wrapf(ErrTooLong, "type %d length %d", typ, len(value))
	}
	_, err = w.Write(append([]byte{typ, byte(len(value))}, value...))
	return
}
