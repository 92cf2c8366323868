package keys

import (
	"fmt"

	"github.com/pkg/errors"

	"identity.realy.lol/bech32encoding"
)

var (
	// ErrInvalidSecretKey is returned for malformed or out of range secret key input.
	ErrInvalidSecretKey = errors.New("invalid secret key")
	// ErrInvalidPublicKey is returned for malformed public key input or an X
	// coordinate that is not on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrSecretKeyMissing is returned by operations that need the secret key on
	// a public key only identity.
	ErrSecretKeyMissing = errors.New("secret key missing")
)

// InvalidCharError is a character that an encoding can never contain.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() st { return fmt.Sprintf("unsupported char: %c", e.Char) }

// EngineError wraps a failure of the secp256k1 engine. When the failure means
// the input was invalid, Kind holds ErrInvalidSecretKey or ErrInvalidPublicKey
// and errors.Is matches it as well as the engine error.
type EngineError struct {
	Op   st
	Err  er
	Kind er
}

func (e *EngineError) Error() st { return fmt.Sprintf("secp256k1: %s: %v", e.Op, e.Err) }

func (e *EngineError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// CheckBech32Chars returns an *InvalidCharError for the first character of s
// that cannot appear in the data part of an npub or nsec.
func CheckBech32Chars(s st) (err er) {
	var ce *bech32encoding.CharError
	if err = bech32encoding.CheckCharset(s); errors.As(err, &ce) {
		err = &InvalidCharError{Char: ce.Char}
	}
	return
}
