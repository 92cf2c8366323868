// Package ncryptsec implements NIP-49 password encrypted secret keys.
//
// The password is normalised to NFKC and stretched with scrypt (r=8, p=1,
// N=2^logN) into a key for XChaCha20-Poly1305, which seals the 32 byte secret
// with the key security byte as associated data. The result is bech32 encoded
// with the ncryptsec prefix.
package ncryptsec

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"
	"lukechampine.com/frand"

	"identity.realy.lol/bech32encoding"
)

const HRP = "ncryptsec"

const (
	Version  byte = 0x02
	SaltLen       = 16
	NonceLen      = chacha20poly1305.NonceSizeX
	// DefaultLogN is the scrypt cost used by the tools, 64MiB of memory.
	DefaultLogN uint8 = 16
	// MaxLogN bounds the memory a hostile ncryptsec can make us allocate.
	MaxLogN uint8 = 22
	secretLen     = 32
	sealedLen     = secretLen + chacha20poly1305.Overhead
	payloadLen    = 2 + SaltLen + NonceLen + 1 + sealedLen
)

// KeySecurity records how the secret key was handled before it was encrypted.
type KeySecurity byte

const (
	KeySecurityInsecure KeySecurity = iota
	KeySecuritySecure
	KeySecurityUnknown
)

var (
	ErrWrongPrefix  = errors.New("not an ncryptsec")
	ErrMalformed    = errors.New("malformed ncryptsec payload")
	ErrVersion      = errors.New("unsupported ncryptsec version")
	ErrLogN         = errors.New("scrypt log_n out of range")
	ErrDecrypt      = errors.New("ncryptsec decryption failed, wrong password?")
	ErrSecretLength = errors.New("secret key must be 32 bytes")
)

func symmetricKey(password st, salt by, logN uint8) (key by, err er) {
	if logN < 1 || logN > MaxLogN {
		err = errors.Wrapf(ErrLogN, "got %d", logN)
		return
	}
	pw := norm.NFKC.Bytes(by(password))
	if key, err = scrypt.Key(pw, salt, 1<<logN, 8, 1, 32); chk.E(err) {
		return
	}
	return
}

// Encrypt seals a 32 byte secret key under the password.
func Encrypt(sec by, password st, logN uint8, ks KeySecurity) (enc st, err er) {
	if len(sec) != secretLen {
		err = errors.Wrapf(ErrSecretLength, "got %d", len(sec))
		return
	}
	salt, nonce := frand.Bytes(SaltLen), frand.Bytes(NonceLen)
	var key by
	if key, err = symmetricKey(password, salt, logN); err != nil {
		return
	}
	defer wipe(key)
	aead, err := chacha20poly1305.NewX(key)
	if chk.E(err) {
		return
	}
	ad := by{byte(ks)}
	payload := make(by, 0, payloadLen)
	payload = append(payload, Version, logN)
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, ad...)
	payload = aead.Seal(payload, nonce, sec, ad)
	var b5 by
	if b5, err = bech32encoding.ConvertForBech32(payload); chk.E(err) {
		return
	}
	return bech32.Encode(HRP, b5)
}

// Decrypt opens an ncryptsec with the password, returning the secret key and
// the key security byte it was sealed with.
func Decrypt(enc, password st) (sec by, ks KeySecurity, err er) {
	var prefix st
	var b5, payload by
	if prefix, b5, err = bech32.DecodeNoLimit(enc); chk.D(err) {
		return
	}
	if prefix != HRP {
		err = errors.Wrapf(ErrWrongPrefix, "prefix '%s'", prefix)
		return
	}
	if payload, err = bech32encoding.ConvertFromBech32(b5); chk.D(err) {
		return
	}
	if len(payload) != payloadLen {
		err = errors.Wrapf(ErrMalformed, "length %d want %d", len(payload), payloadLen)
		return
	}
	if payload[0] != Version {
		err = errors.Wrapf(ErrVersion, "version %d", payload[0])
		return
	}
	logN := payload[1]
	rest := payload[2:]
	salt, rest := rest[:SaltLen], rest[SaltLen:]
	nonce, rest := rest[:NonceLen], rest[NonceLen:]
	ad, sealed := rest[:1], rest[1:]
	var key by
	if key, err = symmetricKey(password, salt, logN); err != nil {
		return
	}
	defer wipe(key)
	aead, err := chacha20poly1305.NewX(key)
	if chk.E(err) {
		return
	}
	if sec, err = aead.Open(nil, nonce, sealed, ad); err != nil {
		log.D.Ln("ncryptsec open failed:", err)
		err = ErrDecrypt
		return
	}
	ks = KeySecurity(ad[0])
	return
}

func wipe(b by) {
	for i := range b {
		b[i] = 0
	}
}
