package keys

import (
	"strings"

	"identity.realy.lol/bech32encoding"
	"identity.realy.lol/ec"
	"identity.realy.lol/hex"
)

// decoder turns one textual form of a key into raw bytes.
type decoder struct {
	name   st
	decode func(s st) (by, er)
}

var (
	secretDecoders = []decoder{
		{"hex", func(s st) (by, er) { return hex.DecFixed(s, ec.SecretKeyLen) }},
		{"nsec", bech32encoding.DecodeNsec},
	}
	publicDecoders = []decoder{
		{"hex", func(s st) (by, er) { return hex.DecFixed(s, ec.XOnlyLen) }},
		{"npub", bech32encoding.DecodeNpub},
	}
)

// firstOf tries each decoder in order and builds the identity from the first
// one that yields usable bytes. Failures along the way are only traced.
func firstOf(s st, decoders []decoder, build func(by) (*T, er)) (t *T, ok bo) {
	for _, d := range decoders {
		b, err := d.decode(s)
		if err != nil {
			log.T.F("not a %s key: %v", d.name, err)
			continue
		}
		if t, err = build(b); err != nil {
			log.T.F("%s decoded but unusable: %v", d.name, err)
			continue
		}
		return t, true
	}
	return
}

// FromSecretText creates an identity from a secret key in hex, or failing
// that, as an nsec. If neither works the error is ErrInvalidSecretKey.
func FromSecretText(s st) (t *T, err er) {
	var ok bo
	if t, ok = firstOf(s, secretDecoders, FromSecretBytes); !ok {
		err = ErrInvalidSecretKey
	}
	return
}

// FromPublicText creates a verify only identity from an x-only public key in
// hex, or failing that, as an npub. If neither works the error is
// ErrInvalidPublicKey.
func FromPublicText(s st) (t *T, err er) {
	var ok bo
	if t, ok = firstOf(s, publicDecoders, FromPublicKeyBytes); !ok {
		err = ErrInvalidPublicKey
	}
	return
}

// Npub returns the public key in NIP-19 npub form.
func (t *T) Npub() (npub st, err er) { return bech32encoding.EncodeNpub(t.pub[:]) }

// PublicKeyHex returns the public key as 64 lower case hex characters.
func (t *T) PublicKeyHex() st { return t.pub.String() }

// Nsec returns the secret key in NIP-19 nsec form.
func (t *T) Nsec() (nsec st, err er) {
	s, ok := t.m.secret()
	if !ok {
		err = ErrSecretKeyMissing
		return
	}
	return bech32encoding.EncodeNsec(s.Serialize())
}

// SecretKeyHex returns the secret key as 64 lower case hex characters.
func (t *T) SecretKeyHex() (sks st, err er) {
	s, ok := t.m.secret()
	if !ok {
		err = ErrSecretKeyMissing
		return
	}
	sks = hex.Enc(s.Serialize())
	return
}

// GetPublicKeyHex derives the hex x-only public key of a hex secret key.
func GetPublicKeyHex(sk st) (pk st, err er) {
	var b by
	if b, err = hex.DecFixed(sk, ec.SecretKeyLen); chk.D(err) {
		err = ErrInvalidSecretKey
		return
	}
	var t *T
	if t, err = FromSecretBytes(b); err != nil {
		return
	}
	pk = t.PublicKeyHex()
	return
}

// IsValid32ByteHex reports whether pk is 64 lower case hex characters.
func IsValid32ByteHex(pk st) bo {
	if strings.ToLower(pk) != pk {
		return false
	}
	_, err := hex.DecFixed(pk, 32)
	return err == nil
}

// IsValidPublicKey reports whether pk is a hex x-only public key on the curve.
func IsValidPublicKey(pk st) bo {
	b, err := hex.DecFixed(pk, ec.XOnlyLen)
	if err != nil {
		return false
	}
	_, err = ec.ParseXOnly(b)
	return err == nil
}
