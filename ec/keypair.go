package ec

import (
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"identity.realy.lol/hex"
)

// XOnly is a BIP-340 public key, the X coordinate of a point with the parity of
// its Y coordinate dropped. It is the canonical nostr public key.
type XOnly [XOnlyLen]byte

// ParseXOnly checks that b is a 32 byte X coordinate of a point on the curve.
func ParseXOnly(b by) (x XOnly, err er) {
	if _, err = schnorr.ParsePubKey(b); chk.D(err) {
		err = errors.Wrap(ErrPublicKeyInvalid, err.Error())
		return
	}
	copy(x[:], b)
	return
}

// XOnlyFromPublicKey strips the parity from a full public key.
func XOnlyFromPublicKey(pub *PublicKey) (x XOnly) {
	copy(x[:], schnorr.SerializePubKey(pub))
	return
}

// PublicKey lifts the X coordinate to the point with an even Y coordinate.
func (x XOnly) PublicKey() (pub *PublicKey, err er) {
	if pub, err = schnorr.ParsePubKey(x[:]); chk.D(err) {
		err = errors.Wrap(ErrPublicKeyInvalid, err.Error())
		return
	}
	return
}

// Bytes returns a copy of the key bytes.
func (x XOnly) Bytes() (b by) { return append(by{}, x[:]...) }

// String renders the key in lower case hex.
func (x XOnly) String() st { return hex.Enc(x[:]) }

// KeyPair is a secret scalar together with the full public point it produces,
// including the parity of the Y coordinate.
type KeyPair struct {
	sec *SecretKey
	pub *PublicKey
}

// DeriveKeyPair computes the key pair of a secret key. The same secret always
// yields the same pair.
func DeriveKeyPair(sk *SecretKey) *KeyPair {
	s := *sk
	return &KeyPair{sec: &s, pub: s.PubKey()}
}

// Secret returns the secret scalar of the pair.
func (kp *KeyPair) Secret() *SecretKey { return kp.sec }

// Public returns the full public point of the pair.
func (kp *KeyPair) Public() *PublicKey { return kp.pub }

// XOnly returns the parity-stripped public key of the pair.
func (kp *KeyPair) XOnly() XOnly { return XOnlyFromPublicKey(kp.pub) }

// OddY reports whether the public point has an odd Y coordinate. BIP-340
// signing negates the secret in that case.
func (kp *KeyPair) OddY() bo {
	return kp.pub.SerializeCompressed()[0] == secp256k1.PubKeyFormatCompressedOdd
}

// Zero wipes the secret scalar of the pair.
func (kp *KeyPair) Zero() { kp.sec.Zero() }
