// Package keys is the nostr identity: a secp256k1 secret key with its BIP-340
// x-only public key, or a public key alone.
//
// The x-only public key is the identity's name in the protocol and is always
// present. The secret key, when held, is the only way to reach the key pair,
// the parity-aware public key and signatures. A T is immutable once built and
// may be shared between goroutines.
package keys

import (
	"crypto/rand"
	"io"

	"identity.realy.lol/ec"
	"identity.realy.lol/signer"
)

// T is a nostr identity.
type T struct {
	pub ec.XOnly
	m   material
}

var _ signer.I = (*T)(nil)

// New creates an identity from a secret key, deriving and caching the key pair.
func New(sec *ec.SecretKey) *T {
	kp := ec.DeriveKeyPair(sec)
	return &T{pub: kp.XOnly(), m: secretWithPair{kp: kp}}
}

// FromSecretBytes creates an identity from a 32 byte secret scalar. A scalar
// that is zero or not below the curve order is rejected with an *EngineError
// that also matches ErrInvalidSecretKey.
func FromSecretBytes(b by) (t *T, err er) {
	var sk *ec.SecretKey
	if sk, err = ec.SecretKeyFromBytes(b); chk.D(err) {
		err = &EngineError{Op: "parse secret key", Err: err, Kind: ErrInvalidSecretKey}
		return
	}
	t = New(sk)
	return
}

// FromPublicKey creates an identity that can only verify, from an x-only public
// key. The key is taken as is; use FromPublicKeyBytes to check raw input lies on
// the curve.
func FromPublicKey(pk ec.XOnly) *T { return &T{pub: pk, m: publicOnly{}} }

// FromPublicKeyBytes creates a verify only identity from 32 bytes of x-only
// public key, checking that it is a point on the curve.
func FromPublicKeyBytes(b by) (t *T, err er) {
	var pk ec.XOnly
	if pk, err = ec.ParseXOnly(b); chk.D(err) {
		err = &EngineError{Op: "parse public key", Err: err, Kind: ErrInvalidPublicKey}
		return
	}
	t = FromPublicKey(pk)
	return
}

// Generate creates a new identity from the system's secure random source.
func Generate() (t *T, err er) { return GenerateWithRand(rand.Reader) }

// GenerateWithRand creates a new identity drawing the secret from r. With a
// deterministic r the identity is deterministic too.
func GenerateWithRand(r io.Reader) (t *T, err er) {
	var sk *ec.SecretKey
	if sk, err = ec.GenerateSecretKey(r); chk.E(err) {
		err = &EngineError{Op: "generate", Err: err}
		return
	}
	t = New(sk)
	return
}

// GenerateWithoutKeyPair creates a new identity drawing the secret from r, but
// does not build the key pair. It is for searches that test many public keys
// and throw most away; call Materialize on the one that is kept.
func GenerateWithoutKeyPair(r io.Reader) (t *T, err er) {
	var sk *ec.SecretKey
	var pub *ec.PublicKey
	if sk, pub, err = ec.Generate(r); chk.E(err) {
		err = &EngineError{Op: "generate", Err: err}
		return
	}
	t = &T{pub: ec.XOnlyFromPublicKey(pub), m: secretOnly{sec: sk}}
	return
}

// Materialize returns an identity with the key pair cached. Identities that
// already have one, or have no secret, are returned unchanged.
func (t *T) Materialize() *T {
	if s, ok := t.m.(secretOnly); ok {
		return New(s.sec)
	}
	return t
}

// PublicKey returns the x-only public key.
func (t *T) PublicKey() ec.XOnly { return t.pub }

// HasSecret reports whether the identity can sign.
func (t *T) HasSecret() bo {
	_, ok := t.m.secret()
	return ok
}

// SecretKey returns a copy of the secret key.
func (t *T) SecretKey() (sk *ec.SecretKey, err er) {
	s, ok := t.m.secret()
	if !ok {
		err = ErrSecretKeyMissing
		return
	}
	c := *s
	sk = &c
	return
}

// NormalizedPublicKey returns the public point derived from the secret key,
// with the parity of Y that the secret actually produces. It differs from the
// x-only key only in that parity and is what ECDH style schemes need.
func (t *T) NormalizedPublicKey() (pub *ec.PublicKey, err er) {
	s, ok := t.m.secret()
	if !ok {
		err = ErrSecretKeyMissing
		return
	}
	pub = ec.NormalizedPublicKey(s)
	return
}

// KeyPair returns the cached key pair, or derives a fresh one from the secret
// key if none was cached. The derived pair is not stored.
func (t *T) KeyPair() (kp *ec.KeyPair, err er) {
	var ok bo
	if kp, ok = t.m.pair(); ok {
		return
	}
	var s *ec.SecretKey
	if s, ok = t.m.secret(); !ok {
		err = ErrSecretKeyMissing
		return
	}
	kp = ec.DeriveKeyPair(s)
	return
}

// SignSchnorr creates a 64 byte BIP-340 signature on a 32 byte digest. The
// message must already be hashed.
func (t *T) SignSchnorr(digest by) (sig by, err er) {
	var kp *ec.KeyPair
	if kp, err = t.KeyPair(); err != nil {
		return
	}
	if sig, err = ec.SignSchnorr(kp, digest); chk.D(err) {
		err = &EngineError{Op: "sign", Err: err}
		return
	}
	return
}

// SignSchnorrWithAux is SignSchnorr with caller supplied auxiliary randomness
// mixed into the nonce.
func (t *T) SignSchnorrWithAux(digest by, aux [32]byte) (sig by, err er) {
	var kp *ec.KeyPair
	if kp, err = t.KeyPair(); err != nil {
		return
	}
	if sig, err = ec.SignSchnorrWithAux(kp, digest, aux); chk.D(err) {
		err = &EngineError{Op: "sign", Err: err}
		return
	}
	return
}

// VerifySchnorr checks a BIP-340 signature on a 32 byte digest against the
// x-only public key. It works without the secret key.
func (t *T) VerifySchnorr(digest, sig by) (valid bo, err er) {
	if valid, err = ec.VerifySchnorr(t.pub, digest, sig); chk.D(err) {
		err = &EngineError{Op: "verify", Err: err}
		return
	}
	return
}

// Equal reports whether two identities have the same public key and the same
// secret, or both have no secret.
func (t *T) Equal(o *T) bo {
	if t.pub != o.pub {
		return false
	}
	a, aok := t.m.secret()
	b, bok := o.m.secret()
	if aok != bok {
		return false
	}
	return !aok || a.Key.Equals(&b.Key)
}

// Zero wipes the secret key and the cached key pair. The identity must not be
// used to sign afterwards.
func (t *T) Zero() { t.m.zero() }

// Pub returns the x-only public key bytes.
func (t *T) Pub() by { return t.pub.Bytes() }

// Sign is SignSchnorr.
func (t *T) Sign(msg by) (sig by, err er) { return t.SignSchnorr(msg) }

// Verify is VerifySchnorr.
func (t *T) Verify(msg, sig by) (valid bo, err er) { return t.VerifySchnorr(msg, sig) }
