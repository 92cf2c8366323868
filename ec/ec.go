// Package ec is the secp256k1 engine used for nostr identities. It wraps the
// btcec and decred secp256k1 libraries to provide BIP-340 x-only public keys,
// Schnorr signatures, key pair derivation and key generation from an arbitrary
// entropy source.
//
// The curve context is the precomputed tables inside the secp256k1 library,
// built once at process start and never mutated, so everything here is safe
// for concurrent use.
package ec

import (
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

const (
	// SecretKeyLen is the length of a serialized secret scalar.
	SecretKeyLen = secp256k1.PrivKeyBytesLen
	// XOnlyLen is the length of a BIP-340 x-only public key.
	XOnlyLen = schnorr.PubKeyBytesLen
	// CompressedLen is the length of a parity-aware compressed public key.
	CompressedLen = secp256k1.PubKeyBytesLenCompressed
	// SignatureLen is the length of a BIP-340 signature.
	SignatureLen = schnorr.SignatureSize
	// DigestLen is the length of a message digest accepted for signing.
	DigestLen = 32
)

type (
	// SecretKey is a secret scalar in the range [1, n-1].
	SecretKey = btcec.PrivateKey
	// PublicKey is a full curve point, carrying the parity of its Y coordinate.
	PublicKey = btcec.PublicKey
)

var (
	ErrSecretKeyLength  = errors.New("secret key must be 32 bytes")
	ErrSecretKeyRange   = errors.New("secret key is zero or not below the curve order")
	ErrPublicKeyInvalid = errors.New("x coordinate is not on the secp256k1 curve")
	ErrDigestLength     = errors.New("message digest must be 32 bytes")
	ErrSignatureInvalid = errors.New("malformed schnorr signature")
)

// SecretKeyFromBytes parses a 32 byte big endian secret scalar. Unlike the
// underlying library it does not reduce values modulo the curve order, a value
// that is zero or overflows is rejected.
func SecretKeyFromBytes(b by) (sk *SecretKey, err er) {
	if len(b) != SecretKeyLen {
		err = errors.Wrapf(ErrSecretKeyLength, "got %d", len(b))
		return
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		err = ErrSecretKeyRange
		return
	}
	sk = secp256k1.NewPrivateKey(&s)
	return
}

// GenerateSecretKey draws secret scalars from r until one is within range.
func GenerateSecretKey(r io.Reader) (sk *SecretKey, err er) {
	b := make(by, SecretKeyLen)
	var s secp256k1.ModNScalar
	for {
		if _, err = io.ReadFull(r, b); chk.E(err) {
			err = errors.Wrap(err, "reading entropy")
			return
		}
		if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
			log.T.Ln("entropy out of range for secret key, drawing again")
			continue
		}
		break
	}
	for i := range b {
		b[i] = 0
	}
	sk = secp256k1.NewPrivateKey(&s)
	s.Zero()
	return
}

// Generate draws a new secret key from r and returns it along with its public
// point, without building a KeyPair.
func Generate(r io.Reader) (sk *SecretKey, pub *PublicKey, err er) {
	if sk, err = GenerateSecretKey(r); err != nil {
		return
	}
	pub = sk.PubKey()
	return
}

// NormalizedPublicKey returns the parity-aware public point for a secret key.
func NormalizedPublicKey(sk *SecretKey) *PublicKey { return sk.PubKey() }

// SignSchnorr creates a BIP-340 signature on a 32 byte digest with the nonce
// derived deterministically from the key and message.
func SignSchnorr(kp *KeyPair, digest by) (sig by, err er) {
	return sign(kp, digest)
}

// SignSchnorrWithAux creates a BIP-340 signature using the given auxiliary
// random data in the nonce derivation, as in the BIP-340 reference algorithm.
func SignSchnorrWithAux(kp *KeyPair, digest by, aux [32]byte) (sig by, err er) {
	return sign(kp, digest, schnorr.CustomNonce(aux))
}

func sign(kp *KeyPair, digest by, opts ...schnorr.SignOption) (sig by, err er) {
	if len(digest) != DigestLen {
		err = errors.Wrapf(ErrDigestLength, "got %d", len(digest))
		return
	}
	var s *schnorr.Signature
	if s, err = schnorr.Sign(kp.sec, digest, opts...); chk.D(err) {
		return
	}
	sig = s.Serialize()
	return
}

// VerifySchnorr checks a BIP-340 signature on a digest against an x-only public
// key.
func VerifySchnorr(pub XOnly, digest, sig by) (valid bo, err er) {
	if len(digest) != DigestLen {
		err = errors.Wrapf(ErrDigestLength, "got %d", len(digest))
		return
	}
	var s *schnorr.Signature
	if s, err = schnorr.ParseSignature(sig); chk.D(err) {
		err = errors.Wrap(ErrSignatureInvalid, err.Error())
		return
	}
	var pk *PublicKey
	if pk, err = pub.PublicKey(); err != nil {
		return
	}
	valid = s.Verify(digest, pk)
	return
}

// SharedX computes the x coordinate of the ECDH shared point between a secret
// key and an x-only public key, the latter lifted to its even Y point.
func SharedX(sk *SecretKey, peer XOnly) (x by, err er) {
	var pk *PublicKey
	if pk, err = peer.PublicKey(); err != nil {
		return
	}
	x = secp256k1.GenerateSharedSecret(sk, pk)
	return
}
