// Package signer defines the interfaces for things that sign and verify nostr
// messages with BIP-340 x-only keys, and for key generators used in mining.
package signer

import (
	"identity.realy.lol/sha256"
)

type I interface {
	// Pub returns the public key bytes (x-only schnorr pubkey).
	Pub() []byte
	// Sign creates a signature on a 32 byte message hash using the secret key.
	Sign(msg []byte) (sig []byte, err error)
	// Verify checks a message hash and signature match the public key.
	Verify(msg, sig []byte) (valid bool, err error)
	// Zero wipes the secret key to prevent memory leaks.
	Zero()
}

// Gen is an interface for nostr BIP-340 key generation.
type Gen interface {
	// Generate gathers entropy and derives pubkey bytes for matching, this returns the 32 byte
	// x-only form.
	Generate() (pubBytes []byte, err error)
	// KeyPairBytes returns the raw bytes of the secret and x-only public key of the last
	// generated key.
	KeyPairBytes() (secBytes, pubBytes []byte)
}

// SignMessage hashes an arbitrary message with SHA-256 and signs the digest.
func SignMessage(s I, msg []byte) (digest, sig []byte, err error) {
	digest = sha256.Digest(msg)
	if sig, err = s.Sign(digest); err != nil {
		return
	}
	return
}

// VerifyMessage hashes an arbitrary message with SHA-256 and verifies the
// signature on the digest.
func VerifyMessage(s I, msg, sig []byte) (valid bool, err error) {
	return s.Verify(sha256.Digest(msg), sig)
}
