package keys

import (
	"golang.org/x/crypto/hkdf"

	"identity.realy.lol/ec"
	"identity.realy.lol/sha256"
)

var conversationSalt = by("nip44-v2")

// ConversationKey derives the NIP-44 version 2 conversation key shared with a
// peer: the X coordinate of the ECDH point, secret times the peer's even Y
// point, run through HKDF-extract with the salt "nip44-v2". Both sides of a
// conversation get the same key.
func (t *T) ConversationKey(peer ec.XOnly) (ck by, err er) {
	s, ok := t.m.secret()
	if !ok {
		err = ErrSecretKeyMissing
		return
	}
	var shared by
	if shared, err = ec.SharedX(s, peer); chk.D(err) {
		err = &EngineError{Op: "ecdh", Err: err, Kind: ErrInvalidPublicKey}
		return
	}
	ck = hkdf.Extract(sha256.New, shared, conversationSalt)
	for i := range shared {
		shared[i] = 0
	}
	return
}
