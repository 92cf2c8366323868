package keys

import (
	"io"

	"identity.realy.lol/signer"
)

// Keygen generates candidate identities for key mining, drawing from one
// entropy source. It is not safe for concurrent use; give each worker its own.
type Keygen struct {
	r   io.Reader
	cur *T
}

var _ signer.Gen = (*Keygen)(nil)

// NewKeygen creates a Keygen drawing entropy from r.
func NewKeygen(r io.Reader) *Keygen { return &Keygen{r: r} }

// Generate makes a new candidate without building its key pair and returns its
// x-only public key.
func (k *Keygen) Generate() (pubBytes by, err er) {
	if k.cur, err = GenerateWithoutKeyPair(k.r); err != nil {
		return
	}
	pubBytes = k.cur.Pub()
	return
}

// Current returns the last generated candidate, or nil before the first call
// to Generate.
func (k *Keygen) Current() *T { return k.cur }

// KeyPairBytes returns the secret and x-only public key of the last candidate.
func (k *Keygen) KeyPairBytes() (secBytes, pubBytes by) {
	if k.cur == nil {
		return
	}
	s, _ := k.cur.m.secret()
	return s.Serialize(), k.cur.Pub()
}
