package keys

import (
	"identity.realy.lol/ec"
)

// material is the secret side of an identity. It is one of three states, so
// that holding a key pair without its secret, or a secret without a matching
// public key, cannot be represented.
type material interface {
	secret() (sk *ec.SecretKey, ok bo)
	pair() (kp *ec.KeyPair, ok bo)
	zero()
}

// publicOnly has no secret and so no key pair.
type publicOnly struct{}

func (publicOnly) secret() (*ec.SecretKey, bo) { return nil, false }
func (publicOnly) pair() (*ec.KeyPair, bo)     { return nil, false }
func (publicOnly) zero()                       {}

// secretWithPair holds the key pair, which carries the secret.
type secretWithPair struct{ kp *ec.KeyPair }

func (m secretWithPair) secret() (*ec.SecretKey, bo) { return m.kp.Secret(), true }
func (m secretWithPair) pair() (*ec.KeyPair, bo)     { return m.kp, true }
func (m secretWithPair) zero()                       { m.kp.Zero() }

// secretOnly holds the secret; the key pair is derived when asked for.
type secretOnly struct{ sec *ec.SecretKey }

func (m secretOnly) secret() (*ec.SecretKey, bo) { return m.sec, true }
func (m secretOnly) pair() (*ec.KeyPair, bo)     { return nil, false }
func (m secretOnly) zero()                       { m.sec.Zero() }
