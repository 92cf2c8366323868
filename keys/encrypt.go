package keys

import (
	"identity.realy.lol/ncryptsec"
)

// Encrypt exports the secret key as a NIP-49 ncryptsec under a password, with
// scrypt cost 2^logN.
func (t *T) Encrypt(password st, logN uint8) (enc st, err er) {
	s, ok := t.m.secret()
	if !ok {
		err = ErrSecretKeyMissing
		return
	}
	b := s.Serialize()
	enc, err = ncryptsec.Encrypt(b, password, logN, ncryptsec.KeySecurityUnknown)
	for i := range b {
		b[i] = 0
	}
	return
}

// FromEncrypted decrypts a NIP-49 ncryptsec with the password and creates the
// identity from the secret key inside.
func FromEncrypted(enc, password st) (t *T, err er) {
	var b by
	if b, _, err = ncryptsec.Decrypt(enc, password); chk.D(err) {
		return
	}
	t, err = FromSecretBytes(b)
	for i := range b {
		b[i] = 0
	}
	return
}
