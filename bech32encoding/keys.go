package bech32encoding

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
)

const (
	// MinKeyStringLen is 63 because a 32 byte payload needs 52 characters, plus
	// 4 for the HRP, 1 for the separator and 6 for the checksum.
	MinKeyStringLen = 63
	// KeyLen is the length of both secret and x-only public keys.
	KeyLen = 32
)

const (
	NsecHRP     = "nsec"
	NpubHRP     = "npub"
	NprofileHRP = "nprofile"
)

var (
	ErrWrongPrefix = errors.New("wrong human readable part")
	ErrKeyLength   = errors.New("decoded key is not 32 bytes")
)

// ConvertForBech32 performs the bit expansion required for encoding into Bech32.
func ConvertForBech32(b8 by) (b5 by, err er) { return bech32.ConvertBits(b8, 8, 5, true) }

// ConvertFromBech32 collapses together the bit expanded 5 bit numbers encoded in
// bech32. Non-zero padding is rejected.
func ConvertFromBech32(b5 by) (b8 by, err er) { return bech32.ConvertBits(b5, 5, 8, false) }

// EncodeNpub encodes a 32 byte x-only public key as an npub.
func EncodeNpub(pk by) (npub st, err er) { return encodeKey(NpubHRP, pk) }

// EncodeNsec encodes a 32 byte secret key as an nsec.
func EncodeNsec(sk by) (nsec st, err er) { return encodeKey(NsecHRP, sk) }

// DecodeNpub returns the 32 bytes of public key inside an npub. It does not
// check that the key is a point on the curve.
func DecodeNpub(npub st) (pk by, err er) { return decodeKey(NpubHRP, npub) }

// DecodeNsec returns the 32 bytes of secret key inside an nsec. It does not
// check that the scalar is in range.
func DecodeNsec(nsec st) (sk by, err er) { return decodeKey(NsecHRP, nsec) }

func encodeKey(hrp st, key by) (s st, err er) {
	if len(key) != KeyLen {
		err = errors.Wrapf(ErrKeyLength, "%s got %d", hrp, len(key))
		return
	}
	var b5 by
	if b5, err = ConvertForBech32(key); chk.E(err) {
		return
	}
	return bech32.Encode(hrp, b5)
}

func decodeKey(hrp, s st) (key by, err er) {
	var prefix st
	var b5 by
	if prefix, b5, err = bech32.Decode(s); chk.T(err) {
		return
	}
	if prefix != hrp {
		err = errors.Wrapf(ErrWrongPrefix, "got '%s' want '%s'", prefix, hrp)
		return
	}
	if key, err = ConvertFromBech32(b5); chk.T(err) {
		return
	}
	if len(key) != KeyLen {
		err = errors.Wrapf(ErrKeyLength, "%s got %d", hrp, len(key))
		key = nil
		return
	}
	return
}
