package bech32encoding

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"

	"identity.realy.lol/bech32encoding/tlv"
)

// ErrNoPubkey is returned when an nprofile has no public key entry.
var ErrNoPubkey = errors.New("no pubkey found for nprofile")

// Profile is the content of an nprofile: a public key and relays where the
// profile is likely to be found.
type Profile struct {
	PublicKey by
	Relays    []st
}

// EncodeNprofile encodes a public key and relay hints as an nprofile.
func EncodeNprofile(pk by, relays ...st) (s st, err er) {
	if len(pk) != KeyLen {
		err = errors.Wrapf(ErrKeyLength, "%s got %d", NprofileHRP, len(pk))
		return
	}
	buf := new(bytes.Buffer)
	if err = tlv.WriteEntry(buf, tlv.Default, pk); chk.E(err) {
		return
	}
	for _, r := range relays {
		if err = tlv.WriteEntry(buf, tlv.Relay, by(r)); chk.E(err) {
			return
		}
	}
	var b5 by
	if b5, err = ConvertForBech32(buf.Bytes()); chk.E(err) {
		return
	}
	return bech32.Encode(NprofileHRP, b5)
}

// DecodeNprofile decodes an nprofile. Entries of unknown type are skipped.
func DecodeNprofile(s st) (p *Profile, err er) {
	var prefix st
	var b5, data by
	if prefix, b5, err = bech32.DecodeNoLimit(s); chk.T(err) {
		return
	}
	if prefix != NprofileHRP {
		err = errors.Wrapf(ErrWrongPrefix, "got '%s' want '%s'", prefix, NprofileHRP)
		return
	}
	if data, err = ConvertFromBech32(b5); chk.T(err) {
		return
	}
	p = new(Profile)
	r := bytes.NewReader(data)
	for {
		var typ uint8
		var v by
		if typ, v, err = tlv.ReadEntry(r); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
				break
			}
			p = nil
			return
		}
		switch typ {
		case tlv.Default:
			if len(v) != KeyLen {
				err = errors.Wrapf(ErrKeyLength, "%s got %d", NprofileHRP, len(v))
				p = nil
				return
			}
			p.PublicKey = v
		case tlv.Relay:
			p.Relays = append(p.Relays, st(v))
		default:
			log.D.Ln("skipping unknown nprofile TLV type", typ)
		}
	}
	if p.PublicKey == nil {
		err = ErrNoPubkey
		p = nil
	}
	return
}
