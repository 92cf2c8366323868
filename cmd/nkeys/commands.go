package main

import (
	"strings"

	"identity.realy.lol/bech32encoding"
	"identity.realy.lol/config"
	"identity.realy.lol/contact"
	"identity.realy.lol/ec"
	"identity.realy.lol/hex"
	"identity.realy.lol/keys"
	"identity.realy.lol/ncryptsec"
	"identity.realy.lol/signer"
)

func generate(cfg *config.C, c *GenerateCmd) (out *output, err er) {
	var k *keys.T
	if k, err = keys.Generate(); chk.E(err) {
		return
	}
	defer k.Zero()
	if out, err = identity(k); err != nil {
		return
	}
	if c.Encrypt {
		if c.Password == "" {
			err = errorf.E("--encrypt needs a password")
			return
		}
		if out.Ncryptsec, err = k.Encrypt(c.Password, uint8(cfg.LogN)); chk.E(err) {
			return
		}
	}
	return
}

func convert(c *ConvertCmd) (out *output, err er) {
	var k *keys.T
	switch {
	case strings.HasPrefix(c.Key, ncryptsec.HRP+"1"):
		k, err = keys.FromEncrypted(c.Key, c.Password)
	case strings.HasPrefix(c.Key, bech32encoding.NsecHRP+"1"), c.Secret:
		k, err = keys.FromSecretText(c.Key)
	default:
		k, err = keys.FromPublicText(c.Key)
	}
	if err != nil {
		return
	}
	defer k.Zero()
	return identity(k)
}

// message parses a hex digest to sign or verify.
func message(msg st) (digest by, err er) {
	if digest, err = hex.DecFixed(msg, ec.DigestLen); err != nil {
		err = errorf.E("message must be a %d byte hex digest, or use --text: %v", ec.DigestLen, err)
	}
	return
}

func sign(c *SignCmd) (out *output, err er) {
	var k *keys.T
	if k, err = keys.FromSecretText(c.Secret); err != nil {
		return
	}
	defer k.Zero()
	var digest, sig by
	if c.Text {
		if digest, sig, err = signer.SignMessage(k, by(c.Message)); chk.E(err) {
			return
		}
	} else {
		if digest, err = message(c.Message); err != nil {
			return
		}
		if sig, err = k.SignSchnorr(digest); chk.E(err) {
			return
		}
	}
	out = &output{PublicHex: k.PublicKeyHex(), Digest: hex.Enc(digest), Signature: hex.Enc(sig)}
	return
}

func verify(c *VerifyCmd) (out *output, err er) {
	var k *keys.T
	if k, err = keys.FromPublicText(c.Pub); err != nil {
		return
	}
	var sig by
	if sig, err = hex.DecFixed(c.Signature, ec.SignatureLen); err != nil {
		err = errorf.E("signature must be %d bytes of hex: %v", ec.SignatureLen, err)
		return
	}
	var valid bo
	var digest by
	if c.Text {
		if valid, err = signer.VerifyMessage(k, by(c.Message), sig); err != nil {
			return
		}
	} else {
		if digest, err = message(c.Message); err != nil {
			return
		}
		if valid, err = k.VerifySchnorr(digest, sig); err != nil {
			return
		}
	}
	out = &output{PublicHex: k.PublicKeyHex(), Valid: &valid}
	return
}

func encrypt(cfg *config.C, c *EncryptCmd) (out *output, err er) {
	var k *keys.T
	if k, err = keys.FromSecretText(c.Secret); err != nil {
		return
	}
	defer k.Zero()
	out = &output{PublicHex: k.PublicKeyHex()}
	if out.Ncryptsec, err = k.Encrypt(c.Password, uint8(cfg.LogN)); chk.E(err) {
		return
	}
	return
}

func decrypt(c *DecryptCmd) (out *output, err er) {
	var k *keys.T
	if k, err = keys.FromEncrypted(c.Ncryptsec, c.Password); err != nil {
		return
	}
	defer k.Zero()
	return identity(k)
}

func nprofile(c *NprofileCmd) (out *output, err er) {
	var pub ec.XOnly
	relays := c.Relays
	if strings.HasPrefix(c.Pub, bech32encoding.NprofileHRP+"1") {
		var ct *contact.T
		if ct, err = contact.FromNprofile(c.Pub, c.Alias); err != nil {
			return
		}
		pub = ct.PublicKey()
		if u, ok := ct.RelayURL(); ok && len(relays) == 0 {
			relays = []st{u}
		}
	} else {
		var k *keys.T
		if k, err = keys.FromPublicText(c.Pub); err != nil {
			return
		}
		pub = k.PublicKey()
	}
	var relay st
	if len(relays) > 0 {
		relay = relays[0]
	}
	ct := contact.New(pub, relay, c.Alias)
	out = &output{PublicHex: pub.String(), Tag: ct.Tag()}
	if out.Npub, err = bech32encoding.EncodeNpub(pub[:]); chk.E(err) {
		return
	}
	if out.Nprofile, err = bech32encoding.EncodeNprofile(pub[:], relays...); chk.E(err) {
		return
	}
	return
}

func conversation(c *ConversationCmd) (out *output, err er) {
	var k, peer *keys.T
	if k, err = keys.FromSecretText(c.Secret); err != nil {
		return
	}
	defer k.Zero()
	if peer, err = keys.FromPublicText(c.Peer); err != nil {
		return
	}
	var ck by
	if ck, err = k.ConversationKey(peer.PublicKey()); err != nil {
		return
	}
	out = &output{PublicHex: k.PublicKeyHex(), ConversationKey: hex.Enc(ck)}
	return
}

// identity lists every form of the identity's keys that it holds.
func identity(k *keys.T) (out *output, err er) {
	out = &output{PublicHex: k.PublicKeyHex()}
	if out.Npub, err = k.Npub(); chk.E(err) {
		return
	}
	if !k.HasSecret() {
		return
	}
	if out.Nsec, err = k.Nsec(); chk.E(err) {
		return
	}
	if out.SecretHex, err = k.SecretKeyHex(); chk.E(err) {
		return
	}
	return
}
