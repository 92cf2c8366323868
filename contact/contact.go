// Package contact is an entry of a nostr contact list: a followed public key
// with an optional relay hint and petname.
package contact

import (
	"identity.realy.lol/bech32encoding"
	"identity.realy.lol/ec"
	"identity.realy.lol/keys"
)

// T is a contact. It is immutable.
type T struct {
	pub      ec.XOnly
	relayURL st
	alias    st
}

// New creates a contact. Empty relayURL and alias mean none.
func New(pub ec.XOnly, relayURL, alias st) *T {
	return &T{pub: pub, relayURL: relayURL, alias: alias}
}

// FromIdentity creates a contact for an identity. Only its public key is kept.
func FromIdentity(k *keys.T, relayURL, alias st) *T { return New(k.PublicKey(), relayURL, alias) }

// PublicKey returns the contact's x-only public key.
func (c *T) PublicKey() ec.XOnly { return c.pub }

// RelayURL returns the relay hint and whether there is one.
func (c *T) RelayURL() (u st, ok bo) { return c.relayURL, c.relayURL != "" }

// Alias returns the petname and whether there is one.
func (c *T) Alias() (a st, ok bo) { return c.alias, c.alias != "" }

// Tag renders the contact as a NIP-02 "p" tag. Trailing empty fields are left
// off, but an alias with no relay keeps an empty relay field.
func (c *T) Tag() (tag []st) {
	tag = []st{"p", c.pub.String()}
	switch {
	case c.alias != "":
		tag = append(tag, c.relayURL, c.alias)
	case c.relayURL != "":
		tag = append(tag, c.relayURL)
	}
	return
}

// Nprofile encodes the contact's public key and relay hint as an nprofile.
func (c *T) Nprofile() (s st, err er) {
	if c.relayURL == "" {
		return bech32encoding.EncodeNprofile(c.pub[:])
	}
	return bech32encoding.EncodeNprofile(c.pub[:], c.relayURL)
}

// FromNprofile creates a contact from an nprofile, taking its first relay as the
// hint.
func FromNprofile(s, alias st) (c *T, err er) {
	var p *bech32encoding.Profile
	if p, err = bech32encoding.DecodeNprofile(s); chk.D(err) {
		return
	}
	var k *keys.T
	if k, err = keys.FromPublicKeyBytes(p.PublicKey); chk.D(err) {
		return
	}
	var relay st
	if len(p.Relays) > 0 {
		relay = p.Relays[0]
	}
	c = New(k.PublicKey(), relay, alias)
	return
}
