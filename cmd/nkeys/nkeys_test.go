package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"identity.realy.lol/config"
	"identity.realy.lol/hex"
	"identity.realy.lol/sha256"
)

const (
	knownNpub = "npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg"
	knownHex  = "7e7e9c42a91bfef19fa929e5fda1b72e0ebc1a4c1141673e2794234d86addf4e"
	knownNsec = "nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9laqsnlfe5"
	knownSec  = "67dea2ed018072d675f5415ecfaed7d2597555e202d85b3d65ea4e58d2d92ffa"
)

func testConfig(format string) *config.C {
	return &config.C{AppName: "nkeys", Format: format, LogN: 4, LogLevel: "info"}
}

func runText(t *testing.T, args *Args) string {
	var b bytes.Buffer
	require.NoError(t, run(testConfig("text"), args, &b))
	return b.String()
}

func runYAML(t *testing.T, args *Args) (o output) {
	var b bytes.Buffer
	require.NoError(t, run(testConfig("yaml"), args, &b))
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &o))
	return
}

func TestConvert(t *testing.T) {
	out := runText(t, &Args{Convert: &ConvertCmd{Key: knownNpub}})
	require.Equal(t, "NPUB = "+knownNpub+"\nPUBLIC = "+knownHex+"\n", out)
	o := runYAML(t, &Args{Convert: &ConvertCmd{Key: knownHex}})
	require.Equal(t, knownNpub, o.Npub)
	require.Empty(t, o.Nsec)
	o = runYAML(t, &Args{Convert: &ConvertCmd{Key: knownNsec}})
	require.Equal(t, knownSec, o.SecretHex)
	o2 := runYAML(t, &Args{Convert: &ConvertCmd{Key: knownSec, Secret: true}})
	require.Equal(t, o, o2)
	var b bytes.Buffer
	require.Error(t, run(testConfig("text"), &Args{Convert: &ConvertCmd{Key: "nope"}}, &b))
}

func TestGenerate(t *testing.T) {
	o := runYAML(t, &Args{Generate: &GenerateCmd{Encrypt: true, Password: "pw"}})
	require.Len(t, o.PublicHex, 64)
	require.Len(t, o.SecretHex, 64)
	require.NotEmpty(t, o.Ncryptsec)
	d := runYAML(t, &Args{Decrypt: &DecryptCmd{Ncryptsec: o.Ncryptsec, Password: "pw"}})
	require.Equal(t, o.Nsec, d.Nsec)
	require.Equal(t, o.Npub, d.Npub)
	c := runYAML(t, &Args{Convert: &ConvertCmd{Key: o.Ncryptsec, Password: "pw"}})
	require.Equal(t, o.SecretHex, c.SecretHex)
	var b bytes.Buffer
	require.Error(t, run(testConfig("text"), &Args{Generate: &GenerateCmd{Encrypt: true}}, &b))
}

func TestSignVerify(t *testing.T) {
	digest := hex.Enc(sha256.Digest([]byte("hello")))
	s := runYAML(t, &Args{Sign: &SignCmd{Secret: knownNsec, Message: digest}})
	require.Equal(t, knownHex, s.PublicHex)
	require.Equal(t, digest, s.Digest)
	txt := runYAML(t, &Args{Sign: &SignCmd{Secret: knownSec, Message: "hello", Text: true}})
	require.Equal(t, digest, txt.Digest)
	v := runYAML(t, &Args{Verify: &VerifyCmd{Pub: knownNpub, Signature: s.Signature, Message: digest}})
	require.NotNil(t, v.Valid)
	require.True(t, *v.Valid)
	v = runYAML(t, &Args{Verify: &VerifyCmd{Pub: knownHex, Signature: txt.Signature, Message: "hello", Text: true}})
	require.True(t, *v.Valid)
	v = runYAML(t, &Args{Verify: &VerifyCmd{Pub: knownHex, Signature: s.Signature, Message: "goodbye", Text: true}})
	require.False(t, *v.Valid)
	var b bytes.Buffer
	require.Error(t, run(testConfig("text"),
		&Args{Sign: &SignCmd{Secret: knownSec, Message: "hello"}}, &b))
	require.Error(t, run(testConfig("text"),
		&Args{Verify: &VerifyCmd{Pub: knownHex, Signature: "00", Message: digest}}, &b))
	require.Contains(t, runText(t, &Args{Verify: &VerifyCmd{Pub: knownHex,
		Signature: s.Signature, Message: digest}}), "VALID = true\n")
}

func TestEncryptDecrypt(t *testing.T) {
	e := runYAML(t, &Args{Encrypt: &EncryptCmd{Secret: knownSec, Password: "nostr"}})
	require.Equal(t, knownHex, e.PublicHex)
	d := runYAML(t, &Args{Decrypt: &DecryptCmd{Ncryptsec: e.Ncryptsec, Password: "nostr"}})
	require.Equal(t, knownNsec, d.Nsec)
	var b bytes.Buffer
	require.Error(t, run(testConfig("text"),
		&Args{Decrypt: &DecryptCmd{Ncryptsec: e.Ncryptsec, Password: "wrong"}}, &b))
}

func TestNprofile(t *testing.T) {
	o := runYAML(t, &Args{Nprofile: &NprofileCmd{Pub: knownNpub,
		Relays: []string{"wss://r.x.com", "wss://djbas.sadkb.com"}, Alias: "bob"}})
	require.Equal(t, []string{"p", knownHex, "wss://r.x.com", "bob"}, o.Tag)
	back := runYAML(t, &Args{Nprofile: &NprofileCmd{Pub: o.Nprofile}})
	require.Equal(t, knownNpub, back.Npub)
	require.Equal(t, []string{"p", knownHex, "wss://r.x.com"}, back.Tag)
	out := runText(t, &Args{Nprofile: &NprofileCmd{Pub: knownHex}})
	require.Contains(t, out, `TAG = ["p","`+knownHex+`"]`)
}

func TestConversation(t *testing.T) {
	peer := runYAML(t, &Args{Generate: &GenerateCmd{}})
	a := runYAML(t, &Args{Conversation: &ConversationCmd{Secret: knownSec, Peer: peer.Npub}})
	b := runYAML(t, &Args{Conversation: &ConversationCmd{Secret: peer.Nsec, Peer: knownHex}})
	require.Len(t, a.ConversationKey, 64)
	require.Equal(t, a.ConversationKey, b.ConversationKey)
}

func TestNoCommand(t *testing.T) {
	var b bytes.Buffer
	require.Error(t, run(testConfig("text"), &Args{}, &b))
}
