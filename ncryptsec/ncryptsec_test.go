package ncryptsec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

// low cost so the tests run quickly.
const testLogN = 4

func TestRoundTrip(t *testing.T) {
	for _, ks := range []KeySecurity{KeySecurityInsecure, KeySecuritySecure, KeySecurityUnknown} {
		sec := frand.Bytes(32)
		enc, err := Encrypt(sec, "nostr", testLogN, ks)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(enc, HRP+"1"))
		got, gotKs, err := Decrypt(enc, "nostr")
		require.NoError(t, err)
		require.Equal(t, sec, got)
		require.Equal(t, ks, gotKs)
	}
}

func TestWrongPassword(t *testing.T) {
	enc, err := Encrypt(frand.Bytes(32), "correct horse", testLogN, KeySecurityUnknown)
	require.NoError(t, err)
	_, _, err = Decrypt(enc, "battery staple")
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestPasswordNormalization(t *testing.T) {
	sec := frand.Bytes(32)
	// precomposed and decomposed forms of the same password
	enc, err := Encrypt(sec, "\u00c5ngstr\u00f6m", testLogN, KeySecurityUnknown)
	require.NoError(t, err)
	got, _, err := Decrypt(enc, "A\u030angstro\u0308m")
	require.NoError(t, err)
	require.Equal(t, sec, got)
}

func TestRejects(t *testing.T) {
	_, err := Encrypt(frand.Bytes(31), "x", testLogN, KeySecurityUnknown)
	require.ErrorIs(t, err, ErrSecretLength)
	_, err = Encrypt(frand.Bytes(32), "x", MaxLogN+1, KeySecurityUnknown)
	require.ErrorIs(t, err, ErrLogN)
	_, _, err = Decrypt("nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9laqsnlfe5", "x")
	require.ErrorIs(t, err, ErrWrongPrefix)
	_, _, err = Decrypt("garbage", "x")
	require.Error(t, err)
}
