package ec

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestSecretKeyFromBytes(t *testing.T) {
	_, err := SecretKeyFromBytes(make(by, 32))
	require.True(t, errors.Is(err, ErrSecretKeyRange))
	_, err = SecretKeyFromBytes(bytes.Repeat(by{0xff}, 32))
	require.True(t, errors.Is(err, ErrSecretKeyRange))
	_, err = SecretKeyFromBytes(make(by, 33))
	require.True(t, errors.Is(err, ErrSecretKeyLength))
	one := make(by, 32)
	one[31] = 1
	sk, err := SecretKeyFromBytes(one)
	require.NoError(t, err)
	require.Equal(t, one, sk.Serialize())
}

func TestGenerateRedraws(t *testing.T) {
	// an all zero draw and an overflowing draw come first and must be skipped
	good := frand.Bytes(32)
	good[0] = 0x7f
	r := io.MultiReader(bytes.NewReader(make(by, 32)),
		bytes.NewReader(bytes.Repeat(by{0xff}, 32)), bytes.NewReader(good))
	sk, pub, err := Generate(r)
	require.NoError(t, err)
	require.Equal(t, good, sk.Serialize())
	require.True(t, pub.IsEqual(sk.PubKey()))
	_, err = GenerateSecretKey(bytes.NewReader(make(by, 40)))
	require.Error(t, err)
}

func TestKeyPair(t *testing.T) {
	var odd, even bo
	for range 64 {
		sk, err := GenerateSecretKey(frand.Reader)
		require.NoError(t, err)
		kp := DeriveKeyPair(sk)
		x := kp.XOnly()
		require.Equal(t, kp.Public().SerializeCompressed()[1:], x.Bytes())
		lifted, err := x.PublicKey()
		require.NoError(t, err)
		require.Equal(t, !kp.OddY(), lifted.IsEqual(kp.Public()))
		odd, even = odd || kp.OddY(), even || !kp.OddY()
		// the pair holds its own copy of the scalar
		sk.Zero()
		require.False(t, kp.Secret().Key.IsZero())
	}
	require.True(t, odd && even)
}

func TestSignVerify(t *testing.T) {
	sk, err := GenerateSecretKey(frand.Reader)
	require.NoError(t, err)
	kp := DeriveKeyPair(sk)
	digest := frand.Bytes(DigestLen)
	sig, err := SignSchnorr(kp, digest)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLen)
	again, err := SignSchnorr(kp, digest)
	require.NoError(t, err)
	require.Equal(t, sig, again)
	valid, err := VerifySchnorr(kp.XOnly(), digest, sig)
	require.NoError(t, err)
	require.True(t, valid)
	var aux [32]byte
	frand.Read(aux[:])
	sig2, err := SignSchnorrWithAux(kp, digest, aux)
	require.NoError(t, err)
	valid, err = VerifySchnorr(kp.XOnly(), digest, sig2)
	require.NoError(t, err)
	require.True(t, valid)
	_, err = SignSchnorr(kp, digest[:31])
	require.True(t, errors.Is(err, ErrDigestLength))
	_, err = VerifySchnorr(kp.XOnly(), digest, sig[:63])
	require.True(t, errors.Is(err, ErrSignatureInvalid))
}

func TestSharedX(t *testing.T) {
	a, err := GenerateSecretKey(frand.Reader)
	require.NoError(t, err)
	b, err := GenerateSecretKey(frand.Reader)
	require.NoError(t, err)
	ab, err := SharedX(a, DeriveKeyPair(b).XOnly())
	require.NoError(t, err)
	ba, err := SharedX(b, DeriveKeyPair(a).XOnly())
	require.NoError(t, err)
	require.Len(t, ab, 32)
	require.Equal(t, ab, ba)
}

func TestParseXOnly(t *testing.T) {
	_, err := ParseXOnly(bytes.Repeat(by{0xff}, 32))
	require.True(t, errors.Is(err, ErrPublicKeyInvalid))
	sk, err := GenerateSecretKey(frand.Reader)
	require.NoError(t, err)
	x := XOnlyFromPublicKey(sk.PubKey())
	p, err := ParseXOnly(x[:])
	require.NoError(t, err)
	require.Equal(t, x, p)
	require.Len(t, x.String(), 64)
}
