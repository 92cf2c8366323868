package sha256

import (
	"testing"

	"github.com/stretchr/testify/require"

	"identity.realy.lol/hex"
)

func TestDigest(t *testing.T) {
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.Enc(Digest(nil)))
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.Enc(Digest([]byte("abc"))))
	h := New()
	_, _ = h.Write([]byte("abc"))
	sum := Sum256([]byte("abc"))
	require.Equal(t, sum[:], h.Sum(nil))
	require.Len(t, Digest([]byte("x")), Size)
}
