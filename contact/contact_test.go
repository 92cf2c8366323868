package contact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"identity.realy.lol/keys"
)

func TestContact(t *testing.T) {
	k, err := keys.Generate()
	require.NoError(t, err)
	c := FromIdentity(k, "wss://relay.example.com", "fiatjaf")
	require.Equal(t, k.PublicKey(), c.PublicKey())
	u, ok := c.RelayURL()
	require.True(t, ok)
	require.Equal(t, "wss://relay.example.com", u)
	a, ok := c.Alias()
	require.True(t, ok)
	require.Equal(t, "fiatjaf", a)
	require.Equal(t, []string{"p", k.PublicKeyHex(), "wss://relay.example.com", "fiatjaf"}, c.Tag())

	bare := New(k.PublicKey(), "", "")
	_, ok = bare.RelayURL()
	require.False(t, ok)
	_, ok = bare.Alias()
	require.False(t, ok)
	require.Equal(t, []string{"p", k.PublicKeyHex()}, bare.Tag())
	require.Equal(t, []string{"p", k.PublicKeyHex(), "", "bob"}, New(k.PublicKey(), "", "bob").Tag())
}

func TestNprofile(t *testing.T) {
	k, err := keys.Generate()
	require.NoError(t, err)
	for _, relay := range []string{"", "wss://nos.lol"} {
		c := FromIdentity(k, relay, "")
		s, err := c.Nprofile()
		require.NoError(t, err)
		c2, err := FromNprofile(s, "me")
		require.NoError(t, err)
		require.Equal(t, c.PublicKey(), c2.PublicKey())
		u, _ := c2.RelayURL()
		require.Equal(t, relay, u)
		a, _ := c2.Alias()
		require.Equal(t, "me", a)
	}
	_, err = FromNprofile("nope", "")
	require.Error(t, err)
}
