package lol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	defer SetLoggers(Info)
	var b bytes.Buffer
	l, c, e := New(&b)
	SetLogLevel("warn")
	require.Equal(t, int32(Warn), Level.Load())
	l.I.Ln("hidden")
	require.Zero(t, b.Len())
	l.W.F("shown %d", 1)
	require.Contains(t, b.String(), "shown 1")
	b.Reset()
	require.False(t, c.E(nil))
	require.True(t, c.D(errors.New("quiet")))
	require.Zero(t, b.Len())
	require.True(t, c.E(errors.New("loud")))
	require.Contains(t, b.String(), "loud")
	b.Reset()
	err := e.E("bad %s", "thing")
	require.EqualError(t, err, "bad thing")
	require.Contains(t, b.String(), "bad thing")
	b.Reset()
	l.E.C(func() string { return strings.Repeat("x", 3) })
	require.Contains(t, b.String(), "xxx")
}

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, Debug, GetLogLevel("debug"))
	require.Equal(t, Off, GetLogLevel("off"))
	require.Equal(t, Info, GetLogLevel("nonsense"))
	defer SetLoggers(Info)
	SetLoggers(99)
	require.Equal(t, int32(Info), Level.Load())
}

func TestNullPrinter(t *testing.T) {
	p := GetNullPrinter()
	require.True(t, p.Chk(errors.New("x")))
	require.False(t, p.Chk(nil))
	require.EqualError(t, p.Err("e %d", 1), "e 1")
}
