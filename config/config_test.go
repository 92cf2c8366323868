package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("CONFIG", t.TempDir())
	c, err := New("vainstr")
	require.NoError(t, err)
	require.Equal(t, "vainstr", c.AppName)
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, "text", c.Format)
	require.Equal(t, 16, c.LogN)
	require.Equal(t, 0, c.Threads)
	require.False(t, c.Pprof)
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FORMAT=yaml\nTHREADS=3\nSCRYPT_LOG_N=8\n"), 0600))
	t.Setenv("THREADS", "5")
	c, err := New("nkeys")
	require.NoError(t, err)
	require.Equal(t, "yaml", c.Format)
	require.Equal(t, 8, c.LogN)
	// the environment wins over the file
	require.Equal(t, 5, c.Threads)
}

func TestValidate(t *testing.T) {
	t.Setenv("CONFIG", t.TempDir())
	t.Setenv("FORMAT", "xml")
	_, err := New("nkeys")
	require.Error(t, err)
	c := &C{Format: "text", LogN: 23}
	require.Error(t, c.Validate())
	c = &C{Format: "yaml", LogN: 16, Threads: -1}
	require.Error(t, c.Validate())
	c = &C{Format: "yaml", LogN: 16}
	require.NoError(t, c.Validate())
}

func TestPseudoCommands(t *testing.T) {
	t.Setenv("CONFIG", t.TempDir())
	c, err := New("nkeys")
	require.NoError(t, err)
	var b bytes.Buffer
	require.False(t, c.HandlePseudoCommands([]string{"nkeys"}, &b))
	require.False(t, c.HandlePseudoCommands([]string{"nkeys", "generate"}, &b))
	require.Zero(t, b.Len())
	require.True(t, c.HandlePseudoCommands([]string{"nkeys", "env"}, &b))
	require.Contains(t, b.String(), "export APP_NAME=nkeys\n")
	require.Contains(t, b.String(), "export FORMAT=text\n")
	b.Reset()
	require.True(t, c.HandlePseudoCommands([]string{"nkeys", "help"}, &b))
	require.Contains(t, b.String(), "SCRYPT_LOG_N")
}
