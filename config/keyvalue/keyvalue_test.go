package keyvalue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string   `env:"NAME"`
	Count   int      `env:"COUNT"`
	On      bool     `env:"ON"`
	Tags    []string `env:"TAGS"`
	Ignored string
}

func TestPrintEnv(t *testing.T) {
	var b bytes.Buffer
	PrintEnv(testConfig{Name: "a b", Count: 3, On: true, Tags: []string{"x", "y"}}, &b)
	require.Equal(t, `#!/usr/bin/env bash
export COUNT=3
export NAME="a b"
export ON=true
export TAGS=x,y
`, b.String())
}
