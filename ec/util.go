package ec

import (
	"bytes"

	"identity.realy.lol/lol"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
)

var (
	log, chk = lol.Main.Log, lol.Main.Check
	equals   = bytes.Equal
)
