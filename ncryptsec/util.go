package ncryptsec

import (
	"identity.realy.lol/lol"
)

type (
	by = []byte
	st = string
	er = error
)

var log, chk = lol.Main.Log, lol.Main.Check
