package hex

import (
	"identity.realy.lol/lol"
)

type (
	by = []byte
	st = string
	er = error
	no = int
)

var chk = lol.Main.Check
