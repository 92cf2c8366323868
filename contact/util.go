package contact

import (
	"identity.realy.lol/lol"
)

type (
	bo = bool
	st = string
	er = error
)

var chk = lol.Main.Check
