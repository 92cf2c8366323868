package env

import (
	"identity.realy.lol/lol"
)

var log, chk = lol.Main.Log, lol.Main.Check
