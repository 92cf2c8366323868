package config

import (
	"identity.realy.lol/lol"
)

type (
	bo = bool
	st = string
	er = error
	no = int
)

var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
