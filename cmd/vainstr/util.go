package main

import (
	"identity.realy.lol/lol"
)

type (
	bo = bool
	st = string
	er = error
	no = int
)

var log, chk = lol.Main.Log, lol.Main.Check
