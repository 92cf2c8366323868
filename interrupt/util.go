package interrupt

import (
	"identity.realy.lol/lol"
)

var log = lol.Main.Log
