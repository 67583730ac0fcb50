package keygrabber

import "github.com/badele/keygrabstats/internal/types"

const (
	tokenOpen  = '['
	tokenClose = ']'
)

// Modifier tokens written by the keylogger before the key they apply to.
var modifierTokens = map[string]types.Modifier{
	"[Sh]":  types.ModShift,
	"[Ctl]": types.ModCtrl,
	"[Alt]": types.ModAlt,
	"[Win]": types.ModSuper,
}
