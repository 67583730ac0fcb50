package exporter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/badele/keygrabstats/internal/types"
)

// KeyGrabber special key labels
var specialKeys = map[string]tcell.Key{
	"[Ent]": tcell.KeyEnter,
	"[Bck]": tcell.KeyBackspace,
	"[Tab]": tcell.KeyTab,
	"[Esc]": tcell.KeyEscape,
	"[Del]": tcell.KeyDelete,
	"[Ins]": tcell.KeyInsert,
	"[Hom]": tcell.KeyHome,
	"[End]": tcell.KeyEnd,
	"[PgU]": tcell.KeyPgUp,
	"[PgD]": tcell.KeyPgDn,
	"[Up]":  tcell.KeyUp,
	"[Dwn]": tcell.KeyDown,
	"[Lft]": tcell.KeyLeft,
	"[Rgh]": tcell.KeyRight,
	"[Prt]": tcell.KeyPrint,
	"[Pau]": tcell.KeyPause,
	"[F1]":  tcell.KeyF1,
	"[F2]":  tcell.KeyF2,
	"[F3]":  tcell.KeyF3,
	"[F4]":  tcell.KeyF4,
	"[F5]":  tcell.KeyF5,
	"[F6]":  tcell.KeyF6,
	"[F7]":  tcell.KeyF7,
	"[F8]":  tcell.KeyF8,
	"[F9]":  tcell.KeyF9,
	"[F10]": tcell.KeyF10,
	"[F11]": tcell.KeyF11,
	"[F12]": tcell.KeyF12,
}

// KeyName returns a readable name for the label of k: the terminal key name
// for known bracket tokens, "Space" for a space, the label otherwise.
func KeyName(k types.KeyPress) string {
	if k.Label == " " {
		return "Space"
	}
	if key, ok := specialKeys[k.Label]; ok {
		if name, ok := tcell.KeyNames[key]; ok {
			return name
		}
	}
	return k.Label
}
