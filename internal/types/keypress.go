package types

import "strings"

/////////////////////////////////////////////////////////////////////////////
// MODIFIER
/////////////////////////////////////////////////////////////////////////////

// Modifier is a set of modifier keys held while a key is pressed.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModSuper Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModShift
)

// modifierOrder is the display order of modifier names.
var modifierOrder = []struct {
	Mod  Modifier
	Name string
}{
	{ModSuper, "Super"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns the held modifiers joined with "+", e.g. "Super+Ctrl".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.Mod) {
			parts = append(parts, o.Name)
		}
	}
	return strings.Join(parts, "+")
}

/////////////////////////////////////////////////////////////////////////////
// KEY PRESS
/////////////////////////////////////////////////////////////////////////////

// KeyPress is one resolved key event read from a keylogger line.
// Label is either a single character or a bracket token such as "[Ent]".
// KeyPress is comparable and is used directly as a map key.
type KeyPress struct {
	Label string `json:"label" yaml:"label"`
	Super bool   `json:"super,omitempty" yaml:"super,omitempty"`
	Ctrl  bool   `json:"ctrl,omitempty" yaml:"ctrl,omitempty"`
	Alt   bool   `json:"alt,omitempty" yaml:"alt,omitempty"`
	Shift bool   `json:"shift,omitempty" yaml:"shift,omitempty"`
}

func NewKeyPress(label string) KeyPress {
	return KeyPress{Label: label}
}

func NewKeyPressWith(label string, super, ctrl, alt, shift bool) KeyPress {
	return KeyPress{Label: label, Super: super, Ctrl: ctrl, Alt: alt, Shift: shift}
}

// NewKeyPressMod builds a KeyPress from a modifier set.
func NewKeyPressMod(label string, mod Modifier) KeyPress {
	return NewKeyPressWith(label, mod.Has(ModSuper), mod.Has(ModCtrl), mod.Has(ModAlt), mod.Has(ModShift))
}

func ShiftPressed(label string) KeyPress {
	return KeyPress{Label: label, Shift: true}
}

func CtrlPressed(label string) KeyPress {
	return KeyPress{Label: label, Ctrl: true}
}

func AltPressed(label string) KeyPress {
	return KeyPress{Label: label, Alt: true}
}

func SuperPressed(label string) KeyPress {
	return KeyPress{Label: label, Super: true}
}

// Modifiers returns the modifier flags as a set.
func (k KeyPress) Modifiers() Modifier {
	mod := ModNone
	if k.Super {
		mod = mod.With(ModSuper)
	}
	if k.Ctrl {
		mod = mod.With(ModCtrl)
	}
	if k.Alt {
		mod = mod.With(ModAlt)
	}
	if k.Shift {
		mod = mod.With(ModShift)
	}
	return mod
}

// IsShortcut reports whether Super or Ctrl was held.
func (k KeyPress) IsShortcut() bool {
	return k.Super || k.Ctrl
}

// String renders the key as "Super+Ctrl+Alt+Shift+<label>", listing only
// the held modifiers.
func (k KeyPress) String() string {
	var sb strings.Builder
	for _, o := range modifierOrder {
		if k.Modifiers().Has(o.Mod) {
			sb.WriteString(o.Name)
			sb.WriteByte('+')
		}
	}
	sb.WriteString(k.Label)
	return sb.String()
}

/////////////////////////////////////////////////////////////////////////////
// TOKENIZER STATS
/////////////////////////////////////////////////////////////////////////////

type TokenizerStats struct {
	Lines          int   `json:"lines" yaml:"lines"`
	KeyPresses     int   `json:"key_presses" yaml:"key_presses"`
	ModifierTokens int   `json:"modifier_tokens" yaml:"modifier_tokens"`
	DroppedTokens  int   `json:"dropped_tokens" yaml:"dropped_tokens"`
	FileSize       int64 `json:"file_size" yaml:"file_size"`
}
