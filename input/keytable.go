package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	Keys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyTab:    IntentToggleContent,
			tcell.KeyUp:     IntentScrollUp,
			tcell.KeyDown:   IntentScrollDown,
			tcell.KeyPgUp:   IntentPageUp,
			tcell.KeyPgDn:   IntentPageDown,
			tcell.KeyHome:   IntentScrollTop,
			tcell.KeyEnd:    IntentScrollBottom,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleAudio,
			'k': IntentScrollUp,
			'j': IntentScrollDown,
			'g': IntentScrollTop,
			'G': IntentScrollBottom,
			' ': IntentPageDown,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
	if c.Keys == nil {
		c.Keys = make(map[tcell.Key]IntentType)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]IntentType)
	}
	return c
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
