package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent    IntentType
	Direction core.Direction
	Speed     core.Speed
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

func dir(d core.Direction) KeyEntry { return KeyEntry{Intent: IntentDirection, Direction: d} }
func speed(s core.Speed) KeyEntry { return KeyEntry{Intent: IntentSpeed, Speed: s} }
func intent(t IntentType) KeyEntry { return KeyEntry{Intent: t} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     dir(core.DirUp),
			tcell.KeyDown:   dir(core.DirDown),
			tcell.KeyLeft:   dir(core.DirLeft),
			tcell.KeyRight:  dir(core.DirRight),
			tcell.KeyEnter:  intent(IntentRestart),
			tcell.KeyEscape: intent(IntentQuit),
			tcell.KeyCtrlC:  intent(IntentQuit),
			tcell.KeyCtrlQ:  intent(IntentQuit),
		},
		Runes: map[rune]KeyEntry{
			'w': dir(core.DirUp),
			's': dir(core.DirDown),
			'a': dir(core.DirLeft),
			'd': dir(core.DirRight),
			' ': intent(IntentTogglePause),
			'p': intent(IntentTogglePause),
			'r': intent(IntentRestart),
			'1': speed(core.SpeedSlow),
			'2': speed(core.SpeedNormal),
			'3': speed(core.SpeedFast),
			'q': intent(IntentQuit),
		},
	}
}

// Merge applies non-nil override maps on top of the table
// An override entry with IntentNone unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	merge(kt.SpecialKeys, override.SpecialKeys)
	merge(kt.Runes, override.Runes)
}

func merge[K comparable](dst, src map[K]KeyEntry) {
	maps.Copy(dst, src)
	for k, e := range src {
		if e.Intent == IntentNone {
			delete(dst, k)
		}
	}
}
