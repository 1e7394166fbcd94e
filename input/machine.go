package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine translates terminal events into intents
// Snake input is stateless, so the machine is a table lookup
type Machine struct {
	table *KeyTable
}

// NewMachine creates a machine with the default bindings overlaid by override
func NewMachine(override *KeyTable) *Machine {
	table := DefaultKeyTable()
	table.Merge(override)
	return &Machine{table: table}
}

// Process returns the intent for ev, nil if the event is not bound
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.table.Runes[unicode.ToLower(ev.Rune())]
	} else {
		entry, ok = m.table.SpecialKeys[ev.Key()]
	}
	if !ok || entry.Intent == IntentNone {
		return nil
	}
	return &Intent{
		Type:      entry.Intent,
		Direction: entry.Direction,
		Speed:     entry.Speed,
	}
}
