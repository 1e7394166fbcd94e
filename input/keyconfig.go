package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// LoadKeyConfig turns a key→action map (the [keys] config table) into a sparse override KeyTable
// Keys are a single character, a rune alias (space) or a special key name (up, enter, esc)
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for keyName, action := range bindings {
		entry, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", keyName, action)
		}

		name := strings.ToLower(keyName)
		if key, ok := specialKeyNames[name]; ok {
			kt.SpecialKeys[key] = entry
			continue
		}
		if r, ok := runeAliases[name]; ok {
			kt.Runes[r] = entry
			continue
		}
		if utf8.RuneCountInString(name) == 1 {
			r, _ := utf8.DecodeRuneInString(name)
			kt.Runes[r] = entry
			continue
		}
		return nil, fmt.Errorf("invalid key name %q", keyName)
	}
	return kt, nil
}
