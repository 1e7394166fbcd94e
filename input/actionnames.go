package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":    intent(IntentQuit),
	"pause":   intent(IntentTogglePause),
	"restart": intent(IntentRestart),

	"up":    dir(core.DirUp),
	"down":  dir(core.DirDown),
	"left":  dir(core.DirLeft),
	"right": dir(core.DirRight),

	"speed_slow":   speed(core.SpeedSlow),
	"speed_normal": speed(core.SpeedNormal),
	"speed_fast":   speed(core.SpeedFast),
}

// Named special keys accepted in keymap config
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}
