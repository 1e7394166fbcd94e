package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/core"
)

// CommandKind enumerates player requests accepted by the scheduler
type CommandKind uint8

const (
	CmdDirection CommandKind = iota
	CmdTogglePause
	CmdRestart
	CmdSpeed
)

var commandNames = [...]string{
	CmdDirection:   "direction",
	CmdTogglePause: "pause",
	CmdRestart:     "restart",
	CmdSpeed:       "speed",
}

func (k CommandKind) String() string {
	if int(k) >= len(commandNames) {
		return fmt.Sprintf("CommandKind(%d)", k)
	}
	return commandNames[k]
}

// Command is a discrete input forwarded to the game loop
// Direction and Speed are read only for their matching kinds
type Command struct {
	Kind      CommandKind
	Direction core.Direction
	Speed     core.Speed
}

func DirectionCommand(d core.Direction) Command {
	return Command{Kind: CmdDirection, Direction: d}
}

func PauseCommand() Command {
	return Command{Kind: CmdTogglePause}
}

func RestartCommand() Command {
	return Command{Kind: CmdRestart}
}

func SpeedCommand(s core.Speed) Command {
	return Command{Kind: CmdSpeed, Speed: s}
}

func (c Command) String() string {
	switch c.Kind {
	case CmdDirection:
		return "direction " + c.Direction.String()
	case CmdSpeed:
		return "speed " + c.Speed.String()
	default:
		return c.Kind.String()
	}
}
