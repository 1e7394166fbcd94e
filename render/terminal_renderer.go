package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth  = 2 // Terminal columns per grid cell, keeps cells roughly square
	flashTicks = 4 // Updates a score flash stays visible
)

// TerminalRenderer draws game snapshots onto a tcell screen
// It is an event.Handler and runs on the scheduler goroutine
type TerminalRenderer struct {
	screen tcell.Screen

	last    event.Snapshot
	hasLast bool

	// Score flash, e.g. "+50 bonus"
	flash     string
	flashLeft int

	// Cached metric pointers
	statHigh  *atomic.Int64
	statGames *atomic.Int64
}

// NewTerminalRenderer creates a renderer; statusReg supplies the best score and game count
func NewTerminalRenderer(screen tcell.Screen, statusReg *status.Registry) *TerminalRenderer {
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	return &TerminalRenderer{
		screen:    screen,
		statHigh:  statusReg.Ints.Get(status.KeyHighScore),
		statGames: statusReg.Ints.Get(status.KeyGames),
	}
}

// EventTypes implements event.Handler
func (r *TerminalRenderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameUpdated,
		event.EventGameOver,
		event.EventScoreChanged,
	}
}

// HandleEvent implements event.Handler
func (r *TerminalRenderer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameUpdated:
		if p, ok := ev.Payload.(*event.GameUpdatedPayload); ok {
			if r.flashLeft > 0 {
				r.flashLeft--
			}
			r.RenderFrame(p.Snapshot)
		}
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			r.flashLeft = 0
			r.RenderFrame(p.Snapshot)
		}
	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScoreChangedPayload); ok {
			r.flash = fmt.Sprintf("+%d %s", p.Points, p.Kind)
			r.flashLeft = flashTicks
		}
	}
}

// Redraw repaints the last snapshot after a resize
func (r *TerminalRenderer) Redraw() {
	r.screen.Sync()
	if r.hasLast {
		r.RenderFrame(r.last)
	}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap event.Snapshot) {
	r.last = snap
	r.hasLast = true

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	boardW := snap.Width*cellWidth + 2
	boardH := snap.Height + 2
	width, height := r.screen.Size()
	if width < boardW || height < boardH+1 {
		msg := fmt.Sprintf("terminal too small: need %dx%d", boardW, boardH+1)
		r.drawText(0, 0, defaultStyle.Foreground(RgbBorder), msg)
		r.screen.Show()
		return
	}

	r.drawBorder(boardW, boardH, defaultStyle.Foreground(RgbBorder))
	r.drawFood(snap, defaultStyle)
	r.drawSnake(snap, defaultStyle)
	r.drawOverlay(snap, defaultStyle)
	r.drawStatusBar(snap, boardH, width, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(w, h int, style tcell.Style) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, style)
}

func (r *TerminalRenderer) drawFood(snap event.Snapshot, style tcell.Style) {
	if !snap.HasFood {
		return
	}
	x, y := screenPos(snap.Food.Cell)
	r.screen.SetContent(x, y, '●', nil, style.Foreground(foodColor(snap.Food.Kind)))
}

func (r *TerminalRenderer) drawSnake(snap event.Snapshot, style tcell.Style) {
	bodyStyle := style.Foreground(RgbSnakeBody)
	headStyle := style.Foreground(RgbSnakeHead)
	if snap.State == core.StateGameOver && !snap.Cleared {
		headStyle = style.Foreground(RgbSnakeDead)
	}

	// Tail first so the head wins on overlap
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := snap.Snake[i]
		if !c.In(snap.Width, snap.Height) {
			continue
		}
		s := bodyStyle
		if i == 0 {
			s = headStyle
		}
		x, y := screenPos(c)
		r.screen.SetContent(x, y, '█', nil, s)
		r.screen.SetContent(x+1, y, '█', nil, s)
	}
}

func (r *TerminalRenderer) drawOverlay(snap event.Snapshot, style tcell.Style) {
	var msg string
	switch {
	case snap.State == core.StatePaused:
		msg = " PAUSED "
	case snap.State == core.StateGameOver && snap.Cleared:
		msg = " BOARD CLEARED "
	case snap.State == core.StateGameOver:
		msg = " GAME OVER "
	default:
		return
	}
	boardW := snap.Width*cellWidth + 2
	x := (boardW - runewidth.StringWidth(msg)) / 2
	if x < 1 {
		x = 1
	}
	y := 1 + snap.Height/2
	r.drawText(x, y, style.Foreground(RgbStatusText).Background(stateBackground(snap.State)), msg)
}

func (r *TerminalRenderer) drawStatusBar(snap event.Snapshot, y, width int, style tcell.Style) {
	statusStyle := style.Foreground(RgbStatusText)
	x := 0

	state := strings.ToUpper(strings.ReplaceAll(snap.State.String(), "_", " "))
	x = r.drawText(x, y, statusStyle.Background(stateBackground(snap.State)), " "+state+" ")
	x = r.drawText(x, y, statusStyle.Background(RgbScoreBg), fmt.Sprintf(" Score %d ", snap.Score))
	x = r.drawText(x, y, statusStyle.Background(RgbSpeedBg), " "+snap.Speed.String()+" ")
	x = r.drawText(x, y, style.Foreground(RgbBorder), fmt.Sprintf(" Len %d  Best %d  Game %d", len(snap.Snake), r.statHigh.Load(), r.statGames.Load()))

	if r.flashLeft > 0 && snap.State == core.StateRunning {
		r.drawText(x+2, y, style.Foreground(RgbFoodBonus), r.flash)
	}

	hint := "arrows/wasd move  space pause  enter restart  1-3 speed  q quit"
	if snap.State == core.StateGameOver {
		hint = "enter restart  q quit"
	}
	if y+1 < r.heightOf() && runewidth.StringWidth(hint) <= width {
		r.drawText(0, y+1, style.Foreground(RgbHintText), hint)
	}
}

func (r *TerminalRenderer) heightOf() int {
	_, h := r.screen.Size()
	return h
}

// drawText writes text and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, style tcell.Style, text string) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// screenPos maps a grid cell to its left terminal column inside the border
func screenPos(c core.Cell) (int, int) {
	return 1 + c.X*cellWidth, 1 + c.Y
}
