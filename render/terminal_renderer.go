package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/game"
)

// TerminalRenderer paints frames and the status line onto a tcell screen
// Called from the driver goroutine only
type TerminalRenderer struct {
	screen     tcell.Screen
	statusLine bool
	autopilot  bool

	frames uint64
}

// NewTerminalRenderer creates a renderer and hides the cursor for the session
func NewTerminalRenderer(screen tcell.Screen, statusLine, autopilot bool) *TerminalRenderer {
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	screen.Clear()
	return &TerminalRenderer{
		screen:     screen,
		statusLine: statusLine,
		autopilot:  autopilot,
	}
}

// Present draws a full frame and flushes it to the terminal
func (r *TerminalRenderer) Present(frame game.Frame, stats game.Stats) {
	r.frames++

	for _, ins := range frame {
		x := int(ins.Pos.X)
		y := int(ins.Pos.Y)
		for i, cell := range ins.Shape {
			r.screen.SetContent(x+i, y, Glyph(cell), nil, StyleFor(cell.Value))
		}
	}

	if r.statusLine {
		r.drawStatusLine(len(frame), stats)
	}

	r.screen.Show()
}

// Frames returns the number of presented frames
func (r *TerminalRenderer) Frames() uint64 {
	return r.frames
}

// StatusText formats the status line contents
func StatusText(stats game.Stats) string {
	return fmt.Sprintf(" round %d  score %d  length %d  best %d ", stats.Round, stats.Score, stats.Length, stats.Best)
}

func (r *TerminalRenderer) drawStatusLine(y int, stats game.Stats) {
	width, _ := r.screen.Size()
	statusStyle := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	clearStyle := tcell.StyleDefault.Background(RgbBackground)

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, clearStyle)
	}

	x := drawText(r.screen, 0, y, StatusText(stats), statusStyle)
	if r.autopilot {
		pilotStyle := tcell.StyleDefault.Background(RgbAutopilotBg).Foreground(RgbStatusTextLight)
		drawText(r.screen, x+1, y, constants.AutopilotTag, pilotStyle)
	}
}

// drawText writes s from (x, y) and returns the column after it
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
