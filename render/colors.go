package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/game"
)

// RGB color definitions per board symbol
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbApple      = tcell.NewRGBColor(255, 80, 80)   // Normal Red

	// Status line
	RgbStatusBg        = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText      = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbAutopilotBg     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusTextLight = tcell.NewRGBColor(255, 255, 255) // White
)

// StyleFor returns the cell style of a board symbol
func StyleFor(s game.Symbol) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch s {
	case game.SymbolWall:
		return base.Foreground(RgbWall)
	case game.SymbolSnakeBody:
		return base.Foreground(RgbSnakeBody)
	case game.SymbolSnakeHead:
		return base.Foreground(RgbSnakeHead).Bold(true)
	case game.SymbolApple:
		return base.Foreground(RgbApple)
	default:
		return base
	}
}
