package render

import (
	"strings"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/game"
)

// Glyph maps a directed symbol to its terminal rune; only the head glyph depends on direction
func Glyph(cell game.Directed[game.Symbol]) rune {
	switch cell.Value {
	case game.SymbolWall:
		return constants.GlyphWall
	case game.SymbolSnakeBody:
		return constants.GlyphSnakeBody
	case game.SymbolApple:
		return constants.GlyphApple
	case game.SymbolSnakeHead:
		switch cell.Direction {
		case game.Up:
			return constants.GlyphHeadUp
		case game.Left:
			return constants.GlyphHeadLeft
		case game.Right:
			return constants.GlyphHeadRight
		default:
			return constants.GlyphHeadDown
		}
	default:
		return constants.GlyphEmpty
	}
}

// RowText renders one instruction as its glyph string
func RowText(ins game.DrawInstruction) string {
	var sb strings.Builder
	sb.Grow(len(ins.Shape) * 3)
	for _, cell := range ins.Shape {
		sb.WriteRune(Glyph(cell))
	}
	return sb.String()
}

// FrameText renders every row of a frame in order
func FrameText(f game.Frame) []string {
	rows := make([]string, len(f))
	for i, ins := range f {
		rows[i] = RowText(ins)
	}
	return rows
}
