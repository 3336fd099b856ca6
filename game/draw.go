package game

// Symbol is the logical content of a drawn cell, mapped to a glyph by the renderer
type Symbol int

const (
	SymbolEmpty Symbol = iota
	SymbolWall
	SymbolApple
	SymbolSnakeBody
	SymbolSnakeHead
)

var symbolNames = [...]string{"empty", "wall", "apple", "snake-body", "snake-head"}

func (s Symbol) String() string {
	if s < SymbolEmpty || s > SymbolSnakeHead {
		return "unknown"
	}
	return symbolNames[s]
}

// DrawInstruction paints Shape horizontally starting at Pos
type DrawInstruction struct {
	Pos   Vector2
	Shape []Directed[Symbol]
}

// Frame is an ordered list of row instructions, one per grid row
type Frame []DrawInstruction

// Cell returns the directed symbol at (x, y), false when the frame does not cover it
func (f Frame) Cell(x, y uint) (Directed[Symbol], bool) {
	for _, ins := range f {
		if ins.Pos.Y != y || x < ins.Pos.X {
			continue
		}
		i := x - ins.Pos.X
		if i < uint(len(ins.Shape)) {
			return ins.Shape[i], true
		}
	}
	return Directed[Symbol]{}, false
}

// Compose overlays each entity instruction onto the base rows in order, later overlays win
// Base rows must start at column zero; an overlay outside the base panics
func Compose(base Frame, overlays ...[]DrawInstruction) Frame {
	for _, layer := range overlays {
		for _, ins := range layer {
			if ins.Pos.Y >= uint(len(base)) {
				panic("frame does not cover row of " + ins.Pos.String())
			}
			row := base[ins.Pos.Y].Shape
			end := ins.Pos.X + uint(len(ins.Shape))
			if end > uint(len(row)) {
				panic("frame does not cover cells of " + ins.Pos.String())
			}
			copy(row[ins.Pos.X:end], ins.Shape)
		}
	}
	return base
}
