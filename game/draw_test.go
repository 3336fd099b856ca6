package game

import "testing"

func row(y uint, syms ...Symbol) DrawInstruction {
	shape := make([]Directed[Symbol], len(syms))
	for i, s := range syms {
		shape[i] = Directed[Symbol]{Direction: Up, Value: s}
	}
	return DrawInstruction{Pos: Vector2{X: 0, Y: y}, Shape: shape}
}

func TestComposeLaterOverlayWins(t *testing.T) {
	base := Frame{
		row(0, SymbolWall, SymbolWall, SymbolWall, SymbolWall),
		row(1, SymbolWall, SymbolEmpty, SymbolEmpty, SymbolWall),
		row(2, SymbolWall, SymbolWall, SymbolWall, SymbolWall),
	}
	food := []DrawInstruction{{Pos: Vector2{X: 1, Y: 1}, Shape: []Directed[Symbol]{{Direction: Up, Value: SymbolApple}}}}
	body := []DrawInstruction{{Pos: Vector2{X: 1, Y: 1}, Shape: []Directed[Symbol]{{Direction: Left, Value: SymbolSnakeHead}}}}

	frame := Compose(base, food, body)

	cell, ok := frame.Cell(1, 1)
	if !ok {
		t.Fatal("Expected cell (1,1) to be covered")
	}
	if cell.Value != SymbolSnakeHead || cell.Direction != Left {
		t.Errorf("Expected left head, got %s %s", cell.Direction, cell.Value)
	}
	if c, _ := frame.Cell(2, 1); c.Value != SymbolEmpty {
		t.Errorf("Expected neighbour untouched, got %s", c.Value)
	}
	if len(frame[1].Shape) != 4 {
		t.Errorf("Expected row width kept at 4, got %d", len(frame[1].Shape))
	}
}

func TestComposeMultiCellShape(t *testing.T) {
	base := Frame{row(0, SymbolEmpty, SymbolEmpty, SymbolEmpty, SymbolEmpty)}
	overlay := []DrawInstruction{row(0, SymbolWall, SymbolWall)}
	overlay[0].Pos.X = 2

	frame := Compose(base, overlay)
	want := []Symbol{SymbolEmpty, SymbolEmpty, SymbolWall, SymbolWall}
	for x, w := range want {
		if c, _ := frame.Cell(uint(x), 0); c.Value != w {
			t.Errorf("x=%d: expected %s, got %s", x, w, c.Value)
		}
	}
}

func TestComposeOutsideFramePanics(t *testing.T) {
	base := Frame{row(0, SymbolEmpty, SymbolEmpty)}
	cases := []DrawInstruction{
		{Pos: Vector2{X: 0, Y: 1}, Shape: []Directed[Symbol]{{Value: SymbolApple}}},
		{Pos: Vector2{X: 2, Y: 0}, Shape: []Directed[Symbol]{{Value: SymbolApple}}},
	}
	for _, ins := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for overlay at %s", ins.Pos)
				}
			}()
			Compose(base, []DrawInstruction{ins})
		}()
	}
}

func TestFrameCellMiss(t *testing.T) {
	frame := Frame{row(0, SymbolWall)}
	if _, ok := frame.Cell(3, 0); ok {
		t.Error("Expected miss past row end")
	}
	if _, ok := frame.Cell(0, 4); ok {
		t.Error("Expected miss past last row")
	}
}
