// Package maze holds the static occupancy grid the snake moves in
package maze

import (
	"fmt"

	"github.com/lixenwraith/term-snake/game"
)

// Cell types
type Cell uint8

const (
	Passage Cell = iota
	Wall
)

// Map is a width x height grid with a walled outer ring, immutable after New
type Map struct {
	grid [][]Cell // [y][x]
}

// New allocates a grid of passages and walls off the outer ring
// Sizes below 2 on either axis are a precondition violation and panic
func New(width, height int) *Map {
	if width < 2 || height < 2 {
		panic(fmt.Sprintf("maze: degenerate size %dx%d", width, height))
	}

	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		grid[y][0] = Wall
		grid[y][width-1] = Wall
	}
	for x := 0; x < width; x++ {
		grid[0][x] = Wall
		grid[height-1][x] = Wall
	}

	return &Map{grid: grid}
}

// IsFreePos reports passage cells; querying outside the grid panics
func (m *Map) IsFreePos(pos game.Vector2) bool {
	if pos.Y >= uint(len(m.grid)) || pos.X >= uint(len(m.grid[pos.Y])) {
		panic(fmt.Sprintf("maze: cell not found on %s", pos))
	}
	return m.grid[pos.Y][pos.X] == Passage
}

// Size returns width and height
func (m *Map) Size() game.Vector2 {
	return game.Vector2{X: uint(len(m.grid[0])), Y: uint(len(m.grid))}
}

// Draw emits one instruction per row; walls have no orientation so every cell faces Up
func (m *Map) Draw() []game.DrawInstruction {
	rows := make([]game.DrawInstruction, len(m.grid))
	for y, line := range m.grid {
		shape := make([]game.Directed[game.Symbol], len(line))
		for x, c := range line {
			sym := game.SymbolEmpty
			if c == Wall {
				sym = game.SymbolWall
			}
			shape[x] = game.Directed[game.Symbol]{Direction: game.Up, Value: sym}
		}
		rows[y] = game.DrawInstruction{Pos: game.Vector2{X: 0, Y: uint(y)}, Shape: shape}
	}
	return rows
}
