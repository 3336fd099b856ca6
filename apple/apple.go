// Package apple implements the food item
package apple

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/game"
)

// Apple holds a single position and relocates on demand
type Apple struct {
	pos game.Vector2
	rng *rand.Rand
}

// New creates an apple at the origin; seed 0 selects a time based seed
func New(seed uint64) *Apple {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Apple{rng: rand.New(rand.NewSource(seed))}
}

// Spawn samples interior cells x in [1, boundary.X-2], y in [1, boundary.Y-2] until checker accepts one
// There is no retry cap: on a board with no free interior cell this never returns
func (a *Apple) Spawn(boundary game.Vector2, checker game.PositionChecker) {
	if boundary.X < 3 || boundary.Y < 3 {
		panic(fmt.Sprintf("boundary %s has no interior cell", boundary))
	}

	for {
		candidate := game.Vector2{
			X: uint(a.rng.Intn(int(boundary.X)-2)) + 1,
			Y: uint(a.rng.Intn(int(boundary.Y)-2)) + 1,
		}
		if checker.IsFreePos(candidate) {
			a.pos = candidate
			return
		}
	}
}

// Pos returns the current location
func (a *Apple) Pos() game.Vector2 {
	return a.pos
}

// Draw emits the apple symbol; apples have no orientation
func (a *Apple) Draw() []game.DrawInstruction {
	return []game.DrawInstruction{{
		Pos:   a.pos,
		Shape: []game.Directed[game.Symbol]{{Direction: game.Up, Value: game.SymbolApple}},
	}}
}
