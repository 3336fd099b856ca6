package game

import "fmt"

// Vector2 is a grid cell address, origin at the top-left corner
type Vector2 struct {
	X, Y uint
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Direction is a 4-way compass heading
type Direction int

const (
	Up Direction = iota
	Left
	Right
	Down
)

var directionNames = [...]string{"up", "left", "right", "down"}

func (d Direction) String() string {
	if d < Up || d > Down {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection resolves a lowercase direction name
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return Up, false
}

// Delta returns the unit displacement of the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Displace moves pos one cell towards d
// Moving past the zero row or column is a precondition violation and panics
func Displace(pos Vector2, d Direction) Vector2 {
	dx, dy := d.Delta()
	if (dx < 0 && pos.X == 0) || (dy < 0 && pos.Y == 0) {
		panic(fmt.Sprintf("displacement %s from %s leaves the grid", d, pos))
	}
	return Vector2{
		X: uint(int(pos.X) + dx),
		Y: uint(int(pos.Y) + dy),
	}
}

// Directed pairs a heading with a payload: a position for body segments, a symbol for drawing
type Directed[T any] struct {
	Direction Direction
	Value     T
}
