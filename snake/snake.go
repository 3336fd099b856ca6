// Package snake implements the player character: an ordered body of directed segments
package snake

import "github.com/lixenwraith/term-snake/game"

type segment = game.Directed[game.Vector2]

// Snake body is ordered tail to head, the last element is the head
type Snake struct {
	body    []segment
	growing bool
}

// New creates a snake with the canonical initial body
func New() *Snake {
	return &Snake{body: initialBody()}
}

// NewWithBody creates a snake from an explicit tail-to-head body
func NewWithBody(body ...game.Directed[game.Vector2]) *Snake {
	if len(body) == 0 {
		panic("snake body must not be empty")
	}
	return &Snake{body: append([]segment(nil), body...)}
}

func initialBody() []segment {
	return []segment{
		{Direction: game.Right, Value: game.Vector2{X: 3, Y: 3}},
		{Direction: game.Right, Value: game.Vector2{X: 4, Y: 3}},
		{Direction: game.Down, Value: game.Vector2{X: 5, Y: 3}},
		{Direction: game.Down, Value: game.Vector2{X: 5, Y: 4}},
	}
}

func (s *Snake) head() segment {
	if len(s.body) == 0 {
		panic("the snake appears to be empty")
	}
	return s.body[len(s.body)-1]
}

// nextStep is where the head lands after one move in its own direction
func nextStep(last segment) segment {
	return segment{Direction: last.Direction, Value: game.Displace(last.Value, last.Direction)}
}

// occupies scans cells linearly, skipping the first skip segments
func (s *Snake) occupies(pos game.Vector2, skip int) bool {
	for _, part := range s.body[skip:] {
		if part.Value == pos {
			return true
		}
	}
	return false
}

// Step moves the head forward; unless growing, the tail leaves its cell first
// A rejected step leaves body and growth flag untouched
func (s *Snake) Step() error {
	skip := 1
	if s.growing {
		skip = 0
	}

	next := nextStep(s.head())
	if s.occupies(next.Value, skip) {
		return game.ErrSelfEatingStep
	}

	s.growing = false
	s.body = append(s.body[skip:], next)
	return nil
}

// Grow keeps the tail on the next step
func (s *Snake) Grow() {
	s.growing = true
}

// Turn commits a new head direction unless the following step would hit the body
func (s *Snake) Turn(d game.Direction) error {
	head := s.head()
	next := nextStep(segment{Direction: d, Value: head.Value})
	if s.occupies(next.Value, 0) {
		return game.ErrSelfTurningDirection
	}

	s.body[len(s.body)-1].Direction = d
	return nil
}

// HeadPos returns the head cell
func (s *Snake) HeadPos() game.Vector2 {
	return s.head().Value
}

// HeadDirection returns the current heading
func (s *Snake) HeadDirection() game.Direction {
	return s.head().Direction
}

// CanEat reports whether the head is on pos
func (s *Snake) CanEat(pos game.Vector2) bool {
	return s.HeadPos() == pos
}

// IsFreePos is true when no segment is on pos
func (s *Snake) IsFreePos(pos game.Vector2) bool {
	return !s.occupies(pos, 0)
}

// Reset restores the canonical body and clears growth
func (s *Snake) Reset() {
	s.body = initialBody()
	s.growing = false
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Segments returns a copy of the body, tail to head
func (s *Snake) Segments() []game.Directed[game.Vector2] {
	return append([]segment(nil), s.body...)
}

// Draw emits one body symbol per segment and a head symbol for the last one
func (s *Snake) Draw() []game.DrawInstruction {
	paint := make([]game.DrawInstruction, 0, len(s.body))
	for i, part := range s.body {
		sym := game.SymbolSnakeBody
		if i == len(s.body)-1 {
			sym = game.SymbolSnakeHead
		}
		paint = append(paint, game.DrawInstruction{
			Pos:   part.Value,
			Shape: []game.Directed[game.Symbol]{{Direction: part.Direction, Value: sym}},
		})
	}
	return paint
}
