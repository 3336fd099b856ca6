package game

// Drawer produces draw instructions for itself
type Drawer interface {
	Draw() []DrawInstruction
}

// Resetter restores initial state
type Resetter interface {
	Reset()
}

// PositionChecker reports whether a cell is not taken by the implementer
type PositionChecker interface {
	IsFreePos(pos Vector2) bool
}

// PositionCheckerFunc adapts a function to PositionChecker
type PositionCheckerFunc func(pos Vector2) bool

func (f PositionCheckerFunc) IsFreePos(pos Vector2) bool { return f(pos) }

// Map is the static occupancy grid
type Map interface {
	Drawer
	PositionChecker
	Size() Vector2
}

// Food relocates itself to random free cells
type Food interface {
	Drawer
	// Spawn samples interior cells of boundary until checker reports one free
	Spawn(boundary Vector2, checker PositionChecker)
	Pos() Vector2
}

// Character is the player controlled body
type Character interface {
	Drawer
	PositionChecker
	Resetter
	// Grow retains the tail on the next step
	Grow()
	// Turn changes the heading, ErrSelfTurningDirection if the next step would be self-eating
	Turn(d Direction) error
	// Step advances one cell, ErrSelfEatingStep on collision with the body
	Step() error
	HeadPos() Vector2
	CanEat(pos Vector2) bool
	Segments() []Directed[Vector2]
}

// Listener observes round-level events, it must not mutate game state
type Listener interface {
	OnEat(pos Vector2, stats Stats)
	OnRoundReset(cause error, stats Stats)
}
