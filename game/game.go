package game

import "errors"

// Stats summarizes the current round and the session
type Stats struct {
	Round  int // 1-based round counter
	Score  int // apples eaten this round
	Length int // current body length
	Best   int // best score in this session
}

// Snapshot is a read-only view of the board for planners
type Snapshot struct {
	Size Vector2
	Body []Directed[Vector2] // tail to head
	Food Vector2
}

// Option configures a Game
type Option func(*Game)

// WithListener registers a round event observer
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

// WithFrameSink receives every frame the game composes during tick, turn and reset
func WithFrameSink(sink func(Frame)) Option {
	return func(g *Game) {
		g.frameSink = sink
	}
}

// Game owns one map, one character and one food and runs the round state machine
// Not safe for concurrent use; a single driver goroutine owns it
type Game struct {
	arena     Map
	character Character
	food      Food

	listeners []Listener
	frameSink func(Frame)

	round int
	score int
	best  int
}

// New assembles a game and places the first food against the character
func New(arena Map, character Character, food Food, opts ...Option) *Game {
	g := &Game{
		arena:     arena,
		character: character,
		food:      food,
		round:     1,
	}
	for _, opt := range opts {
		opt(g)
	}

	food.Spawn(arena.Size(), character)
	return g
}

// Tick advances the character one step, resetting the round on collision
func (g *Game) Tick() {
	if err := g.stepCharacter(); err != nil {
		g.reset(err)
	}
}

// stepCharacter runs eat, step, draw and wall check for one tick
func (g *Game) stepCharacter() error {
	if g.character.CanEat(g.food.Pos()) {
		eaten := g.food.Pos()
		g.character.Grow()
		g.food.Spawn(g.arena.Size(), g.character)

		g.score++
		if g.score > g.best {
			g.best = g.score
		}
		stats := g.Stats()
		for _, l := range g.listeners {
			l.OnEat(eaten, stats)
		}
	}

	if err := g.character.Step(); err != nil {
		return err
	}
	g.emit()

	if !g.arena.IsFreePos(g.character.HeadPos()) {
		return ErrKilledByWall
	}
	return nil
}

// TurnCharacter applies a heading change; rejected turns are ignored
func (g *Game) TurnCharacter(d Direction) {
	if err := g.character.Turn(d); err != nil && !errors.Is(err, ErrSelfTurningDirection) {
		panic(err)
	}
	g.emit()
}

// Reset draws the pre-reset frame, restores the character and respawns food against it
func (g *Game) Reset() {
	g.reset(nil)
}

func (g *Game) reset(cause error) {
	g.emit()
	final := g.Stats()

	g.character.Reset()
	g.food.Spawn(g.arena.Size(), g.character)

	g.round++
	g.score = 0

	for _, l := range g.listeners {
		l.OnRoundReset(cause, final)
	}
}

// Draw composes the map with food and character overlays, character wins on overlap
func (g *Game) Draw() Frame {
	return Compose(g.arena.Draw(), g.food.Draw(), g.character.Draw())
}

func (g *Game) emit() {
	frame := g.Draw()
	if g.frameSink != nil {
		g.frameSink(frame)
	}
}

// Stats returns round counters
func (g *Game) Stats() Stats {
	return Stats{
		Round:  g.round,
		Score:  g.score,
		Length: len(g.character.Segments()),
		Best:   g.best,
	}
}

// Snapshot copies the board state for planners
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Size: g.arena.Size(),
		Body: g.character.Segments(),
		Food: g.food.Pos(),
	}
}

// Size returns the map dimensions
func (g *Game) Size() Vector2 {
	return g.arena.Size()
}
