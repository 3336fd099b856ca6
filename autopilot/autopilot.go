// Package autopilot steers the snake toward the food
//
// A* over the free cells is tried first; when the food is unreachable the
// pilot falls back to the free neighbor closest to the food
package autopilot

import (
	"github.com/joonazan/vec2"
	"github.com/nickdavies/go-astar/astar"
	gologging "github.com/op/go-logging"

	"github.com/lixenwraith/term-snake/game"
)

var log = gologging.MustGetLogger("autopilot")

var headings = [...]game.Direction{game.Up, game.Left, game.Right, game.Down}

// Pilot plans one heading per tick from a board snapshot
type Pilot struct {
	walls game.PositionChecker

	planned  int
	fallback int
}

// New creates a pilot that treats cells rejected by walls as impassable
func New(walls game.PositionChecker) *Pilot {
	return &Pilot{walls: walls}
}

// Next returns the heading toward the food, ok=false keeps the current heading
func (p *Pilot) Next(snap game.Snapshot) (game.Direction, bool) {
	if len(snap.Body) == 0 {
		return game.Up, false
	}
	head := snap.Body[len(snap.Body)-1]
	blocked := p.blockedCells(snap)

	d, found := p.plan(snap, head.Value, blocked)
	if found {
		p.planned++
	} else {
		d, found = greedy(snap, head, blocked)
		if !found {
			log.Debugf("no free neighbor around %v", head.Value)
			return head.Direction, false
		}
		p.fallback++
	}

	if d == head.Direction || d == head.Direction.Opposite() {
		return head.Direction, false
	}
	return d, true
}

// Stats returns how many headings came from path search and from the greedy fallback
func (p *Pilot) Stats() (planned, fallback int) {
	return p.planned, p.fallback
}

func (p *Pilot) blockedCells(snap game.Snapshot) map[game.Vector2]bool {
	blocked := make(map[game.Vector2]bool, len(snap.Body)+int(2*(snap.Size.X+snap.Size.Y)))
	for y := uint(0); y < snap.Size.Y; y++ {
		for x := uint(0); x < snap.Size.X; x++ {
			pos := game.Vector2{X: x, Y: y}
			if !p.walls.IsFreePos(pos) {
				blocked[pos] = true
			}
		}
	}
	// Head excluded, it is the search source
	for _, seg := range snap.Body[:len(snap.Body)-1] {
		blocked[seg.Value] = true
	}
	return blocked
}

func (p *Pilot) plan(snap game.Snapshot, head game.Vector2, blocked map[game.Vector2]bool) (game.Direction, bool) {
	rows, cols := int(snap.Size.Y), int(snap.Size.X)
	a := astar.NewAStar(rows, cols)
	for pos := range blocked {
		a.FillTile(point(pos), -1)
	}

	path := a.FindPath(astar.NewPointToPoint(), []astar.Point{point(head)}, []astar.Point{point(snap.Food)})
	if path == nil {
		return game.Up, false
	}

	var chain []astar.Point
	for ; path != nil; path = path.Parent {
		chain = append(chain, path.Point)
	}
	if len(chain) < 2 {
		return game.Up, false
	}

	src := point(head)
	var next astar.Point
	switch {
	case chain[0] == src:
		next = chain[1]
	case chain[len(chain)-1] == src:
		next = chain[len(chain)-2]
	default:
		return game.Up, false
	}
	return towards(src, next)
}

func point(v game.Vector2) astar.Point {
	return astar.Point{Row: int(v.Y), Col: int(v.X)}
}

// towards maps a unit step between adjacent points to a heading
func towards(from, to astar.Point) (game.Direction, bool) {
	for _, d := range headings {
		dx, dy := d.Delta()
		if from.Col+dx == to.Col && from.Row+dy == to.Row {
			return d, true
		}
	}
	return game.Up, false
}

// greedy picks the free non-reversing neighbor nearest to the food
func greedy(snap game.Snapshot, head game.Directed[game.Vector2], blocked map[game.Vector2]bool) (game.Direction, bool) {
	food := vec(snap.Food)
	best := game.Up
	bestDist := -1.0

	for _, d := range headings {
		if d == head.Direction.Opposite() {
			continue
		}
		next, ok := neighbor(head.Value, d, snap.Size)
		if !ok || blocked[next] {
			continue
		}
		dist := vec(next).Minus(food).Length()
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, bestDist >= 0
}

func neighbor(pos game.Vector2, d game.Direction, size game.Vector2) (game.Vector2, bool) {
	dx, dy := d.Delta()
	x, y := int(pos.X)+dx, int(pos.Y)+dy
	if x < 0 || y < 0 || x >= int(size.X) || y >= int(size.Y) {
		return game.Vector2{}, false
	}
	return game.Vector2{X: uint(x), Y: uint(y)}, true
}

func vec(v game.Vector2) vec2.Vector {
	return vec2.Vector{X: float64(v.X), Y: float64(v.Y)}
}
