package engine

import (
	"errors"

	"github.com/lixenwraith/term-snake/game"
)

// Listeners fans round events out to several observers in order
type Listeners []game.Listener

func (ls Listeners) OnEat(pos game.Vector2, stats game.Stats) {
	for _, l := range ls {
		l.OnEat(pos, stats)
	}
}

func (ls Listeners) OnRoundReset(cause error, stats game.Stats) {
	for _, l := range ls {
		l.OnRoundReset(cause, stats)
	}
}

// RoundLogger writes round events to the engine log
type RoundLogger struct {
	Session string
}

func (r RoundLogger) OnEat(pos game.Vector2, stats game.Stats) {
	log.Debugf("[%s] round %d: ate apple at %s, score %d", r.Session, stats.Round, pos, stats.Score)
}

func (r RoundLogger) OnRoundReset(cause error, stats game.Stats) {
	log.Infof("[%s] round %d over (%s): score %d, length %d, best %d",
		r.Session, stats.Round, ResetReason(cause), stats.Score, stats.Length, stats.Best)
}

// ResetReason names a round-ending cause for logs and telemetry
func ResetReason(cause error) string {
	switch {
	case cause == nil:
		return "reset"
	case errors.Is(cause, game.ErrKilledByWall):
		return "wall"
	case errors.Is(cause, game.ErrSelfEatingStep):
		return "self"
	}
	return cause.Error()
}
