package telemetry

import (
	"time"

	gologging "github.com/op/go-logging"

	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/game"
)

var log = gologging.MustGetLogger("telemetry")

// Reporter turns game callbacks into events for every publisher
// Runs on the driver goroutine; publishers must not block
type Reporter struct {
	session    string
	publishers []Publisher
	now        func() time.Time

	failures int
}

// NewReporter creates a reporter for session, nil publishers are skipped
func NewReporter(session string, publishers ...Publisher) *Reporter {
	r := &Reporter{session: session, now: time.Now}
	for _, p := range publishers {
		if p != nil {
			r.publishers = append(r.publishers, p)
		}
	}
	return r
}

// OnEat implements game.Listener
func (r *Reporter) OnEat(pos game.Vector2, stats game.Stats) {
	ev := r.event(KindEat, stats)
	ev.X, ev.Y = pos.X, pos.Y
	r.publish(ev)
}

// OnRoundReset implements game.Listener
func (r *Reporter) OnRoundReset(cause error, stats game.Stats) {
	ev := r.event(KindReset, stats)
	ev.Cause = engine.ResetReason(cause)
	r.publish(ev)
}

// Failures returns the number of failed publishes
func (r *Reporter) Failures() int {
	return r.failures
}

func (r *Reporter) event(kind string, stats game.Stats) Event {
	return Event{
		Session: r.session,
		Kind:    kind,
		Round:   stats.Round,
		Score:   stats.Score,
		Length:  stats.Length,
		Best:    stats.Best,
		At:      r.now(),
	}
}

func (r *Reporter) publish(ev Event) {
	for _, p := range r.publishers {
		if err := p.Publish(ev); err != nil {
			r.failures++
			log.Warningf("publish %s event: %v", ev.Kind, err)
		}
	}
}
