package engine

import (
	"context"

	gologging "github.com/op/go-logging"

	"github.com/lixenwraith/term-snake/events"
	"github.com/lixenwraith/term-snake/game"
)

var log = gologging.MustGetLogger("engine")

// Presenter receives every frame the driver shows
type Presenter interface {
	Present(frame game.Frame, stats game.Stats)
}

// Pilot proposes a heading before each tick; ok=false keeps the current one
type Pilot interface {
	Next(snap game.Snapshot) (d game.Direction, ok bool)
}

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithPresenter adds a frame consumer
func WithPresenter(p Presenter) DriverOption {
	return func(d *Driver) {
		if p != nil {
			d.presenters = append(d.presenters, p)
		}
	}
}

// WithPilot steers the snake automatically before every tick
func WithPilot(p Pilot) DriverOption {
	return func(d *Driver) {
		d.pilot = p
	}
}

// Driver is the single consumer of the event bus and the only goroutine touching the game
type Driver struct {
	game       *game.Game
	bus        *events.Bus
	presenters []Presenter
	pilot      Pilot

	handled map[events.EventType]int
}

// NewDriver wires a game to its event bus
func NewDriver(g *game.Game, bus *events.Bus, opts ...DriverOption) *Driver {
	d := &Driver{
		game:    g,
		bus:     bus,
		handled: make(map[events.EventType]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes events in arrival order until quit or ctx cancellation
// Closing the bus on return tells producers to stop
func (d *Driver) Run(ctx context.Context) error {
	defer d.bus.Close()

	// First frame appears without waiting for the clock
	d.tick()
	d.present()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-d.bus.Events():
			d.handled[ev.Type]++
			switch ev.Type {
			case events.EventTick:
				d.tick()
			case events.EventTurn:
				d.game.TurnCharacter(ev.Direction)
			case events.EventQuit:
				log.Infof("quit after %d ticks, %d turns", d.handled[events.EventTick], d.handled[events.EventTurn])
				return nil
			default:
				log.Warningf("ignoring unknown event %s", ev.Type)
				continue
			}
			d.present()
		}
	}
}

// Handled returns how many events of type t were consumed
func (d *Driver) Handled(t events.EventType) int {
	return d.handled[t]
}

func (d *Driver) tick() {
	if d.pilot != nil {
		if dir, ok := d.pilot.Next(d.game.Snapshot()); ok {
			d.game.TurnCharacter(dir)
		}
	}
	d.game.Tick()
}

func (d *Driver) present() {
	if len(d.presenters) == 0 {
		return
	}
	frame := d.game.Draw()
	stats := d.game.Stats()
	for _, p := range d.presenters {
		p.Present(frame, stats)
	}
}
