package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/apple"
	"github.com/lixenwraith/term-snake/events"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/maze"
	"github.com/lixenwraith/term-snake/snake"
)

type recordingPresenter struct {
	frames []game.Frame
	stats  []game.Stats
}

func (p *recordingPresenter) Present(f game.Frame, s game.Stats) {
	p.frames = append(p.frames, f)
	p.stats = append(p.stats, s)
}

type fixedPilot struct {
	dir   game.Direction
	calls int
}

func (p *fixedPilot) Next(game.Snapshot) (game.Direction, bool) {
	p.calls++
	return p.dir, true
}

func newTestGame() (*game.Game, *snake.Snake) {
	s := snake.New()
	return game.New(maze.New(30, 20), s, apple.New(17)), s
}

func TestDriverProcessesEventsInOrder(t *testing.T) {
	g, s := newTestGame()
	bus := events.NewBus(16)
	presenter := &recordingPresenter{}
	d := NewDriver(g, bus, WithPresenter(presenter))

	bus.Send(events.Turn(game.Right))
	bus.Send(events.Tick())
	bus.Send(events.Turn(game.Up))
	bus.Send(events.Tick())
	bus.Send(events.Quit())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Initial tick (5,5), right (6,5), up (6,4)
	if s.HeadPos() != (game.Vector2{X: 6, Y: 4}) {
		t.Errorf("Expected head at (6,4), got %s", s.HeadPos())
	}
	if len(presenter.frames) != 5 {
		t.Errorf("Expected initial frame plus one per handled event, got %d", len(presenter.frames))
	}
	if d.Handled(events.EventTick) != 2 || d.Handled(events.EventTurn) != 2 {
		t.Errorf("Expected 2 ticks and 2 turns, got %d and %d", d.Handled(events.EventTick), d.Handled(events.EventTurn))
	}
}

func TestDriverClosesBusOnExit(t *testing.T) {
	g, _ := newTestGame()
	bus := events.NewBus(4)
	d := NewDriver(g, bus)
	bus.Send(events.Quit())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bus.Send(events.Tick()) {
		t.Error("Expected producers to be refused after driver exit")
	}
}

func TestDriverStopsOnContextCancel(t *testing.T) {
	g, _ := newTestGame()
	bus := events.NewBus(4)
	d := NewDriver(g, bus)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected driver to stop after cancel")
	}
}

func TestDriverAppliesPilotBeforeTick(t *testing.T) {
	g, s := newTestGame()
	bus := events.NewBus(4)
	pilot := &fixedPilot{dir: game.Right}
	d := NewDriver(g, bus, WithPilot(pilot))

	bus.Send(events.Tick())
	bus.Send(events.Quit())
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if pilot.calls != 2 {
		t.Errorf("Expected pilot consulted on both ticks, got %d", pilot.calls)
	}
	if s.HeadPos() != (game.Vector2{X: 7, Y: 4}) {
		t.Errorf("Expected head at (7,4), got %s", s.HeadPos())
	}
}

func TestClockDeliversTicks(t *testing.T) {
	bus := events.NewBus(16)
	clock := NewClock(bus, 5*time.Millisecond)
	clock.Start()

	for i := 0; i < 3; i++ {
		select {
		case ev := <-bus.Events():
			if ev.Type != events.EventTick {
				t.Fatalf("Expected tick, got %s", ev.Type)
			}
		case <-time.After(time.Second):
			t.Fatal("Expected tick within a second")
		}
	}

	clock.Stop()
	if clock.Ticks() < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", clock.Ticks())
	}
}

func TestClockStopsWhenConsumerGone(t *testing.T) {
	bus := events.NewBus(1)
	clock := NewClock(bus, time.Millisecond)
	clock.Start()

	bus.Close()

	stopped := make(chan struct{})
	go func() {
		clock.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Expected clock loop to exit after bus close")
	}
	clock.Stop()
}

type countingListener struct{ eats, resets int }

func (c *countingListener) OnEat(game.Vector2, game.Stats)  { c.eats++ }
func (c *countingListener) OnRoundReset(error, game.Stats) { c.resets++ }

func TestListenersFanOut(t *testing.T) {
	a, b := &countingListener{}, &countingListener{}
	ls := Listeners{a, b, RoundLogger{Session: "test"}}

	ls.OnEat(game.Vector2{X: 1, Y: 1}, game.Stats{})
	ls.OnRoundReset(game.ErrKilledByWall, game.Stats{})

	for _, c := range []*countingListener{a, b} {
		if c.eats != 1 || c.resets != 1 {
			t.Errorf("Expected one of each event, got %+v", *c)
		}
	}
}

func TestResetReason(t *testing.T) {
	cases := map[string]error{
		"reset": nil,
		"wall":  game.ErrKilledByWall,
		"self":  game.ErrSelfEatingStep,
	}
	for want, cause := range cases {
		if got := ResetReason(cause); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
