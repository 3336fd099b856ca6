package events

import (
	"fmt"

	"github.com/lixenwraith/term-snake/game"
)

// EventType represents the kind of driver event
type EventType int

const (
	// EventTick signals one unit of time has elapsed
	// Producer: engine.Clock | Consumer: Driver → Game.Tick
	EventTick EventType = iota

	// EventTurn requests a heading change
	// Producer: input.Poller | Consumer: Driver → Game.TurnCharacter | Payload: Direction
	EventTurn

	// EventQuit ends the driver loop
	// Producer: input.Poller
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventTurn:
		return "turn"
	case EventQuit:
		return "quit"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is a single driver input; Direction is only meaningful for EventTurn
type Event struct {
	Type      EventType
	Direction game.Direction
}

// Tick builds a tick event
func Tick() Event {
	return Event{Type: EventTick}
}

// Turn builds a turn request
func Turn(d game.Direction) Event {
	return Event{Type: EventTurn, Direction: d}
}

// Quit builds a quit event
func Quit() Event {
	return Event{Type: EventQuit}
}
