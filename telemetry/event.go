// Package telemetry reports round events and live frames to observers outside the terminal
package telemetry

import (
	"time"

	"github.com/lixenwraith/term-snake/game"
)

// Event kinds
const (
	KindEat   = "eat"
	KindReset = "reset"
)

// Event is one round-level occurrence tagged with the session
type Event struct {
	Session string    `json:"session"`
	Kind    string    `json:"kind"`
	Cause   string    `json:"cause,omitempty"`
	Round   int       `json:"round"`
	Score   int       `json:"score"`
	Length  int       `json:"length"`
	Best    int       `json:"best"`
	X       uint      `json:"x,omitempty"`
	Y       uint      `json:"y,omitempty"`
	At      time.Time `json:"at"`
}

// StatsPayload is the wire form of game.Stats
type StatsPayload struct {
	Round  int `json:"round"`
	Score  int `json:"score"`
	Length int `json:"length"`
	Best   int `json:"best"`
}

func payload(s game.Stats) StatsPayload {
	return StatsPayload{Round: s.Round, Score: s.Score, Length: s.Length, Best: s.Best}
}

// Publisher delivers events to one sink
type Publisher interface {
	Publish(ev Event) error
}
