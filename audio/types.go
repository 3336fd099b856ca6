package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Apple pickup blip
	SoundCrash                  // Round-ending buzz
	soundTypeCount
)

var soundNames = [...]string{"eat", "crash"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
