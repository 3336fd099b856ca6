package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate for the speaker
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EatToneFrequency is the pitch of the apple pickup blip
	EatToneFrequency = 880.0

	// EatToneDuration is the length of the apple pickup blip
	EatToneDuration = 50 * time.Millisecond

	// CrashToneFrequency is the pitch of the round-ending buzz
	CrashToneFrequency = 110.0

	// CrashToneDuration is the length of the round-ending buzz
	CrashToneDuration = 250 * time.Millisecond

	// DefaultMasterVolume in [0, 1]
	DefaultMasterVolume = 0.5
)

// Envelope shaping
const (
	EatToneAttack    = 5 * time.Millisecond
	EatToneRelease   = 30 * time.Millisecond
	CrashToneAttack  = 10 * time.Millisecond
	CrashToneRelease = 150 * time.Millisecond
)
