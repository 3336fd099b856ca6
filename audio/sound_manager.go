package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	gologging "github.com/op/go-logging"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/game"
)

var log = gologging.MustGetLogger("audio")

// SoundManager plays effects for round events through one speaker mixer
// Every method is safe without a working audio device, it degrades to no-ops
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	played [soundTypeCount]int
}

// NewSoundManager creates a new sound manager, nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; disabled configs return ErrAudioDisabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker shutdown, an empty mixer keeps it silent
	sm.initialized = false
}

// Play mixes a one-shot effect
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := CreateSound(t, sm.cfg)
	if streamer == nil {
		log.Warningf("no generator for sound %v", t)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[t]++
}

// Played returns how many times t reached the mixer
func (sm *SoundManager) Played(t SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[t]
}

// OnEat implements game.Listener
func (sm *SoundManager) OnEat(game.Vector2, game.Stats) {
	sm.Play(SoundEat)
}

// OnRoundReset implements game.Listener, only collisions make noise
func (sm *SoundManager) OnRoundReset(cause error, _ game.Stats) {
	if cause != nil {
		sm.Play(SoundCrash)
	}
}
