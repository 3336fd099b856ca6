package audio

import (
	"github.com/lixenwraith/term-snake/constants"
)

// AudioConfig holds speaker and volume settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // [0, 1]
	SampleRate   int
	// Per-effect multipliers applied under MasterVolume
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:   0.6,
			SoundCrash: 0.8,
		},
	}
}

// NewAudioConfig builds a config from the resolved enabled flag and master volume, clamping the volume
func NewAudioConfig(enabled bool, volume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = volume
	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 1 {
		cfg.MasterVolume = 1
	}
	return cfg
}
