package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/term-snake/constants"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected identical channels", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the stream ends after the configured length
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	total, peak := drain(osc)
	if total != rate.N(50*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(50*time.Millisecond), total)
	}
	if peak != 1.0 {
		t.Errorf("Expected square peak 1.0, got %f", peak)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 1)
	if _, ok := env.Stream(samples); !ok {
		t.Fatal("Expected samples")
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected first attack sample silent, got %f", samples[0][0])
	}
}

func TestCreateSounds(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	cases := []struct {
		sound    SoundType
		duration time.Duration
	}{
		{SoundEat, constants.EatToneDuration},
		{SoundCrash, constants.CrashToneDuration},
	}

	for _, tc := range cases {
		t.Run(tc.sound.String(), func(t *testing.T) {
			total, peak := drain(CreateSound(tc.sound, cfg))
			if total != rate.N(tc.duration) {
				t.Errorf("Expected %d samples, got %d", rate.N(tc.duration), total)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Expected audible peak within [0, 1], got %f", peak)
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := NewAudioConfig(true, 0)
	_, peak := drain(CreateCrashSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestCreateSoundUnknown(t *testing.T) {
	if CreateSound(SoundType(42), DefaultAudioConfig()) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}
