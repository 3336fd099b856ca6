package audio

import (
	"testing"
)

// TestSoundTypeValues verifies sound type constants
func TestSoundTypeValues(t *testing.T) {
	if SoundEat != 0 {
		t.Errorf("Expected SoundEat=0, got %d", SoundEat)
	}
	if SoundCrash != 1 {
		t.Errorf("Expected SoundCrash=1, got %d", SoundCrash)
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundEat.String() != "eat" || SoundCrash.String() != "crash" {
		t.Errorf("Unexpected names %q %q", SoundEat, SoundCrash)
	}
	if SoundType(9).String() != "unknown" {
		t.Error("Expected unknown for out of range sound")
	}
}
