package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/particlefx/parameter"
)

// Config selects the chiptune voice and output level
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // linear, 0.0-1.0
	Wave       WaveType
	Tempo      time.Duration
	Melody     []int // MIDI notes, Rest for silence
}

// DefaultConfig returns the built-in chiptune settings, audio off
func DefaultConfig() Config {
	return Config{
		SampleRate: parameter.AudioSampleRate,
		Volume:     parameter.ChiptuneVolume,
		Wave:       WaveSquare,
		Tempo:      parameter.ChiptuneTempo,
	}
}

// ApplyEnv overrides fields from environment variables; invalid values are ignored
func (c *Config) ApplyEnv() {
	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("PARTICLEFX_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if wave := os.Getenv("PARTICLEFX_WAVE"); wave != "" {
		if w, err := ParseWave(wave); err == nil {
			c.Wave = w
		}
	}

	if sampleRate := os.Getenv("PARTICLEFX_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}
