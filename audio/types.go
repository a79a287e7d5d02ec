package audio

import (
	"errors"
	"fmt"
	"strings"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
	WaveNoise
)

var waveNames = map[string]WaveType{
	"sine":     WaveSine,
	"square":   WaveSquare,
	"triangle": WaveTriangle,
	"saw":      WaveSaw,
	"noise":    WaveNoise,
}

func (w WaveType) String() string {
	for name, v := range waveNames {
		if v == w {
			return name
		}
	}
	return fmt.Sprintf("WaveType(%d)", int(w))
}

// Sentinel errors
var (
	ErrUnknownWave = errors.New("unknown wave type")
	ErrNotPlaying  = errors.New("audio player not started")
)

// ParseWave maps a case-insensitive wave name to its type
func ParseWave(name string) (WaveType, error) {
	if w, ok := waveNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWave, name)
}
