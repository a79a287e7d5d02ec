package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/particlefx/parameter"
)

// subBassNote is the drone under the bass line (C2)
const subBassNote = 36

// phrase renders one pass of notes as a beep.Seq, one envelope-shaped tone per step
func phrase(notes []int, step time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		freq := NoteFreq(n)
		if freq == 0 {
			parts = append(parts, beep.Silence(rate.N(step)))
			continue
		}
		osc := NewOscillator(freq, step, wave, rate)
		parts = append(parts, NewEnvelope(osc, step, step/20, step/3, rate))
	}
	return beep.Seq(parts...)
}

// repeat replays streams produced by build forever
type repeat struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func (r *repeat) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		fresh := r.cur == nil
		if fresh {
			r.cur = r.build()
		}
		n, ok := r.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			r.cur = nil
			// An empty phrase would spin forever; pad with silence instead
			if fresh && n == 0 {
				clear(samples[filled:])
				return len(samples), true
			}
		}
	}
	return filled, true
}

func (r *repeat) Err() error { return nil }

// Chiptune builds the endless mix: lead melody, triangle bass and a sine sub drone
func Chiptune(cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	melody := cfg.Melody
	if len(melody) == 0 {
		melody = DefaultMelody
	}
	tempo := cfg.Tempo
	if tempo <= 0 {
		tempo = parameter.ChiptuneTempo
	}

	lead := &repeat{build: func() beep.Streamer { return phrase(melody, tempo, cfg.Wave, rate) }}
	bass := &repeat{build: func() beep.Streamer { return phrase(DefaultBass, tempo*8, WaveTriangle, rate) }}

	drone, err := generators.SineTone(rate, NoteFreq(subBassNote))
	if err != nil {
		return nil, fmt.Errorf("sub bass tone: %w", err)
	}

	return beep.Mix(
		newGain(lead, parameter.ChiptuneMelodyGain),
		newGain(bass, parameter.ChiptuneBassGain),
		newGain(drone, parameter.ChiptuneBassGain/3),
	), nil
}
