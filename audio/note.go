package audio

import "math"

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Exp2((float64(i)-69.0)/12.0)
	}
}

// Rest marks a silent melody step
const Rest = -1

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// DefaultMelody is a looping arpeggio over C, Am, F, G
var DefaultMelody = []int{
	72, 76, 79, 84, 79, 76, 72, Rest,
	69, 72, 76, 81, 76, 72, 69, Rest,
	65, 69, 72, 77, 72, 69, 65, Rest,
	67, 71, 74, 79, 74, 71, 67, Rest,
}

// DefaultBass holds the root of each bar, one per eight melody steps
var DefaultBass = []int{48, 45, 41, 43}
