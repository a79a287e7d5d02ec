package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer, trading latency against underruns
	AudioBufferDuration = 50 * time.Millisecond

	// AudioWindowSamples is the number of samples the waveform layer displays
	AudioWindowSamples = 96
)

// Chiptune Sequence
const (
	// ChiptuneTempo is the melody step length
	ChiptuneTempo = 150 * time.Millisecond

	ChiptuneMelodyGain = 0.25
	ChiptuneBassGain   = 0.15

	// ChiptuneVolume is the linear master volume in [0, 1]
	ChiptuneVolume = 0.5
)
