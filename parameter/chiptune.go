package parameter

// Chiptune (rising notes over an audio waveform)
const (
	ChiptuneCount = 60

	ChiptuneSpanX = 0.5

	ChiptuneRiseMin = 0.2
	ChiptuneRiseMax = 0.6

	ChiptuneLifeMin = 30.0
	ChiptuneLifeMax = 70.0

	// ChiptuneFadeFloor recycles notes before they become invisible
	ChiptuneFadeFloor = 0.05

	ChiptuneNote = '♪'

	// ChiptuneWaveAmplitude is the waveform height as a fraction of half the surface
	ChiptuneWaveAmplitude = 0.6
	ChiptuneWaveAlpha     = 0.9

	ChiptuneTrail = 0.4
)
