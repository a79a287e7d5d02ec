package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// WaveSource taps an audio stream for the waveform layer
// When a speaker drives Stream the window follows playback; otherwise Samples pulls one frame of audio per call
type WaveSource struct {
	mu       sync.Mutex
	src      beep.Streamer
	ring     [][2]float64 // most recent frame of samples
	buf      [][2]float64
	window   int
	attached atomic.Bool
}

// NewWaveSource sizes the tap for frameRate frames per second and window display points
func NewWaveSource(src beep.Streamer, rate beep.SampleRate, frameRate, window int) *WaveSource {
	if frameRate <= 0 {
		frameRate = 30
	}
	perFrame := max(int(rate)/frameRate, 1)
	return &WaveSource{
		src:    src,
		ring:   make([][2]float64, perFrame),
		buf:    make([][2]float64, perFrame),
		window: max(window, 2),
	}
}

// Attach marks the source as driven by an external consumer
func (w *WaveSource) Attach() {
	w.attached.Store(true)
}

// Stream forwards the source and records what was played
func (w *WaveSource) Stream(samples [][2]float64) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, ok := w.src.Stream(samples)
	w.record(samples[:n])
	return n, ok
}

func (w *WaveSource) Err() error { return w.src.Err() }

// Samples appends the display window, mono, in [-1, 1]
func (w *WaveSource) Samples(dst []float64) []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.attached.Load() {
		n, _ := w.src.Stream(w.buf)
		w.record(w.buf[:n])
	}

	for k := 0; k < w.window; k++ {
		s := w.ring[k*len(w.ring)/w.window]
		dst = append(dst, clampUnit((s[0]+s[1])/2))
	}
	return dst
}

// record keeps the latest len(ring) samples
func (w *WaveSource) record(s [][2]float64) {
	if len(s) >= len(w.ring) {
		copy(w.ring, s[len(s)-len(w.ring):])
		return
	}
	copy(w.ring, w.ring[len(s):])
	copy(w.ring[len(w.ring)-len(s):], s)
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
