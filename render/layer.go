package render

import (
	"sync/atomic"

	"github.com/lixenwraith/particlefx/status"
)

// SampleSource supplies the current audio window in [-1, 1]
type SampleSource interface {
	// Samples appends the window to dst and returns it
	Samples(dst []float64) []float64
}

// Waveform draws a sample window as a polyline across the vertical center
type Waveform struct {
	Source    SampleSource
	Color     RGB
	Alpha     float64
	Amplitude float64 // fraction of half-height at full scale

	buf []float64
}

func (w *Waveform) Draw(s Surface) {
	if w.Source == nil {
		return
	}
	width, height := s.Size()
	w.buf = w.Source.Samples(w.buf[:0])
	n := len(w.buf)
	if n < 2 || width == 0 || height == 0 {
		return
	}

	cy := float64(height) / 2
	amp := w.Amplitude * cy
	step := float64(width) / float64(n-1)

	px, py := 0.0, cy-w.buf[0]*amp
	for k := 1; k < n; k++ {
		x := float64(k) * step
		y := cy - w.buf[k]*amp
		s.Line(px, py, x, y, w.Color, w.Alpha)
		px, py = x, y
	}
}

// HUD prints a title and every registry metric in the top-left corner
type HUD struct {
	Title    string
	Registry *status.Registry
	Color    RGB

	hidden atomic.Bool
}

// Toggle flips visibility; safe from input goroutines
func (h *HUD) Toggle() {
	h.hidden.Store(!h.hidden.Load())
}

func (h *HUD) IsVisible() bool {
	return !h.hidden.Load()
}

func (h *HUD) Draw(s Surface) {
	row := 0
	if h.Title != "" {
		h.print(s, row, h.Title)
		row++
	}
	if h.Registry == nil {
		return
	}
	for _, line := range h.Registry.Snapshot() {
		h.print(s, row, line)
		row++
	}
}

func (h *HUD) print(s Surface, row int, line string) {
	if td, ok := s.(TextDrawer); ok {
		td.Text(0, row, line, h.Color)
		return
	}
	col := 0
	for _, r := range line {
		s.Glyph(float64(col)+0.5, float64(row)+0.5, r, h.Color, 1)
		col++
	}
}
