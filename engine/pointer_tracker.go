package engine

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/particlefx/particle"
	"github.com/lixenwraith/particlefx/status"
)

// Smoothing configures an optional critically-damped spring on the parallax offset
type Smoothing struct {
	Enabled   bool
	FrameRate int
	Frequency float64
	Damping   float64
}

// PointerTracker keeps only the latest raw pointer position
// Notify is safe from any goroutine; Sample runs on the frame goroutine
type PointerTracker struct {
	x, y   status.AtomicFloat
	active atomic.Bool

	smooth   bool
	springX  harmonica.Spring
	springY  harmonica.Spring
	ox, oy   float64
	vx, vy   float64
	hasValue bool
}

// NewPointerTracker creates a tracker with optional smoothing
func NewPointerTracker(s Smoothing) *PointerTracker {
	t := &PointerTracker{}
	if s.Enabled && s.Frequency > 0 {
		fps := s.FrameRate
		if fps <= 0 {
			fps = 60
		}
		t.smooth = true
		t.springX = harmonica.NewSpring(harmonica.FPS(fps), s.Frequency, s.Damping)
		t.springY = t.springX
	}
	return t
}

// Notify stores a surface-local position; non-finite input is dropped
func (t *PointerTracker) Notify(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	t.x.Set(x)
	t.y.Set(y)
	t.active.Store(true)
}

// Sample clamps the latest position to the surface and derives the normalized center offset
func (t *PointerTracker) Sample(width, height float64) particle.Pointer {
	if !t.active.Load() || width <= 0 || height <= 0 {
		return particle.Pointer{X: width / 2, Y: height / 2}
	}
	x := clampf(t.x.Get(), 0, width)
	y := clampf(t.y.Get(), 0, height)
	ox := x/width*2 - 1
	oy := y/height*2 - 1

	if t.smooth {
		if !t.hasValue {
			t.ox, t.oy, t.hasValue = ox, oy, true
		}
		t.ox, t.vx = t.springX.Update(t.ox, t.vx, ox)
		t.oy, t.vy = t.springY.Update(t.oy, t.vy, oy)
		ox, oy = clampf(t.ox, -1, 1), clampf(t.oy, -1, 1)
	}

	return particle.Pointer{X: x, Y: y, OffsetX: ox, OffsetY: oy, Active: true}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
