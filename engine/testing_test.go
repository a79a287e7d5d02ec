package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
)

// fakeHost is an in-memory Host with observable listener counts
type fakeHost struct {
	surface render.Surface
	ok      bool
	resize  Listeners[Size]
	pointer Listeners[Point]
}

func newFakeHost(w, h int, f render.Flusher) *fakeHost {
	return &fakeHost{surface: render.NewCellBuffer(w, h, f), ok: true}
}

func (h *fakeHost) Surface() (render.Surface, bool) { return h.surface, h.ok }
func (h *fakeHost) OnResize(fn func(Size)) func()   { return h.resize.Add(fn) }
func (h *fakeHost) OnPointer(fn func(Point)) func() { return h.pointer.Add(fn) }
func (h *fakeHost) listeners() int                  { return h.resize.Len() + h.pointer.Len() }

// constRand always returns the same value
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// failFlusher fails every flush with err
type failFlusher struct{ err error }

func (f failFlusher) Flush([]render.Cell, int, int) error { return f.err }

var errDetached = errors.New("surface detached")

func starfieldConfig(count int) Config {
	return Config{
		Name:       "starfield",
		Count:      count,
		Depth:      300,
		Integrator: physics.DepthDrift{SpeedMin: 10, SpeedMax: 10, Size: 1},
		Projector:  projection.Perspective{Focal: 128, Parallax: 4},
		Render:     render.Options{Trail: 0.3, Glow: true, GlowScale: 2, GlowAlpha: 0.4},
		Rand:       constRand(0),
	}
}

// pump advances the clock n frames at 60 Hz
func pump(c *FrameClock, mt *ManualClock, n int) {
	for i := 0; i < n; i++ {
		mt.Advance(time.Second / 60)
		c.Pump(mt.Now())
	}
}
