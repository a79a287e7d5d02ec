package window

import (
	"errors"
	"image/color"
	"math"

	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/render"
)

// ErrClosed is returned by Present after the window has closed
var ErrClosed = errors.New("window closed")

// target is the pixel-level drawing backend behind a Canvas
type target interface {
	resize(w, h int)
	fill(c color.Color)
	rect(x, y, w, h float32, c color.Color)
	circle(cx, cy, r float32, c color.Color)
	line(x0, y0, x1, y1, width float32, c color.Color)
	text(s string, x, y int)
}

// Canvas is a Surface in units of scale pixels
type Canvas struct {
	t      target
	scale  float64
	width  int
	height int
	closed bool
}

func newCanvas(t target, width, height int, scale float64) *Canvas {
	if scale <= 0 {
		scale = parameter.WindowScale
	}
	c := &Canvas{t: t, scale: scale}
	c.Resize(width, height)
	return c
}

// Size returns the drawable area in surface units
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Resize reallocates the backing image for width x height units
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.t.resize(c.px(c.width), c.px(c.height))
}

func (c *Canvas) px(units int) int {
	return int(float64(units) * c.scale)
}

func (c *Canvas) Clear(bg render.RGB) {
	c.t.fill(rgba(bg, 1))
}

func (c *Canvas) Fade(bg render.RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.Clear(bg)
		return
	}
	c.t.rect(0, 0, float32(c.px(c.width)), float32(c.px(c.height)), rgba(bg, alpha))
}

func (c *Canvas) Dot(x, y, radius float64, col render.RGB, alpha float64) {
	if !finite(x, y, radius) || radius <= 0 || alpha <= 0 {
		return
	}
	c.t.circle(c.f(x), c.f(y), float32(math.Max(radius*c.scale, 1)), rgba(col, alpha))
}

// Glow stacks rings from the rim inward so the center accumulates the most alpha
func (c *Canvas) Glow(x, y, radius float64, col render.RGB, alpha float64) {
	if !finite(x, y, radius) || radius <= 0 || alpha <= 0 {
		return
	}
	const rings = parameter.WindowGlowRings
	step := rgba(col, alpha/rings)
	for i := rings; i > 0; i-- {
		r := radius * c.scale * float64(i) / rings
		c.t.circle(c.f(x), c.f(y), float32(r), step)
	}
}

func (c *Canvas) Line(x0, y0, x1, y1 float64, col render.RGB, alpha float64) {
	if !finite(x0, y0, x1, y1) || alpha <= 0 {
		return
	}
	c.t.line(c.f(x0), c.f(y0), c.f(x1), c.f(y1), 1, rgba(col, alpha))
}

// Glyph approximates a character with a dot; the debug font has no symbols
func (c *Canvas) Glyph(x, y float64, r rune, col render.RGB, alpha float64) {
	c.Dot(x, y, 0.5, col, alpha)
}

// Text prints in the debug font at cell (col, row) of the unit grid; color is fixed
func (c *Canvas) Text(col, row int, s string, _ render.RGB) {
	c.t.text(s, c.px(col), c.px(row))
}

// Present is a no-op while open; Game.Draw copies the canvas to the screen
func (c *Canvas) Present() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

func (c *Canvas) f(v float64) float32 {
	return float32(v * c.scale)
}

func rgba(c render.RGB, alpha float64) color.NRGBA {
	a := math.Min(math.Max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
