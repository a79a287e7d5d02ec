package render

import (
	"log"
	"math"

	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/particle"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/spatial"
)

// Options controls how a frame is painted
type Options struct {
	Background RGB

	// Trail is the alpha of the background fill painted each frame, 0 or >= 1 clears
	Trail float64

	// Glow enables a halo of radius Size*GlowScale at Alpha*GlowAlpha
	Glow      bool
	GlowScale float64
	GlowAlpha float64

	EdgeColor     RGB
	EdgeMaxAlpha  float64
	EdgeThreshold float64

	// Glyph draws every particle as this rune instead of a dot
	Glyph rune

	// Fog tints particles toward Background as their alpha drops
	Fog bool
}

// Stats summarizes one rendered frame
type Stats struct {
	Drawn     int
	Hidden    int // projected behind the camera or otherwise invisible
	Malformed int // NaN or Inf coordinates, skipped
	Edges     int
}

// Layer is an overlay drawn once per frame
type Layer interface {
	Draw(s Surface)
}

// VisibilityToggle is implemented by layers that can be hidden at runtime
type VisibilityToggle interface {
	IsVisible() bool
}

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Renderer paints one particle frame onto a Surface
type Renderer struct {
	opts     Options
	layers   []layerEntry
	regCount int
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		opts:   opts,
		layers: make([]layerEntry, 0, 4),
	}
}

// Options returns the active paint options
func (r *Renderer) Options() Options {
	return r.opts
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (r *Renderer) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	pos := len(r.layers)
	for i, e := range r.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// EdgeAlpha maps an edge length to its line alpha
// Zero-length edges get maxAlpha, alpha falls linearly to zero at threshold
func EdgeAlpha(dist, threshold, maxAlpha float64) float64 {
	if threshold <= 0 || dist >= threshold || !(dist >= 0) {
		return 0
	}
	return maxAlpha * (1 - dist/threshold)
}

// Render draws the frame: trail fade or clear, edges, layers below, particles, layers above
// projected must be index-aligned with store; out-of-bounds drawing is a silent no-op
func (r *Renderer) Render(s Surface, store *particle.Store, projected []projection.Projected, edges []spatial.Edge) Stats {
	var st Stats
	o := &r.opts

	if o.Trail > 0 && o.Trail < 1 {
		s.Fade(o.Background, o.Trail)
	} else {
		s.Clear(o.Background)
	}

	for _, e := range edges {
		if e.I >= len(projected) || e.J >= len(projected) {
			continue
		}
		a, b := projected[e.I], projected[e.J]
		alpha := EdgeAlpha(e.Dist, o.EdgeThreshold, o.EdgeMaxAlpha)
		if alpha <= 0 || !a.Finite() || !b.Finite() {
			continue
		}
		s.Line(a.X, a.Y, b.X, b.Y, o.EdgeColor, alpha)
		st.Edges++
	}

	split := r.drawLayers(s, 0, func(p Priority) bool { return p < PriorityParticle })

	n := min(store.Len(), len(projected))
	for i := 0; i < n; i++ {
		pr := projected[i]
		if !pr.Finite() {
			st.Malformed++
			continue
		}
		if !pr.Visible || pr.Alpha <= 0 {
			st.Hidden++
			continue
		}
		alpha := math.Min(pr.Alpha, 1)
		c := store.Get(i).Color
		if o.Fog {
			c = palette.Tint(c, o.Background, 1-alpha)
		}
		if o.Glow && o.GlowScale > 0 {
			s.Glow(pr.X, pr.Y, pr.Size*o.GlowScale, c, alpha*o.GlowAlpha)
		}
		if o.Glyph != 0 {
			s.Glyph(pr.X, pr.Y, o.Glyph, c, alpha)
		} else {
			s.Dot(pr.X, pr.Y, pr.Size, c, alpha)
		}
		st.Drawn++
	}

	r.drawLayers(s, split, func(Priority) bool { return true })

	if st.Malformed > 0 {
		log.Printf("render: skipped %d malformed particles", st.Malformed)
	}
	return st
}

// drawLayers draws visible layers from start while accept holds, returning the next index
func (r *Renderer) drawLayers(s Surface, start int, accept func(Priority) bool) int {
	i := start
	for ; i < len(r.layers); i++ {
		e := r.layers[i]
		if !accept(e.priority) {
			break
		}
		if vt, ok := e.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		e.layer.Draw(s)
	}
	return i
}
