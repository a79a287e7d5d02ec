package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/particlefx/particle"
	"github.com/lixenwraith/particlefx/render"
)

// SurfaceManager owns the surface dimensions
// Notify may be called from any goroutine; Sync applies the latest size on the frame goroutine
type SurfaceManager struct {
	surface render.Surface
	pending atomic.Uint64 // width<<32 | height
	dirty   atomic.Bool

	width, height int
}

// NewSurfaceManager adopts the surface's current size
func NewSurfaceManager(s render.Surface) *SurfaceManager {
	w, h := s.Size()
	return &SurfaceManager{
		surface: s,
		width:   max(w, 0),
		height:  max(h, 0),
	}
}

// Notify records a resize; only the latest size is kept
// Negative dimensions are treated as zero
func (m *SurfaceManager) Notify(width, height int) {
	width, height = max(width, 0), max(height, 0)
	m.pending.Store(uint64(uint32(width))<<32 | uint64(uint32(height)))
	m.dirty.Store(true)
}

// Sync applies a pending resize to the surface and the store's bounds
// Particle positions are left as they are, the rules redistribute them
func (m *SurfaceManager) Sync(store *particle.Store) bool {
	if !m.dirty.Swap(false) {
		return false
	}
	packed := m.pending.Load()
	w, h := int(uint32(packed>>32)), int(uint32(packed))
	if w == m.width && h == m.height {
		return false
	}
	m.width, m.height = w, h

	if r, ok := m.surface.(render.Resizable); ok {
		r.Resize(w, h)
	}
	b := store.Bounds()
	b.Width, b.Height = float64(w), float64(h)
	store.SetBounds(b)
	return true
}

// Size returns the applied dimensions
func (m *SurfaceManager) Size() (int, int) {
	return m.width, m.height
}

// Drawable returns false while either dimension is zero
func (m *SurfaceManager) Drawable() bool {
	return m.width > 0 && m.height > 0
}

// Surface returns the managed surface
func (m *SurfaceManager) Surface() render.Surface {
	return m.surface
}
