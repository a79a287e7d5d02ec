package engine

import "github.com/lixenwraith/particlefx/render"

// Size is a surface dimension notification
type Size struct {
	Width, Height int
}

// Point is a surface-local pointer position
type Point struct {
	X, Y float64
}

// Host is the environment a Loop mounts into
type Host interface {
	// Surface returns the drawing target, false while none is attached
	Surface() (render.Surface, bool)

	// OnResize registers a viewport resize listener and returns its remove
	OnResize(fn func(Size)) (remove func())

	// OnPointer registers a pointer-move listener and returns its remove
	OnPointer(fn func(Point)) (remove func())
}
