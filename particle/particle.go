// Package particle owns the fixed-size particle buffer a single engine instance simulates.
//
// The buffer is allocated once at mount and mutated in place afterwards. Particles are
// recycled (respawned) into their existing slots, never appended or removed, so the live
// count is constant for the lifetime of a Store.
package particle

import "github.com/lixenwraith/particlefx/palette"

// Particle is one simulated record
// Opacity is intentionally absent: it is derived each frame from depth or age
type Particle struct {
	// Position; Z is distance from the viewer and only meaningful for depth variants
	X, Y, Z float64

	// Per-axis drift rate (surface units per frame)
	VX, VY float64

	// Scalar drift rate along the variant's primary axis
	Speed float64

	// Base radius in surface units
	Size float64

	Color palette.RGB

	// Age and Life are frame counts used by respawning variants
	Age  float64
	Life float64

	// Phase is a per-spawn random value in [0, 1) variants may use for shading
	Phase float64
}

// Bounds describes the simulation volume, derived from the drawing surface
type Bounds struct {
	Width  float64
	Height float64
	Depth  float64 // Maximum depth; zero for 2D variants
}

// Empty returns true when the surface has no drawable area
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Fade returns the age-derived opacity in [0, 1]
// Particles without a lifetime are fully opaque
func (p Particle) Fade() float64 {
	if p.Life <= 0 {
		return 1
	}
	f := 1 - p.Age/p.Life
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Pointer is the latest pointer sample delivered to a frame
type Pointer struct {
	// Surface-local position, clamped to the surface
	X, Y float64

	// Offset from the surface center normalized to [-1, 1]
	OffsetX, OffsetY float64

	// Active is false until the first pointer event arrives
	Active bool
}
