// Package projection maps simulated particle coordinates to screen space.
package projection

import (
	"math"

	"github.com/lixenwraith/particlefx/particle"
)

// View is the per-frame camera state shared by every particle in a pass
type View struct {
	Width    float64
	Height   float64
	MaxDepth float64
	Pointer  particle.Pointer
}

// Projected is the screen-space result for one particle
// Size and Alpha are derived every frame and never written back to the particle
type Projected struct {
	X, Y    float64
	Size    float64
	Alpha   float64
	Visible bool
}

// Finite returns true if every numeric field is a real number
func (p Projected) Finite() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Size) && finite(p.Alpha)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Projector converts one particle into screen space
type Projector interface {
	Project(p particle.Particle, v View) Projected
}

// Identity places particles at their own coordinates
// Alpha follows the particle's age-derived fade, constant for particles without a lifetime
type Identity struct{}

func (Identity) Project(p particle.Particle, v View) Projected {
	return Projected{
		X:       p.X,
		Y:       p.Y,
		Size:    p.Size,
		Alpha:   p.Fade(),
		Visible: true,
	}
}
