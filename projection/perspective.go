package projection

import "github.com/lixenwraith/particlefx/particle"

// Perspective divides center-relative X/Y by depth and offsets by pointer parallax
type Perspective struct {
	// Focal constant k in x*k/z
	Focal float64

	// Parallax is the screen displacement, in surface units, of the nearest particle at full pointer offset
	Parallax float64

	// AspectY compresses vertical projection for hosts with non-square pixels (terminal cells)
	// Zero means 1
	AspectY float64
}

// DepthScale returns 1 - z/zMax clamped to [0, 1]; closer is larger
func DepthScale(z, maxDepth float64) float64 {
	if maxDepth <= 0 {
		return 0
	}
	s := 1 - z/maxDepth
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func (pp Perspective) Project(p particle.Particle, v View) Projected {
	// Camera plane crossed; the integrator recycles it on the next step
	if p.Z <= 0 {
		return Projected{}
	}

	aspect := pp.AspectY
	if aspect == 0 {
		aspect = 1
	}

	scale := DepthScale(p.Z, v.MaxDepth)
	depthFactor := scale * pp.Parallax
	cx, cy := v.Width/2, v.Height/2

	return Projected{
		X:       p.X*pp.Focal/p.Z + cx + v.Pointer.OffsetX*depthFactor,
		Y:       (p.Y*pp.Focal/p.Z)*aspect + cy + v.Pointer.OffsetY*depthFactor*aspect,
		Size:    p.Size * scale,
		Alpha:   scale,
		Visible: true,
	}
}
