package physics

import (
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/particle"
)

// DepthDrift moves particles toward the viewer along Z
// X and Y are center-relative world coordinates in [-W/2, W/2) x [-H/2, H/2)
type DepthDrift struct {
	SpeedMin float64
	SpeedMax float64
	Size     float64
	Palette  palette.Palette
}

// Seed spreads initial depths over (0, Depth] so stars do not arrive in one wave
func (r DepthDrift) Seed(p *particle.Particle, i int, b particle.Bounds, rng Rand) {
	r.place(p, b, rng)
	p.Z = b.Depth * (1 - rng.Float64())
	p.Speed = lerp(r.SpeedMin, r.SpeedMax, rng.Float64())
	p.Size = r.Size
	p.Color = r.Palette.At(rng.Float64())
	p.Phase = rng.Float64()
}

// Step decrements Z by Speed; a particle at or past the camera plane respawns at max depth
func (r DepthDrift) Step(p *particle.Particle, dt float64, b particle.Bounds, ptr particle.Pointer, rng Rand) {
	if p.Z <= 0 {
		r.place(p, b, rng)
		p.Z = b.Depth
		return
	}
	p.Z -= p.Speed * dt
}

func (r DepthDrift) place(p *particle.Particle, b particle.Bounds, rng Rand) {
	p.X = (rng.Float64() - 0.5) * b.Width
	p.Y = (rng.Float64() - 0.5) * b.Height
}
