package preset

import (
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
	"github.com/lixenwraith/particlefx/spatial"
)

// gridCutover is the particle count above which edges use the bucketed finder
const gridCutover = 120

// ConstellationOptions tunes the wrap-drift variant and its neighbor edges
type ConstellationOptions struct {
	Count         int     `toml:"count"`
	SpeedMin      float64 `toml:"speed_min"`
	SpeedMax      float64 `toml:"speed_max"`
	SizeMin       float64 `toml:"size_min"`
	SizeMax       float64 `toml:"size_max"`
	Threshold     float64 `toml:"threshold"`
	EdgeAlpha     float64 `toml:"edge_alpha"`
	RepelRadius   float64 `toml:"repel_radius"`
	RepelStrength float64 `toml:"repel_strength"`
	Trail         float64 `toml:"trail"`
	Palette       string  `toml:"palette"`
}

func DefaultConstellation() ConstellationOptions {
	return ConstellationOptions{
		Count:         parameter.ConstellationCount,
		SpeedMin:      parameter.ConstellationSpeedMin,
		SpeedMax:      parameter.ConstellationSpeedMax,
		SizeMin:       parameter.ConstellationSizeMin,
		SizeMax:       parameter.ConstellationSizeMax,
		Threshold:     parameter.ConstellationThreshold,
		EdgeAlpha:     parameter.ConstellationEdgeAlpha,
		RepelRadius:   parameter.ConstellationRepelRadius,
		RepelStrength: parameter.ConstellationRepelStrength,
		Trail:         parameter.ConstellationTrail,
		Palette:       "cyberpunk",
	}
}

func buildConstellation(o Options) (engine.Config, error) {
	c := o.Constellation
	pal, err := pick(o, c.Palette)
	if err != nil {
		return engine.Config{}, err
	}

	count := c.Count
	if o.Count > 0 {
		count = o.Count
	}
	var finder spatial.Finder = spatial.BruteForce{}
	if count > gridCutover {
		finder = &spatial.Grid{}
	}

	return engine.Config{
		Count: c.Count,
		Integrator: physics.WrapDrift{
			SpeedMin:      c.SpeedMin,
			SpeedMax:      c.SpeedMax,
			SizeMin:       c.SizeMin,
			SizeMax:       c.SizeMax,
			Palette:       pal,
			RepelRadius:   c.RepelRadius,
			RepelStrength: c.RepelStrength,
		},
		Projector:         projection.Identity{},
		Neighbors:         finder,
		NeighborThreshold: c.Threshold,
		Render: render.Options{
			Background:    palette.Background,
			Trail:         c.Trail,
			Glow:          o.Glow,
			GlowScale:     2,
			GlowAlpha:     0.25,
			EdgeColor:     pal.At(0.5),
			EdgeMaxAlpha:  c.EdgeAlpha,
			EdgeThreshold: c.Threshold,
		},
	}, nil
}
