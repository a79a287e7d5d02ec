package preset

import (
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
)

// StarfieldOptions tunes the depth-drift variant
type StarfieldOptions struct {
	Count     int     `toml:"count"`
	Depth     float64 `toml:"depth"`
	SpeedMin  float64 `toml:"speed_min"`
	SpeedMax  float64 `toml:"speed_max"`
	Size      float64 `toml:"size"`
	Focal     float64 `toml:"focal"`
	Parallax  float64 `toml:"parallax"`
	Trail     float64 `toml:"trail"`
	GlowScale float64 `toml:"glow_scale"`
	GlowAlpha float64 `toml:"glow_alpha"`
	Palette   string  `toml:"palette"`
}

func DefaultStarfield() StarfieldOptions {
	return StarfieldOptions{
		Count:     parameter.StarfieldCount,
		Depth:     parameter.StarfieldDepth,
		SpeedMin:  parameter.StarfieldSpeedMin,
		SpeedMax:  parameter.StarfieldSpeedMax,
		Size:      parameter.StarfieldSize,
		Focal:     parameter.StarfieldFocal,
		Parallax:  parameter.StarfieldParallax,
		Trail:     parameter.StarfieldTrail,
		GlowScale: parameter.StarfieldGlowScale,
		GlowAlpha: parameter.StarfieldGlowAlpha,
		Palette:   "mono",
	}
}

func buildStarfield(o Options) (engine.Config, error) {
	s := o.Starfield
	pal, err := pick(o, s.Palette)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Count: s.Count,
		Depth: s.Depth,
		Integrator: physics.DepthDrift{
			SpeedMin: s.SpeedMin,
			SpeedMax: s.SpeedMax,
			Size:     s.Size,
			Palette:  pal,
		},
		Projector: projection.Perspective{
			Focal:    s.Focal,
			Parallax: s.Parallax,
			AspectY:  o.AspectY,
		},
		Render: render.Options{
			Background: palette.Background,
			Trail:      s.Trail,
			Glow:       o.Glow,
			GlowScale:  s.GlowScale,
			GlowAlpha:  s.GlowAlpha,
			Fog:        true,
		},
	}, nil
}
