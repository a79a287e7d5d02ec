package preset

import (
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
)

// SprayOptions tunes the rise-and-fade burst emitter
type SprayOptions struct {
	Count         int     `toml:"count"`
	OriginX       float64 `toml:"origin_x"`
	OriginY       float64 `toml:"origin_y"`
	SpreadX       float64 `toml:"spread_x"`
	SpreadY       float64 `toml:"spread_y"`
	RiseMin       float64 `toml:"rise_min"`
	RiseMax       float64 `toml:"rise_max"`
	DriftX        float64 `toml:"drift_x"`
	Burst         float64 `toml:"burst"`
	LifeMin       float64 `toml:"life_min"`
	LifeMax       float64 `toml:"life_max"`
	SizeMin       float64 `toml:"size_min"`
	SizeMax       float64 `toml:"size_max"`
	FollowPointer bool    `toml:"follow_pointer"`
	Trail         float64 `toml:"trail"`
	Palette       string  `toml:"palette"`
}

func DefaultSpray() SprayOptions {
	return SprayOptions{
		Count:         parameter.SprayCount,
		OriginX:       parameter.SprayOriginX,
		OriginY:       parameter.SprayOriginY,
		SpreadX:       parameter.SpraySpreadX,
		SpreadY:       parameter.SpraySpreadY,
		RiseMin:       parameter.SprayRiseMin,
		RiseMax:       parameter.SprayRiseMax,
		DriftX:        parameter.SprayDriftX,
		Burst:         parameter.SprayBurst,
		LifeMin:       parameter.SprayLifeMin,
		LifeMax:       parameter.SprayLifeMax,
		SizeMin:       parameter.SpraySizeMin,
		SizeMax:       parameter.SpraySizeMax,
		FollowPointer: true,
		Trail:         parameter.SprayTrail,
		Palette:       "psychedelic",
	}
}

func buildSpray(o Options) (engine.Config, error) {
	s := o.Spray
	pal, err := pick(o, s.Palette)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Count: s.Count,
		Integrator: physics.RiseFade{
			OriginX:       s.OriginX,
			OriginY:       s.OriginY,
			SpreadX:       s.SpreadX,
			SpreadY:       s.SpreadY,
			RiseMin:       s.RiseMin,
			RiseMax:       s.RiseMax,
			DriftX:        s.DriftX,
			Burst:         s.Burst,
			LifeMin:       s.LifeMin,
			LifeMax:       s.LifeMax,
			SizeMin:       s.SizeMin,
			SizeMax:       s.SizeMax,
			Palette:       pal,
			FollowPointer: s.FollowPointer,
		},
		Projector: projection.Identity{},
		Render: render.Options{
			Background: palette.Background,
			Trail:      s.Trail,
			Glow:       o.Glow,
			GlowScale:  1.5,
			GlowAlpha:  0.3,
		},
	}, nil
}
