package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides f from PARTICLEFX_* environment variables; invalid values are ignored
func ApplyEnv(f *File) {
	if v := os.Getenv("PARTICLEFX_PRESET"); v != "" {
		if knownPreset(v) {
			f.Preset = v
		}
	}

	if v := os.Getenv("PARTICLEFX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Count = n
		}
	}

	if v := os.Getenv("PARTICLEFX_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.FrameRate = n
		}
	}

	if v := os.Getenv("PARTICLEFX_PALETTE"); v != "" {
		f.Palette = v
		f.Colors = nil
	}

	if v := os.Getenv("PARTICLEFX_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Audio = b
		}
	}

	if v := os.Getenv("PARTICLEFX_HUD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.HUD = b
		}
	}
}
