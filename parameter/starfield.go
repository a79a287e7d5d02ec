package parameter

// Starfield (depth drift with perspective projection)
// Units are terminal columns per frame; depth is unitless
const (
	StarfieldCount = 220

	// StarfieldDepth is zMax; stars respawn here after crossing the camera plane
	StarfieldDepth = 300.0

	StarfieldSpeedMin = 1.5
	StarfieldSpeedMax = 4.5

	// StarfieldSize is the projected radius at the camera plane
	StarfieldSize = 2.2

	// StarfieldFocal is the perspective constant k in x*k/z
	StarfieldFocal = 96.0

	// StarfieldParallax is the displacement of the nearest star at full pointer offset
	StarfieldParallax = 6.0

	StarfieldTrail     = 0.35
	StarfieldGlowScale = 2.5
	StarfieldGlowAlpha = 0.35
)
