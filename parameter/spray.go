package parameter

// Spray (rise and fade bursts from an emitter that follows the pointer)
const (
	SprayCount = 160

	// SprayOriginX/Y is the idle emitter position as a surface fraction
	SprayOriginX = 0.5
	SprayOriginY = 0.8

	SpraySpreadX = 2.0
	SpraySpreadY = 1.0

	SprayRiseMin = 0.05
	SprayRiseMax = 0.3
	SprayDriftX  = 0.2

	// SprayBurst is the maximum radial speed at spawn
	SprayBurst = 0.9

	SprayLifeMin = 20.0
	SprayLifeMax = 60.0

	SpraySizeMin = 0.3
	SpraySizeMax = 1.8

	SprayTrail = 0.25
)
