package parameter

// Constellation (wrap drift with neighbor edges)
const (
	ConstellationCount = 70

	ConstellationSpeedMin = 0.05
	ConstellationSpeedMax = 0.35

	ConstellationSizeMin = 0.3
	ConstellationSizeMax = 0.95

	// ConstellationThreshold is the edge distance cutoff in columns
	ConstellationThreshold = 14.0

	// ConstellationEdgeAlpha is the alpha of a zero-length edge; longer edges are fainter
	ConstellationEdgeAlpha = 0.5

	ConstellationRepelRadius   = 10.0
	ConstellationRepelStrength = 1.2

	ConstellationTrail = 0.5
)
