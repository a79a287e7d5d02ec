package render

// Priority determines layer order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityWaveform
	// PriorityParticle splits layers: lower priorities draw beneath particles, the rest above
	PriorityParticle
	PriorityOverlay
	PriorityUI
	PriorityDebug
)
