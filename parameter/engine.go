package parameter

// Application
const (
	AppName = "particlefx"

	// LogDir holds the debug log, created only when debug logging is on
	LogDir  = "logs"
	LogFile = "particlefx.log"

	// LogMaxBytes rotates an oversized debug log to a timestamped file on start
	LogMaxBytes = 4 << 20
)

// Window host
const (
	WindowWidth  = 960
	WindowHeight = 600

	// WindowScale is pixels per surface unit, so presets tuned on terminal cells keep their proportions
	WindowScale = 8

	// WindowGlowRings approximates the radial glow gradient with concentric circles
	WindowGlowRings = 4
)

// Frame Loop
const (
	// DefaultFrameRate is the target scheduler cadence in frames per second
	DefaultFrameRate = 30

	// MaxFrameRate caps configured cadence; terminals cannot present faster
	MaxFrameRate = 120

	// MaxParticles caps configured particle counts
	MaxParticles = 5000
)

// Pointer Smoothing (harmonica spring), disabled by default
const (
	PointerSmoothingFrequency = 6.0
	PointerSmoothingDamping   = 1.0
)

// HUD
const (
	// DefaultHUD shows the metric overlay on start
	DefaultHUD = false
)
