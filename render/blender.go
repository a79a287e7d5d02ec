package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x04
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendScreen  = BlendMode(opScreen | flagBg | flagFg)

	// Targeted Modes
	BlendReplaceFg = BlendMode(opReplace | flagFg) // Text, keep background
	BlendAlphaFg   = BlendMode(opAlpha | flagFg)   // Particle glyphs and edges, keep halo underneath
	BlendAlphaBg   = BlendMode(opAlpha | flagBg)   // Solid discs drawn as cell backgrounds
	BlendScreenBg  = BlendMode(opScreen | flagBg)  // Glow halos, keep glyph on top
	BlendMaxBg     = BlendMode(opMax | flagBg)     // Solid discs, keep brightest
)

// apply runs op on one channel pair
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch uint8(m) & 0x0F {
	case opReplace:
		return src
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src, alpha)
	case opMax:
		return Max(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	}
	return dst
}
