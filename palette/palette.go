// Package palette holds the color type shared by the engine and its hosts,
// plus the themed palettes particles draw their spawn colors from.
package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/crazy3lf/colorconv"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Palette is an ordered, non-empty set of spawn colors
type Palette []RGB

// Pick returns the color for index i, cycling through the palette
func (p Palette) Pick(i int) RGB {
	if len(p) == 0 {
		return White
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// At returns the color at fraction t in [0, 1), used with random spawn draws
func (p Palette) At(t float64) RGB {
	if len(p) == 0 {
		return White
	}
	idx := int(t * float64(len(p)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}

// Parse converts a list of hex strings (#rgb or #rrggbb) into a palette
func Parse(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette: empty color list")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		h = strings.TrimSpace(h)
		if !strings.HasPrefix(h, "#") {
			h = "#" + h
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: invalid color %q: %w", h, err)
		}
		p = append(p, fromColorful(c))
	}
	return p, nil
}

// HueWheel builds n fully saturated colors evenly spaced around the HSV hue circle
// Index-derived coloring: particle i takes HueWheel(n)[i]
func HueWheel(n int, saturation, value float64) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	for i := range p {
		hue := math.Mod(float64(i)*360/float64(n), 360)
		r, g, b, err := colorconv.HSVToRGB(hue, saturation, value)
		if err != nil {
			p[i] = White
			continue
		}
		p[i] = RGB{R: r, G: g, B: b}
	}
	return p
}

// Tint blends c toward target in HCL space, t=0 returns c
// Used for depth fog: far particles are tinted toward the background
func Tint(c, target RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return target
	}
	return fromColorful(c.colorful().BlendHcl(target.colorful(), t))
}

// ErrUnknownPalette is returned for a theme name that does not exist
var ErrUnknownPalette = errors.New("unknown palette")

// Named returns a themed palette by name
func Named(name string) (Palette, bool) {
	if name == "hue" {
		return HueWheel(12, 0.85, 1), true
	}
	p, ok := themes[strings.ToLower(name)]
	return p, ok
}

// Names lists the available themed palettes in sorted order
func Names() []string {
	names := make([]string, 0, len(themes)+1)
	for k := range themes {
		names = append(names, k)
	}
	names = append(names, "hue")
	sort.Strings(names)
	return names
}

// Resolve accepts either a theme name or a hex list
func Resolve(name string, hexes []string) (Palette, error) {
	if len(hexes) > 0 {
		return Parse(hexes)
	}
	if name == "" {
		return themes["mono"], nil
	}
	p, ok := Named(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}
