package render

// Surface is the destination drawing target of one engine instance
// Coordinates are surface units; anything outside the surface is silently dropped
type Surface interface {
	// Size returns the drawable dimensions
	Size() (width, height int)

	// Clear paints the whole surface opaque
	Clear(bg RGB)

	// Fade paints bg over the whole surface at alpha, leaving fading trails of earlier frames
	Fade(bg RGB, alpha float64)

	// Dot draws a filled circle
	Dot(x, y, radius float64, c RGB, alpha float64)

	// Glow draws a radial gradient halo fading from alpha at the center to zero at radius
	Glow(x, y, radius float64, c RGB, alpha float64)

	// Line draws a straight segment
	Line(x0, y0, x1, y1 float64, c RGB, alpha float64)

	// Glyph draws a single character cell centered near (x, y)
	Glyph(x, y float64, r rune, c RGB, alpha float64)

	// Present publishes the frame to the host
	Present() error
}

// Resizable is implemented by surfaces that reallocate when the host resizes
type Resizable interface {
	Resize(width, height int)
}

// TextDrawer is optionally implemented by surfaces with native text output
type TextDrawer interface {
	Text(col, row int, s string, c RGB)
}

// Flusher receives a completed cell frame, row-major: cells[y*width + x]
type Flusher interface {
	Flush(cells []Cell, width, height int) error
}
