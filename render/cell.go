package render

// Cell is one terminal character cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Blank reports whether the cell shows no glyph
func (c Cell) Blank() bool {
	return c.Rune == 0 || c.Rune == ' '
}
