package widgets

import (
	"image/color"

	"github.com/gizak/termui/v3"
	"github.com/lucasb-eyer/go-colorful"
)

// xterm is the fixed part of the xterm 256-colour palette, indices 16-255.
// The first 16 entries are left out since terminals theme them freely.
var xterm = buildXterm()

func buildXterm() []colorful.Color {
	levels := []float64{0, 95, 135, 175, 215, 255}
	rv := make([]colorful.Color, 0, 240)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				rv = append(rv, colorful.Color{R: levels[r] / 255, G: levels[g] / 255, B: levels[b] / 255})
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		rv = append(rv, colorful.Color{R: v, G: v, B: v})
	}
	return rv
}

// palette maps arbitrary colours onto the nearest xterm entry, by CIE-Lab
// distance, and caches the answers.
type palette struct {
	cache map[color.RGBA64]termui.Color
}

func newPalette() *palette {
	return &palette{cache: make(map[color.RGBA64]termui.Color)}
}

// Index returns the terminal colour for c, and false when c is fully
// transparent. Translucent colours are taken premultiplied, i.e. as if
// painted over black.
func (p *palette) Index(c color.Color) (termui.Color, bool) {
	if c == nil {
		return termui.ColorClear, false
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return termui.ColorClear, false
	}
	key := color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
	if idx, ok := p.cache[key]; ok {
		return idx, true
	}
	want := colorful.Color{R: float64(r) / 0xFFFF, G: float64(g) / 0xFFFF, B: float64(b) / 0xFFFF}
	best, bestDist := 0, want.DistanceLab(xterm[0])
	for i := 1; i < len(xterm); i++ {
		if d := want.DistanceLab(xterm[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	idx := termui.Color(best + 16)
	p.cache[key] = idx
	return idx, true
}
