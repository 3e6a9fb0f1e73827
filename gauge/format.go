package gauge

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// charWidth is the assumed rendered width of one text column, in pixels.
// Titles are centred with it; it is an estimate, not a measurement.
const charWidth = 6

// FormatValue renders v with one decimal place.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// ValueText is the label drawn for the displayed value, unit included.
func (g *Gauge) ValueText() string {
	g.buf = strconv.AppendFloat(g.buf[:0], g.current, 'f', 1, 64)
	if g.unit != "" {
		g.buf = append(g.buf, ' ')
		g.buf = append(g.buf, g.unit...)
	}
	return string(g.buf)
}

// halfTextWidth estimates half the rendered width of s.
func halfTextWidth(s string) float64 {
	return float64(runewidth.StringWidth(s) * charWidth / 2)
}
