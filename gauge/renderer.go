package gauge

import (
	"image"
	"image/color"
)

// FontSize is a renderer-neutral text size hint.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)

// Renderer is the drawing surface a host lends to a gauge for one frame.
//
// Angles are in degrees and increase clockwise from 3 o'clock, with y
// growing downward. A filled arc is a pie wedge from the centre. Angles may
// exceed 360; renderers must not assume they are normalised.
type Renderer interface {
	SetColor(c color.Color)
	DrawRectangle(x, y, w, h float64, filled bool)
	DrawCircle(cx, cy, r float64, filled bool, segments int)
	DrawArc(cx, cy, r, startDeg, endDeg float64, filled bool, segments int)
	DrawLine(x1, y1, x2, y2 float64)
	// DrawText places text with its baseline starting at (x, y).
	DrawText(text string, x, y float64, size FontSize)
}

// LineWidther is implemented by renderers that can stroke wider lines.
type LineWidther interface {
	SetLineWidth(w float64)
}

// Plugin is the capability a host container drives once per frame.
type Plugin interface {
	Draw(r Renderer, x, y, w, h int)
	Update()
}

var _ Plugin = (*Gauge)(nil)

// Host holds plugins by reference along with the bounds each is drawn in.
type Host struct {
	entries []hosted
}

type hosted struct {
	plugin Plugin
	bounds image.Rectangle
}

// Add registers p to be drawn within bounds on every frame.
func (h *Host) Add(p Plugin, bounds image.Rectangle) {
	h.entries = append(h.entries, hosted{plugin: p, bounds: bounds})
}

func (h *Host) Len() int {
	return len(h.entries)
}

// Frame draws every plugin once, in the order they were added. Each plugin's
// Draw advances its own animation.
func (h *Host) Frame(r Renderer) {
	for _, e := range h.entries {
		b := e.bounds
		e.plugin.Draw(r, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
	}
}
