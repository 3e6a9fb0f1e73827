package gauge

import "math"

// Geometry is the layout computed by the most recent draw.
type Geometry struct {
	X, Y, W, H int
	// CX, CY and Radius are only meaningful for radial types.
	CX, CY, Radius float64
}

// Geometry returns the snapshot taken by the last Draw or Render.
func (g *Gauge) Geometry() Geometry {
	return g.geom
}

func (g *Gauge) layout(x, y, w, h int) {
	g.geom = Geometry{X: x, Y: y, W: w, H: h}
	fw, fh := float64(w), float64(h)
	switch g.gaugeType {
	case Circular:
		g.geom.CX = float64(x) + fw*0.5
		g.geom.CY = float64(y) + fh*0.5
		g.geom.Radius = math.Min(fw, fh) * 0.4
	case Semicircle:
		g.geom.CX = float64(x) + fw*0.5
		g.geom.CY = float64(y) + fh*0.8
		g.geom.Radius = math.Min(fw, fh*1.25) * 0.4
	}
}

// Ratio maps v into [0,1] across the configured range.
func (g *Gauge) Ratio(v float64) float64 {
	span := g.max - g.min
	if span <= 0 {
		return 0
	}
	return clamp((v-g.min)/span, 0, 1)
}

// FillRatio is the ratio of the displayed value; linear bars use it as their
// fill fraction.
func (g *Gauge) FillRatio() float64 {
	return g.Ratio(g.current)
}

// ValueToAngle maps v to a needle angle in degrees. Semicircles sweep 180
// degrees starting at 180; every other type sweeps 270 degrees starting
// at 225.
func (g *Gauge) ValueToAngle(v float64) float64 {
	r := g.Ratio(v)
	if g.gaugeType == Semicircle {
		return 180 + r*180
	}
	return 225 + r*270
}

// AngleToValue inverts ValueToAngle. Angles outside the sweep clamp to the
// nearest end of the range.
func (g *Gauge) AngleToValue(angle float64) float64 {
	var n float64
	if g.gaugeType == Semicircle {
		n = (angle - 180) / 180
	} else {
		n = (angle - 225) / 270
	}
	n = clamp(n, 0, 1)
	return g.min + n*(g.max-g.min)
}

// polar returns the point at angle degrees and distance r from the centre.
func (g *Gauge) polar(angle, r float64) (float64, float64) {
	s, c := math.Sincos(angle * math.Pi / 180)
	return g.geom.CX + r*c, g.geom.CY + r*s
}
