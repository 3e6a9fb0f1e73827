package gauge

import "math"

// SetValue sets the target value, clamped to [min, max]. The displayed value
// moves toward it on subsequent Update or Advance calls. NaN is ignored.
func (g *Gauge) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	g.target = clamp(v, g.min, g.max)
}

// Value returns the displayed (animated) value.
func (g *Gauge) Value() float64 {
	return g.current
}

// Target returns the value the gauge is moving toward.
func (g *Gauge) Target() float64 {
	return g.target
}

// Min and Max return the range bounds.
func (g *Gauge) Min() float64 { return g.min }
func (g *Gauge) Max() float64 { return g.max }

// SetMinValue moves the lower bound. Values below it are pulled up at once,
// without animation.
func (g *Gauge) SetMinValue(v float64) error {
	if !validRange(v, g.max) {
		return ErrInvalidRange
	}
	g.min = v
	if g.target < v {
		g.target = v
	}
	if g.current < v {
		g.current = v
	}
	return nil
}

// SetMaxValue moves the upper bound. Values above it are pulled down at
// once, without animation.
func (g *Gauge) SetMaxValue(v float64) error {
	if !validRange(g.min, v) {
		return ErrInvalidRange
	}
	g.max = v
	if g.target > v {
		g.target = v
	}
	if g.current > v {
		g.current = v
	}
	return nil
}

// SetValueRange sets both bounds and reclamps current and target.
func (g *Gauge) SetValueRange(min, max float64) error {
	if !validRange(min, max) {
		return ErrInvalidRange
	}
	g.min, g.max = min, max
	g.target = clamp(g.target, min, max)
	g.current = clamp(g.current, min, max)
	return nil
}

// validRange reports whether min < max with both bounds and the span finite.
func validRange(min, max float64) bool {
	if math.IsNaN(min) || math.IsNaN(max) {
		return false
	}
	return min < max && !math.IsInf(max-min, 0)
}
