package gauge

import (
	"math"
	"time"
)

const (
	// Epsilon is the distance under which the displayed value snaps to the
	// target.
	Epsilon = 0.001
	// FixedFrameRate is the frame rate Update assumes.
	FixedFrameRate = 60
	// FixedFrameDelta is one frame at FixedFrameRate, rounded down to the
	// nanosecond. Hosts use it as a ticker period; Update steps by the exact
	// fraction.
	FixedFrameDelta = time.Second / FixedFrameRate
)

// Update advances the animation by exactly 1/60 of a second.
func (g *Gauge) Update() {
	g.step(g.speed / FixedFrameRate)
}

// Advance moves the displayed value toward the target as if dt had elapsed.
// The approach is exponential: each step covers speed*dt of the remaining
// distance, capped at all of it, so the value never overshoots.
func (g *Gauge) Advance(dt time.Duration) {
	g.step(g.speed * dt.Seconds())
}

// step covers the fraction t of the remaining distance.
func (g *Gauge) step(t float64) {
	if !g.animated {
		g.current = g.target
		return
	}
	diff := g.target - g.current
	if math.Abs(diff) <= Epsilon {
		g.current = g.target
		return
	}
	if t > 1 {
		t = 1
	}
	if t <= 0 {
		return
	}
	g.current = lerp(g.current, g.target, t)
}

// Animating reports whether the displayed value has not yet settled.
func (g *Gauge) Animating() bool {
	return g.animated && math.Abs(g.target-g.current) > Epsilon
}

// SetAnimationEnabled turns animation on or off. While off, the displayed
// value jumps to the target on the next step.
func (g *Gauge) SetAnimationEnabled(enabled bool) { g.animated = enabled }
func (g *Gauge) AnimationEnabled() bool           { return g.animated }

// SetAnimationSpeed sets the fraction of the remaining distance covered per
// second. Negative and NaN speeds are treated as zero.
func (g *Gauge) SetAnimationSpeed(speed float64) {
	if speed < 0 || math.IsNaN(speed) {
		speed = 0
	}
	g.speed = speed
}

func (g *Gauge) AnimationSpeed() float64 { return g.speed }

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
