// Package gauge implements a configurable dial/bar gauge widget.
//
// A Gauge owns its value state (current, target, min, max), animates the
// displayed value toward the target, keeps up to three colour zones, and
// draws itself through a Renderer supplied by the host on every frame. It
// does no pixel work of its own.
//
// A Gauge is not safe for concurrent use; hosts drive it from one goroutine.
package gauge

import (
	"errors"
	"image/color"
	"math"
	"strings"
)

// ErrInvalidRange is returned when a range update would leave min >= max,
// a NaN bound, or a span too wide to represent.
var ErrInvalidRange = errors.New("gauge: min must be less than max")

// Type selects the gauge geometry.
type Type int

const (
	Circular Type = iota
	Semicircle
	LinearHorizontal
	LinearVertical
)

var typeNames = []string{"circle", "semi", "hbar", "vbar"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Radial reports whether the type is drawn around a centre point.
func (t Type) Radial() bool {
	return t == Circular || t == Semicircle
}

// Next cycles through the types in declaration order.
func (t Type) Next() Type {
	return (t + 1) % Type(len(typeNames))
}

// ParseType accepts the String form as well as a few long names.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle", "circular", "dial":
		return Circular, true
	case "semi", "semicircle", "half":
		return Semicircle, true
	case "hbar", "horizontal":
		return LinearHorizontal, true
	case "vbar", "vertical":
		return LinearVertical, true
	}
	return Circular, false
}

// Types lists the canonical type names.
func Types() []string {
	rv := make([]string, len(typeNames))
	copy(rv, typeNames)
	return rv
}

// Style is a decorative tag carried for hosts; it does not change geometry.
type Style int

const (
	Modern Style = iota
	Classic
	Digital
	Minimalist
)

var styleNames = []string{"modern", "classic", "digital", "minimalist"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

func ParseStyle(s string) (Style, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range styleNames {
		if n == s {
			return Style(i), true
		}
	}
	return Modern, false
}

// Gauge is a single gauge widget. The zero value is not usable; call New.
type Gauge struct {
	current float64
	target  float64
	min     float64
	max     float64

	gaugeType Type
	style     Style
	title     string
	unit      string

	background color.Color
	needle     color.Color
	tick       color.Color
	valueText  color.Color
	titleColor color.Color

	danger  Zone
	warning Zone
	safe    Zone

	animated bool
	speed    float64

	majorTicks int
	minorTicks int
	tickLabels bool

	showValue  bool
	showTitle  bool
	showNeedle bool

	needleLength float64
	needleWidth  float64

	geom Geometry
	buf  []byte
}

// Default palette, matching the stock look: dark face, red needle.
var (
	DefaultBackground   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	DefaultNeedle       = color.NRGBA{R: 0xFF, G: 0x4C, B: 0x4C, A: 0xFF}
	DefaultTick         = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	DefaultValueText    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DefaultTitle        = color.NRGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	DefaultDangerColor  = color.NRGBA{R: 0xFF, G: 0x33, B: 0x33, A: 0x4C}
	DefaultWarningColor = color.NRGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0x4C}
	DefaultSafeColor    = color.NRGBA{R: 0x33, G: 0xFF, B: 0x33, A: 0x4C}
)

// New returns a gauge with the default configuration (0..100, circular,
// animated) and then applies opts in order.
func New(opts ...Option) *Gauge {
	g := &Gauge{
		min:          0,
		max:          100,
		gaugeType:    Circular,
		style:        Modern,
		title:        "Gauge",
		background:   DefaultBackground,
		needle:       DefaultNeedle,
		tick:         DefaultTick,
		valueText:    DefaultValueText,
		titleColor:   DefaultTitle,
		danger:       Zone{Start: 80, End: 100, Color: DefaultDangerColor},
		warning:      Zone{Start: 60, End: 80, Color: DefaultWarningColor},
		safe:         Zone{Start: 0, End: 60, Color: DefaultSafeColor},
		animated:     true,
		speed:        5,
		majorTicks:   10,
		minorTicks:   5,
		tickLabels:   true,
		showValue:    true,
		showTitle:    true,
		showNeedle:   true,
		needleLength: 0.8,
		needleWidth:  3,
		geom:         Geometry{W: 100, H: 100, CX: 50, CY: 50, Radius: 40},
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// clamp limits v to [lo, hi]; NaN becomes lo.
func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
