package gauge

import "image/color"

// Option configures a gauge at construction.
type Option func(*Gauge)

func WithType(t Type) Option   { return func(g *Gauge) { g.gaugeType = t } }
func WithStyle(s Style) Option { return func(g *Gauge) { g.style = s } }
func WithTitle(s string) Option {
	return func(g *Gauge) { g.title = s }
}
func WithUnit(s string) Option { return func(g *Gauge) { g.unit = s } }

// WithRange sets the value range. An invalid range leaves the default.
func WithRange(min, max float64) Option {
	return func(g *Gauge) { _ = g.SetValueRange(min, max) }
}

func WithAnimation(enabled bool, speed float64) Option {
	return func(g *Gauge) {
		g.SetAnimationEnabled(enabled)
		g.SetAnimationSpeed(speed)
	}
}

func WithTicks(major, minor int) Option {
	return func(g *Gauge) {
		g.SetMajorTickCount(major)
		g.SetMinorTickCount(minor)
	}
}

func WithNeedle(length, width float64) Option {
	return func(g *Gauge) {
		g.SetNeedleLength(length)
		g.SetNeedleWidth(width)
	}
}

// SetGaugeType switches geometry; it takes effect on the next draw.
func (g *Gauge) SetGaugeType(t Type) { g.gaugeType = t }
func (g *Gauge) GaugeType() Type     { return g.gaugeType }

// Style is decorative only.
func (g *Gauge) SetGaugeStyle(s Style) { g.style = s }
func (g *Gauge) GaugeStyle() Style     { return g.style }

// Title and unit are drawn as given; an empty unit adds nothing to the value
// text.
func (g *Gauge) SetTitle(s string) { g.title = s }
func (g *Gauge) Title() string     { return g.title }

func (g *Gauge) SetUnit(s string) { g.unit = s }
func (g *Gauge) Unit() string     { return g.unit }

// A nil colour passed to any colour setter restores the default.
func (g *Gauge) SetBackgroundColor(c color.Color) { g.background = orDefault(c, DefaultBackground) }
func (g *Gauge) SetNeedleColor(c color.Color)     { g.needle = orDefault(c, DefaultNeedle) }
func (g *Gauge) SetTickColor(c color.Color)       { g.tick = orDefault(c, DefaultTick) }
func (g *Gauge) SetValueTextColor(c color.Color)  { g.valueText = orDefault(c, DefaultValueText) }
func (g *Gauge) SetTitleColor(c color.Color)      { g.titleColor = orDefault(c, DefaultTitle) }

// Colour getters return the default when the colour was never set.
func (g *Gauge) BackgroundColor() color.Color { return g.background }
func (g *Gauge) NeedleColor() color.Color     { return g.needle }
func (g *Gauge) TickColor() color.Color       { return g.tick }
func (g *Gauge) ValueTextColor() color.Color  { return g.valueText }
func (g *Gauge) TitleColor() color.Color      { return g.titleColor }

// Show flags gate the value text, title and needle; all default to true.
func (g *Gauge) SetShowValue(show bool)  { g.showValue = show }
func (g *Gauge) SetShowTitle(show bool)  { g.showTitle = show }
func (g *Gauge) SetShowNeedle(show bool) { g.showNeedle = show }
func (g *Gauge) ShowValue() bool         { return g.showValue }
func (g *Gauge) ShowTitle() bool         { return g.showTitle }
func (g *Gauge) ShowNeedle() bool        { return g.showNeedle }

// SetNeedleLength sets the needle length as a fraction of the radius,
// clamped to [0.1, 1].
func (g *Gauge) SetNeedleLength(l float64) {
	g.needleLength = clamp(l, 0.1, 1)
}

// SetNeedleWidth sets the needle stroke width; at least 1.
func (g *Gauge) SetNeedleWidth(w float64) {
	if w < 1 {
		w = 1
	}
	g.needleWidth = w
}

func (g *Gauge) NeedleLength() float64 { return g.needleLength }
func (g *Gauge) NeedleWidth() float64  { return g.needleWidth }

func orDefault(c, d color.Color) color.Color {
	if c == nil {
		return d
	}
	return c
}
