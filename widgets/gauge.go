package widgets

import (
	"fmt"
	"log"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gizak/termui/v3"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/gauge"
)

// GaugeWidget is a termui block that draws a gauge.Gauge into its inner
// rectangle with a braille Canvas. The block title names the widget; the
// gauge title carries the device detail.
type GaugeWidget struct {
	*termui.Block
	Gauge *gauge.Gauge
	// Name is the layout widget name, e.g. "cpu"
	Name     string
	inverted bool
	zones    bool
	canvas   *Canvas
}

// NewGaugeWidget builds a gauge configured from c.
func NewGaugeWidget(name string, c gogauge.Config, t gauge.Type) *GaugeWidget {
	g := gauge.New(
		gauge.WithType(t),
		gauge.WithStyle(c.GaugeStyle),
		gauge.WithAnimation(c.Animation, c.AnimationSpeed),
		gauge.WithTicks(c.MajorTicks, c.MinorTicks),
		gauge.WithNeedle(c.NeedleLength, c.NeedleWidth),
	)
	g.SetShowTickLabels(c.TickLabels)
	if err := c.Colorscheme.Apply(g); err != nil {
		log.Printf("%s: %s", c.Colorscheme.Name, err)
	}
	w := &GaugeWidget{
		Block:  termui.NewBlock(),
		Gauge:  g,
		Name:   name,
		zones:  c.Zones,
		canvas: NewCanvas(),
	}
	w.SetStandardZones()
	return w
}

// SetInverted marks low values as the dangerous end, as for a battery.
func (w *GaugeWidget) SetInverted(inverted bool) {
	w.inverted = inverted
	w.SetStandardZones()
}

// SetStandardZones lays the three zones over the current range: safe below
// 60%, warning to 80% and danger above. Inverted gauges put danger below
// 20% and warning below 40%. With zones disabled it clears them.
func (w *GaugeWidget) SetStandardZones() {
	g := w.Gauge
	g.ClearZones()
	if !w.zones {
		return
	}
	lo, hi := g.Min(), g.Max()
	at := func(f float64) float64 { return lo + (hi-lo)*f }
	if w.inverted {
		g.SetDangerZone(lo, at(0.2))
		g.SetWarningZone(at(0.2), at(0.4))
		g.SetSafeZone(at(0.4), hi)
		return
	}
	g.SetSafeZone(lo, at(0.6))
	g.SetWarningZone(at(0.6), at(0.8))
	g.SetDangerZone(at(0.8), hi)
}

// SetZonesEnabled turns the standard zones on or off.
func (w *GaugeWidget) SetZonesEnabled(on bool) {
	w.zones = on
	w.SetStandardZones()
}

func (w *GaugeWidget) Draw(buf *termui.Buffer) {
	w.Block.Draw(buf)
	w.canvas.Reset(w.Inner)
	x, y, wd, h := w.canvas.Bounds()
	w.Gauge.Render(w.canvas, x, y, wd, h)
	w.canvas.Flush(buf)
}

// Register exposes the displayed value in s. slot tells apart two widgets
// showing the same device.
func (w *GaugeWidget) Register(s *metrics.Set, slot int) {
	name := fmt.Sprintf(`gogauge_gauge_value{gauge=%q,slot="%d"}`, w.Name, slot)
	s.NewGauge(name, w.Gauge.Value)
}
