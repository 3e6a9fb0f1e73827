package widgets

import (
	"strconv"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
)

// BatteryGauge shows how full the batteries are, weighted by capacity. Its
// zones are inverted, so an empty battery reads as danger.
type BatteryGauge struct {
	*GaugeWidget
	d *devices.Batteries
}

// NewBatteryGauge creates a gauge widget representing the percentage of how
// full power a battery is.
func NewBatteryGauge(c gogauge.Config, t gauge.Type, b *devices.Batteries) *BatteryGauge {
	self := &BatteryGauge{
		GaugeWidget: NewGaugeWidget("batt", c, t),
		d:           b,
	}
	self.Title = tr.Value("widget.label.battery")
	self.Gauge.SetUnit("%")
	self.SetInverted(true)
	self.Update()
	return self
}

func (b *BatteryGauge) Update() {
	n := 0
	for _, bat := range b.d.Data {
		if bat.Full > 0 {
			n++
		}
	}
	b.Gauge.SetTitle(tr.Value("widget.label.batts", strconv.Itoa(n)))
	b.Gauge.SetValue(b.d.PercentFull)
}
