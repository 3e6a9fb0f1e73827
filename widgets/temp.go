package widgets

import (
	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
	"github.com/xxxserxxx/gogauge/utils"
)

// Range of the temperature gauge, in °C.
const (
	tempMin = 0
	tempMax = 120
)

// TempGauge shows the hottest of the filtered sensors.
type TempGauge struct {
	*GaugeWidget
	TempScale   gogauge.TempScale
	temperature *devices.Temperature
}

func NewTempGauge(c gogauge.Config, t gauge.Type, temperature *devices.Temperature) *TempGauge {
	self := &TempGauge{
		GaugeWidget: NewGaugeWidget("temp", c, t),
		TempScale:   c.TempScale,
		temperature: temperature,
	}
	self.Title = tr.Value("widget.label.temp")
	if self.TempScale == gogauge.Fahrenheit {
		self.Gauge.SetUnit("°F")
		_ = self.Gauge.SetValueRange(utils.CelsiusToFahrenheit(tempMin), utils.CelsiusToFahrenheit(tempMax))
	} else {
		self.Gauge.SetUnit("°C")
		_ = self.Gauge.SetValueRange(tempMin, tempMax)
	}
	self.SetStandardZones()
	self.Update()
	return self
}

func (temp *TempGauge) Update() {
	name, v, ok := temp.temperature.Hottest()
	if !ok {
		temp.Gauge.SetTitle(tr.Value("widget.label.none"))
		temp.Gauge.SetValue(temp.Gauge.Min())
		return
	}
	if temp.TempScale == gogauge.Fahrenheit {
		v = utils.CelsiusToFahrenheit(v)
	}
	temp.Gauge.SetTitle(name)
	temp.Gauge.SetValue(v)
}
