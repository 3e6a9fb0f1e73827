package widgets

import (
	"github.com/VividCortex/ewma"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
)

// CPUGauge shows the average load across all CPUs, smoothed over recent
// samples.
type CPUGauge struct {
	*GaugeWidget
	cpus    *devices.CPUs
	average ewma.MovingAverage
}

func NewCPUGauge(c gogauge.Config, t gauge.Type, cpus *devices.CPUs) *CPUGauge {
	self := &CPUGauge{
		GaugeWidget: NewGaugeWidget("cpu", c, t),
		cpus:        cpus,
		average:     ewma.NewMovingAverage(),
	}
	self.Title = tr.Value("widget.label.cpu")
	self.Gauge.SetUnit("%")
	self.Gauge.SetTitle(cpus.Name)
	self.Update()
	return self
}

func (cpu *CPUGauge) Update() {
	cpu.average.Add(cpu.cpus.Average)
	cpu.Gauge.SetValue(cpu.average.Value())
}
