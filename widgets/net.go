package widgets

import (
	"fmt"
	"log"
	"math"

	"github.com/VividCortex/ewma"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
	"github.com/xxxserxxx/gogauge/utils"
)

// initial top of the net gauge, in KiB/s
const netInitialMax = 64

// NetGauge shows received plus sent traffic in KiB/s. The top of the range
// grows to the next power of two whenever traffic exceeds it, and never
// shrinks.
type NetGauge struct {
	*GaugeWidget
	net  *devices.Network
	rate ewma.MovingAverage
}

func NewNetGauge(c gogauge.Config, t gauge.Type, n *devices.Network) *NetGauge {
	self := &NetGauge{
		GaugeWidget: NewGaugeWidget("net", c, t),
		net:         n,
		rate:        ewma.NewMovingAverage(),
	}
	self.Title = tr.Value("widget.label.net")
	self.Gauge.SetUnit("KiB/s")
	_ = self.Gauge.SetValueRange(0, netInitialMax)
	self.SetStandardZones()
	self.Update()
	return self
}

func (net *NetGauge) Update() {
	net.rate.Add((net.net.RecvRate + net.net.SentRate) / 1024)
	v := net.rate.Value()
	if v > net.Gauge.Max() {
		if err := net.Gauge.SetMaxValue(utils.NextPow2(math.Ceil(v))); err != nil {
			log.Printf("net: %s", err)
		}
		net.SetStandardZones()
	}
	net.Gauge.SetValue(v)

	recv, recvMag := utils.ConvertBytes(uint64(net.net.RecvRate))
	sent, sentMag := utils.ConvertBytes(uint64(net.net.SentRate))
	net.Gauge.SetTitle(fmt.Sprintf("↓%.1f%s ↑%.1f%s", recv, recvMag, sent, sentMag))
}
