package widgets

import (
	"fmt"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
	"github.com/xxxserxxx/gogauge/utils"
)

// MemGauge shows the used percentage of main memory or swap.
type MemGauge struct {
	*GaugeWidget
	mems devices.Memory
	key  string
}

// NewMemGauge shows mems["Main"], or mems["Swap"] when swap is set.
func NewMemGauge(c gogauge.Config, t gauge.Type, mems devices.Memory, swap bool) *MemGauge {
	name, key, title := "mem", "Main", tr.Value("widget.label.mem")
	if swap {
		name, key, title = "swap", "Swap", tr.Value("widget.label.swap")
	}
	widg := &MemGauge{
		GaugeWidget: NewGaugeWidget(name, c, t),
		mems:        mems,
		key:         key,
	}
	widg.Title = title
	widg.Gauge.SetUnit("%")
	widg.Update()
	return widg
}

func (widg *MemGauge) Update() {
	mem, ok := widg.mems[widg.key]
	if !ok || mem.Total == 0 {
		widg.Gauge.SetValue(0)
		widg.Gauge.SetTitle(tr.Value("widget.label.none"))
		return
	}
	widg.Gauge.SetValue(mem.UsedPercent)
	usedBytes, usedMagnitude := utils.ConvertBytes(mem.Used)
	totalBytes, totalMagnitude := utils.ConvertBytes(mem.Total)
	widg.Gauge.SetTitle(fmt.Sprintf("%.1f%s/%.0f%s",
		usedBytes,
		usedMagnitude,
		totalBytes,
		totalMagnitude,
	))
}
