package widgets

import (
	"fmt"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
	"github.com/xxxserxxx/gogauge/utils"
)

// DiskGauge shows how full one mounted partition is.
type DiskGauge struct {
	*GaugeWidget
	disk  devices.Disk
	mount string
}

func NewDiskGauge(c gogauge.Config, t gauge.Type, d devices.Disk) *DiskGauge {
	self := &DiskGauge{
		GaugeWidget: NewGaugeWidget("disk", c, t),
		disk:        d,
		mount:       c.DiskMount,
	}
	self.Title = tr.Value("widget.label.disk")
	self.Gauge.SetUnit("%")
	self.Update()
	return self
}

func (disk *DiskGauge) Update() {
	p, ok := disk.disk[disk.mount]
	if !ok {
		disk.Gauge.SetTitle(tr.Value("widget.label.nomount", disk.mount))
		disk.Gauge.SetValue(0)
		return
	}
	free, mag := utils.ConvertBytes(p.Free)
	disk.Gauge.SetTitle(fmt.Sprintf("%s %.1f%s", p.MountPoint, free, mag))
	disk.Gauge.SetValue(p.UsedPercent)
}
