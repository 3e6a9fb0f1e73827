package widgets

import (
	"bytes"
	"image"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gizak/termui/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
)

func TestGaugeWidgetAppliesConfig(t *testing.T) {
	c := testConfig(t)
	c.AnimationSpeed = 2
	c.MajorTicks = 4
	c.TickLabels = false
	w := NewGaugeWidget("cpu", c, gauge.Semicircle)
	assert.Equal(t, gauge.Semicircle, w.Gauge.GaugeType())
	assert.Equal(t, 2.0, w.Gauge.AnimationSpeed())
	assert.Equal(t, 4, w.Gauge.MajorTickCount())
	assert.False(t, w.Gauge.ShowTickLabels())
}

func TestStandardZones(t *testing.T) {
	w := NewGaugeWidget("temp", testConfig(t), gauge.Circular)
	require.NoError(t, w.Gauge.SetValueRange(0, 200))
	w.SetStandardZones()
	assert.Equal(t, 160.0, w.Gauge.DangerZone().Start)
	assert.Equal(t, 120.0, w.Gauge.WarningZone().Start)
	assert.Equal(t, 0.0, w.Gauge.SafeZone().Start)

	w.SetInverted(true)
	assert.Equal(t, 0.0, w.Gauge.DangerZone().Start)
	assert.Equal(t, 40.0, w.Gauge.DangerZone().End)
	assert.Equal(t, w.Gauge.DangerZoneColor(), w.Gauge.ZoneColor(10))
	assert.Equal(t, w.Gauge.SafeZoneColor(), w.Gauge.ZoneColor(190))

	w.SetZonesEnabled(false)
	assert.True(t, gauge.IsNoZone(w.Gauge.ZoneColor(10)))
}

func TestGaugeWidgetDraw(t *testing.T) {
	w := NewGaugeWidget("cpu", testConfig(t), gauge.Circular)
	w.SetRect(0, 0, 22, 12)
	buf := termui.NewBuffer(w.GetRect())
	w.Draw(buf)
	assert.Equal(t, termui.HORIZONTAL_LINE, buf.GetCell(image.Pt(5, 0)).Rune, "border")
	inner := 0
	for y := 1; y < 11; y++ {
		for x := 1; x < 21; x++ {
			if r := buf.GetCell(image.Pt(x, y)).Rune; r >= 0x2800 && r <= 0x28FF {
				inner++
			}
		}
	}
	assert.Greater(t, inner, 0, "dial drawn in braille")
}

func TestGaugeWidgetRegister(t *testing.T) {
	w := NewGaugeWidget("mem", testConfig(t), gauge.Circular)
	w.Gauge.SetAnimationEnabled(false)
	w.Gauge.SetValue(42)
	w.Gauge.Update()
	s := metrics.NewSet()
	w.Register(s, 3)
	var buf bytes.Buffer
	s.WritePrometheus(&buf)
	assert.Contains(t, buf.String(), `gogauge_gauge_value{gauge="mem",slot="3"} 42`)
}

func TestCPUGauge(t *testing.T) {
	cpus := devices.NewCPUs("Test CPU", false)
	cpus.Average = 50
	g := NewCPUGauge(testConfig(t), gauge.Circular, &cpus)
	assert.Equal(t, "Test CPU", g.Gauge.Title())
	assert.Equal(t, 50.0, g.Gauge.Target())
	cpus.Average = 100
	g.Update()
	assert.Greater(t, g.Gauge.Target(), 50.0)
	assert.Less(t, g.Gauge.Target(), 100.0, "smoothed")
}

func TestMemGauge(t *testing.T) {
	mems := devices.Memory{
		"Main": {Total: 1 << 30, Used: 1 << 29, UsedPercent: 50},
		"Swap": {},
	}
	m := NewMemGauge(testConfig(t), gauge.Circular, mems, false)
	assert.Equal(t, 50.0, m.Gauge.Target())
	assert.Equal(t, "512.0MB/1GB", m.Gauge.Title())

	s := NewMemGauge(testConfig(t), gauge.Circular, mems, true)
	assert.Equal(t, "swap", s.Name)
	assert.Equal(t, 0.0, s.Gauge.Target())
}

func TestTempGaugeScale(t *testing.T) {
	c := testConfig(t)
	c.TempScale = gogauge.Fahrenheit
	tmp := devices.NewTemperature()
	g := NewTempGauge(c, gauge.Circular, &tmp)
	assert.Equal(t, 32.0, g.Gauge.Min())
	assert.Equal(t, 248.0, g.Gauge.Max())
	assert.Equal(t, "°F", g.Gauge.Unit())
	assert.Equal(t, 32.0, g.Gauge.Target(), "no sensors")
	assert.Equal(t, 248.0, g.Gauge.DangerZone().End)
}

func TestBatteryGaugeIsInverted(t *testing.T) {
	b := devices.NewBatteries()
	b.Data = []devices.BatteryInfo{{Full: 100, Current: 15}}
	b.PercentFull = 15
	g := NewBatteryGauge(testConfig(t), gauge.Circular, &b)
	assert.Equal(t, 15.0, g.Gauge.Target())
	assert.Equal(t, g.Gauge.DangerZoneColor(), g.Gauge.ZoneColor(15))
	assert.Contains(t, g.Gauge.Title(), "1")
}

func TestDiskGauge(t *testing.T) {
	d := devices.NewDisk()
	d["/"] = &devices.Partition{MountPoint: "/", UsedPercent: 70, Free: 3 << 30}
	g := NewDiskGauge(testConfig(t), gauge.Circular, d)
	assert.Equal(t, 70.0, g.Gauge.Target())
	assert.Equal(t, "/ 3.0GB", g.Gauge.Title())

	c := testConfig(t)
	c.DiskMount = "/nowhere"
	g = NewDiskGauge(c, gauge.Circular, d)
	assert.Equal(t, 0.0, g.Gauge.Target())
	assert.Contains(t, g.Gauge.Title(), "/nowhere")
}

func TestNetGaugeScalesUp(t *testing.T) {
	n := devices.NewNetwork()
	g := NewNetGauge(testConfig(t), gauge.Circular, &n)
	assert.Equal(t, float64(netInitialMax), g.Gauge.Max())

	n.RecvRate = 80 * 1024
	n.SentRate = 20 * 1024
	g.Update()
	assert.Equal(t, 128.0, g.Gauge.Max())
	assert.Equal(t, 100.0, g.Gauge.Target())
	assert.Equal(t, 128*0.8, g.Gauge.DangerZone().Start)

	n.RecvRate, n.SentRate = 0, 0
	g.Update()
	assert.Equal(t, 128.0, g.Gauge.Max(), "never shrinks")
}
