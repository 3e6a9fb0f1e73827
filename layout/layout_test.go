package layout

import (
	"image"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxxserxxx/lingo/v2"

	"github.com/xxxserxxx/gogauge"
	"github.com/xxxserxxx/gogauge/devices"
	"github.com/xxxserxxx/gogauge/gauge"
)

func TestMain(m *testing.M) {
	ling, err := lingo.New("en_US", ".", gogauge.Dicts)
	if err != nil {
		panic(err)
	}
	SetTr(ling.TranslationsForLocale("en_US"))
	os.Exit(m.Run())
}

func TestParsing(t *testing.T) {
	l := ParseLayout(strings.NewReader("2:cpu@semi mem/2\n\n# comment\nNET"))
	require.Len(t, l.Rows, 2)
	require.Len(t, l.Rows[0], 2)

	cpu := l.Rows[0][0]
	assert.Equal(t, "cpu", cpu.Widget)
	assert.InDelta(t, 2.0/3, cpu.Weight, 1e-9)
	assert.Equal(t, 1, cpu.Height)
	assert.True(t, cpu.Typed)
	assert.Equal(t, gauge.Semicircle, cpu.Type)

	mem := l.Rows[0][1]
	assert.Equal(t, "mem", mem.Widget)
	assert.InDelta(t, 1.0/3, mem.Weight, 1e-9)
	assert.Equal(t, 2, mem.Height)
	assert.False(t, mem.Typed)

	assert.Equal(t, "net", l.Rows[1][0].Widget)
	assert.Equal(t, 1.0, l.Rows[1][0].Weight)
}

func TestParsingBadParts(t *testing.T) {
	l := ParseLayout(strings.NewReader("x:cpu/y mem@pie/0"))
	require.Len(t, l.Rows[0], 2)
	assert.Equal(t, widgetRule{Widget: "cpu", Weight: 0.5, Height: 1}, l.Rows[0][0])
	assert.Equal(t, widgetRule{Widget: "mem", Weight: 0.5, Height: 1}, l.Rows[0][1])
}

func TestNames(t *testing.T) {
	l := ParseLayout(strings.NewReader("cpu mem\ncpu bogus swap\npower"))
	assert.Equal(t, []string{"cpu", "mem", "swap", "power"}, l.Names())
}

func TestArrangeGrid(t *testing.T) {
	l := ParseLayout(strings.NewReader("cpu mem\nnet"))
	ps := Arrange(l, image.Rect(0, 0, 100, 100))
	require.Len(t, ps, 3)
	assert.Equal(t, image.Rect(0, 0, 50, 50), ps[0].Bounds)
	assert.Equal(t, image.Rect(50, 0, 100, 50), ps[1].Bounds)
	assert.Equal(t, "net", ps[2].Widget)
	assert.Equal(t, image.Rect(0, 50, 100, 100), ps[2].Bounds)
}

func TestArrangeRowSpan(t *testing.T) {
	l := ParseLayout(strings.NewReader("cpu/2 mem\nnet@hbar"))
	ps := Arrange(l, image.Rect(10, 10, 110, 110))
	require.Len(t, ps, 3)
	assert.Equal(t, "cpu", ps[0].Widget)
	assert.Equal(t, image.Rect(10, 10, 60, 110), ps[0].Bounds)
	assert.Equal(t, "mem", ps[1].Widget)
	assert.Equal(t, image.Rect(60, 10, 110, 60), ps[1].Bounds)
	assert.Equal(t, "net", ps[2].Widget)
	assert.Equal(t, image.Rect(60, 60, 110, 110), ps[2].Bounds)
	assert.Equal(t, gauge.LinearHorizontal, ps[2].TypeOr(gauge.Circular))
	assert.Equal(t, gauge.Semicircle, ps[0].TypeOr(gauge.Semicircle))
}

func TestArrangeWeightsAndUnknownWidgets(t *testing.T) {
	l := ParseLayout(strings.NewReader("3:cpu bogus 1:temp\nnope"))
	ps := Arrange(l, image.Rect(0, 0, 100, 40))
	require.Len(t, ps, 2)
	assert.Equal(t, image.Rect(0, 0, 75, 40), ps[0].Bounds)
	assert.Equal(t, image.Rect(75, 0, 100, 40), ps[1].Bounds)

	assert.Empty(t, Arrange(ParseLayout(strings.NewReader("")), image.Rect(0, 0, 10, 10)))
}

func TestArrangeOverflowStartsNewRow(t *testing.T) {
	// mem does not fit beside the spanning cpu, so it and temp start a row
	l := ParseLayout(strings.NewReader("cpu/2\nmem temp"))
	ps := Arrange(l, image.Rect(0, 0, 100, 90))
	require.Len(t, ps, 3)
	assert.Equal(t, image.Rect(0, 0, 100, 60), ps[0].Bounds)
	assert.Equal(t, image.Rect(0, 60, 50, 90), ps[1].Bounds)
	assert.Equal(t, image.Rect(50, 60, 100, 90), ps[2].Bounds)
}

func TestBuiltinsParse(t *testing.T) {
	for _, n := range Builtins() {
		c := gogauge.NewConfig()
		c.Layout = n
		r, err := GetLayout(c)
		require.NoError(t, err, n)
		l := ParseLayout(r)
		assert.NotEmpty(t, Arrange(l, image.Rect(0, 0, 800, 600)), n)
		for _, w := range l.Names() {
			assert.True(t, validWidget(w), "%s: %s", n, w)
		}
	}
}

func TestGetLayoutFromConfigFolder(t *testing.T) {
	c := gogauge.NewConfig()
	c.Tr = tr
	c.ConfigDir.LocalPath = t.TempDir()
	require.NoError(t, os.WriteFile(c.ConfigDir.LocalPath+"/mine", []byte("cpu mem"), 0600))
	c.Layout = "mine"
	r, err := GetLayout(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"cpu", "mem"}, ParseLayout(r).Names())

	c.Layout = "missing"
	_, err = GetLayout(c)
	assert.Error(t, err)

	// names are not treated as format verbs
	c.Layout = "100%d"
	_, err = GetLayout(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "100%d")
}

func TestNewLayout(t *testing.T) {
	c := gogauge.NewConfig()
	c.Tr = tr
	c.MetricsFile = "m.prom"
	cpus := devices.NewCPUs("Test CPU", false)
	devs := map[string]devices.Device{"cpu": &cpus}

	s, err := NewLayout(ParseLayout(strings.NewReader("cpu@vbar batt\ncpu")), c, devs)
	require.NoError(t, err)
	require.Len(t, s.Gauges, 2, "batt has no device")
	assert.Len(t, s.Widgets, 2)
	assert.Equal(t, gauge.LinearVertical, s.Gauges[0].Gauge.GaugeType())
	assert.Equal(t, c.GaugeType, s.Gauges[1].Gauge.GaugeType())

	_, err = NewLayout(ParseLayout(strings.NewReader("bogus")), c, devs)
	assert.Error(t, err)
}

func TestNewHost(t *testing.T) {
	c := gogauge.NewConfig()
	c.Tr = tr
	cpus := devices.NewCPUs("Test CPU", false)
	cpus.Average = 40
	devs := map[string]devices.Device{"cpu": &cpus}

	host, ws := NewHost(ParseLayout(strings.NewReader("cpu temp\ncpu@hbar")), c, devs, image.Rect(0, 0, 200, 100))
	assert.Equal(t, 2, host.Len(), "temp has no device")
	assert.Len(t, ws, 2)
}
