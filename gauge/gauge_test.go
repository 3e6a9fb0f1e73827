package gauge

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(g *Gauge, max int) int {
	for i := 0; i < max; i++ {
		if g.Value() == g.Target() {
			return i
		}
		g.Update()
	}
	return max
}

func TestDefaults(t *testing.T) {
	g := New()
	assert.Equal(t, 0.0, g.Min())
	assert.Equal(t, 100.0, g.Max())
	assert.Equal(t, 0.0, g.Value())
	assert.Equal(t, 0.0, g.Target())
	assert.Equal(t, Circular, g.GaugeType())
	assert.Equal(t, "Gauge", g.Title())
	assert.True(t, g.AnimationEnabled())
	assert.Equal(t, 5.0, g.AnimationSpeed())
	assert.Equal(t, 10, g.MajorTickCount())
	assert.Equal(t, 5, g.MinorTickCount())
	assert.Equal(t, 0.8, g.NeedleLength())
	assert.Equal(t, 3.0, g.NeedleWidth())
	assert.False(t, g.DangerZone().Enabled)
	assert.False(t, g.WarningZone().Enabled)
	assert.False(t, g.SafeZone().Enabled)
}

func TestOptions(t *testing.T) {
	g := New(
		WithType(Semicircle),
		WithStyle(Digital),
		WithTitle("RPM"),
		WithUnit("x1000"),
		WithRange(0, 8),
		WithAnimation(false, 2),
		WithTicks(8, 1),
		WithNeedle(2, 0),
	)
	assert.Equal(t, Semicircle, g.GaugeType())
	assert.Equal(t, Digital, g.GaugeStyle())
	assert.Equal(t, "RPM", g.Title())
	assert.Equal(t, "x1000", g.Unit())
	assert.Equal(t, 8.0, g.Max())
	assert.False(t, g.AnimationEnabled())
	assert.Equal(t, 2.0, g.AnimationSpeed())
	assert.Equal(t, 8, g.MajorTickCount())
	assert.Equal(t, 1, g.MinorTickCount())
	assert.Equal(t, 1.0, g.NeedleLength())
	assert.Equal(t, 1.0, g.NeedleWidth())

	bad := New(WithRange(5, 5))
	assert.Equal(t, 0.0, bad.Min())
	assert.Equal(t, 100.0, bad.Max())
}

func TestSetValueClamps(t *testing.T) {
	g := New()
	g.SetValue(150)
	assert.Equal(t, 100.0, g.Target())
	assert.Equal(t, 0.0, g.Value(), "current moves only through the animator")
	g.SetValue(-3)
	assert.Equal(t, 0.0, g.Target())
}

func TestAnimationConvergesMonotonically(t *testing.T) {
	for _, target := range []float64{0, 0.0005, 37.5, 100, 250, -40} {
		g := New()
		g.SetValue(target)
		want := clamp(target, 0, 100)
		prev := g.Value()
		for i := 0; i < 1000 && g.Value() != want; i++ {
			g.Update()
			v := g.Value()
			assert.GreaterOrEqual(t, v, prev, "target %v", target)
			assert.LessOrEqual(t, v, want, "overshoot at target %v", target)
			prev = v
		}
		assert.Equal(t, want, g.Value(), "target %v", target)
		assert.False(t, g.Animating())
	}
}

func TestAnimationDownward(t *testing.T) {
	g := New(WithAnimation(false, 5))
	g.SetValue(90)
	g.Update()
	g.SetAnimationEnabled(true)
	g.SetValue(10)
	prev := g.Value()
	n := settle(g, 1000)
	assert.Less(t, n, 1000)
	assert.Equal(t, 10.0, g.Value())
	assert.LessOrEqual(t, g.Value(), prev)
}

func TestAnimationDisabledJumps(t *testing.T) {
	g := New(WithAnimation(false, 5))
	g.SetValue(42)
	g.Update()
	assert.Equal(t, 42.0, g.Value())
	assert.False(t, g.Animating())
}

func TestAnimationStep(t *testing.T) {
	g := New()
	g.SetValue(60)
	g.Update()
	// speed 5, one 1/60 frame: factor 5/60
	assert.InDelta(t, 60*5.0/60.0, g.Value(), 1e-9)
	assert.True(t, g.Animating())
}

func TestAdvanceElapsed(t *testing.T) {
	g := New()
	g.SetValue(100)
	g.Advance(100 * time.Millisecond)
	assert.InDelta(t, 50.0, g.Value(), 1e-9)

	// a long frame covers the whole distance and no more
	g.Advance(time.Second)
	assert.Equal(t, 100.0, g.Value())

	g.SetValue(0)
	g.Advance(-time.Second)
	assert.Equal(t, 100.0, g.Value(), "negative elapsed time is ignored")
}

func TestZeroSpeedFreezes(t *testing.T) {
	g := New()
	g.SetAnimationSpeed(-1)
	assert.Equal(t, 0.0, g.AnimationSpeed())
	g.SetValue(50)
	g.Update()
	assert.Equal(t, 0.0, g.Value())
	assert.True(t, g.Animating())
}

func TestSetMinPullsValuesUp(t *testing.T) {
	g := New(WithAnimation(false, 0))
	g.SetValue(10)
	g.Update()
	require.NoError(t, g.SetMinValue(30))
	assert.Equal(t, 30.0, g.Value())
	assert.Equal(t, 30.0, g.Target())

	a := New()
	a.SetValue(5)
	require.NoError(t, a.SetMinValue(20))
	assert.Equal(t, 20.0, a.Value(), "no animation lag on reclamp")
}

func TestSetMaxPullsValuesDown(t *testing.T) {
	g := New(WithAnimation(false, 0))
	g.SetValue(90)
	g.Update()
	require.NoError(t, g.SetMaxValue(50))
	assert.Equal(t, 50.0, g.Value())
	assert.Equal(t, 50.0, g.Target())
}

func TestInvalidRange(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.SetValueRange(10, 10), ErrInvalidRange)
	assert.ErrorIs(t, g.SetValueRange(10, 0), ErrInvalidRange)
	assert.ErrorIs(t, g.SetMinValue(100), ErrInvalidRange)
	assert.ErrorIs(t, g.SetMaxValue(-1), ErrInvalidRange)
	assert.Equal(t, 0.0, g.Min())
	assert.Equal(t, 100.0, g.Max())
}

func TestNaNIsRejected(t *testing.T) {
	g := New(WithAnimation(false, 0))
	g.SetValue(40)
	g.Update()

	nan := math.NaN()
	assert.ErrorIs(t, g.SetMinValue(nan), ErrInvalidRange)
	assert.ErrorIs(t, g.SetMaxValue(nan), ErrInvalidRange)
	assert.ErrorIs(t, g.SetValueRange(nan, 10), ErrInvalidRange)
	assert.ErrorIs(t, g.SetValueRange(0, nan), ErrInvalidRange)
	assert.Equal(t, 0.0, g.Min())
	assert.Equal(t, 100.0, g.Max())

	g.SetValue(nan)
	g.Update()
	assert.Equal(t, 40.0, g.Target())
	assert.Equal(t, "40.0", g.ValueText())

	a := New()
	a.SetAnimationSpeed(nan)
	assert.Equal(t, 0.0, a.AnimationSpeed())
	a.SetValue(50)
	a.Update()
	assert.Equal(t, 0.0, a.Value())

	n := New()
	n.SetNeedleLength(nan)
	assert.Equal(t, 0.1, n.NeedleLength())
}

func TestUnrepresentableSpanIsRejected(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.SetValueRange(-math.MaxFloat64, math.MaxFloat64), ErrInvalidRange)
	assert.ErrorIs(t, g.SetValueRange(0, math.Inf(1)), ErrInvalidRange)
	assert.ErrorIs(t, g.SetMinValue(math.Inf(-1)), ErrInvalidRange)
	assert.ErrorIs(t, g.SetMaxValue(math.Inf(1)), ErrInvalidRange)
	require.NoError(t, g.SetValueRange(-1e300, 1e300))
	for _, v := range g.TickValues(true) {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%v", v)
	}
}

func TestUpdateStepsExactlyOneSixtieth(t *testing.T) {
	g := New()
	g.SetValue(60)
	for i := 0; i < 3; i++ {
		g.Update()
	}
	// three frames at speed 5 leave (1-5/60)^3 of the distance
	want := 60 * (1 - math.Pow(1-5.0/60, 3))
	assert.InDelta(t, want, g.Value(), 1e-12)
}

func TestSetValueRangeReclamps(t *testing.T) {
	g := New(WithAnimation(false, 0))
	g.SetValue(80)
	g.Update()
	require.NoError(t, g.SetValueRange(-10, 20))
	assert.Equal(t, 20.0, g.Value())
	assert.Equal(t, 20.0, g.Target())
	require.NoError(t, g.SetValueRange(40, 60))
	assert.Equal(t, 40.0, g.Value())
}

func TestZonePrecedence(t *testing.T) {
	g := New()
	assert.True(t, IsNoZone(g.ZoneColor(50)))

	g.SetSafeZone(0, 100)
	g.SetWarningZone(40, 100)
	g.SetDangerZone(45, 55)
	assert.Equal(t, g.DangerZoneColor(), g.ZoneColor(50))
	assert.Equal(t, g.WarningZoneColor(), g.ZoneColor(42))
	assert.Equal(t, g.SafeZoneColor(), g.ZoneColor(10))
	assert.Equal(t, g.DangerZoneColor(), g.ZoneColor(45), "bounds are inclusive")
	assert.Equal(t, g.DangerZoneColor(), g.ZoneColor(55), "bounds are inclusive")
}

func TestClearZonesKeepsRanges(t *testing.T) {
	g := New()
	g.SetDangerZone(70, 90)
	g.ClearZones()
	assert.True(t, IsNoZone(g.ZoneColor(80)))
	z := g.DangerZone()
	assert.False(t, z.Enabled)
	assert.Equal(t, 70.0, z.Start)
	assert.Equal(t, 90.0, z.End)
}

func TestZoneColorSetters(t *testing.T) {
	g := New()
	blue := color.NRGBA{B: 0xFF, A: 0xFF}
	g.SetWarningZoneColor(blue)
	g.SetWarningZone(0, 10)
	assert.Equal(t, blue, g.ZoneColor(5))
	g.SetWarningZoneColor(nil)
	assert.Equal(t, DefaultWarningColor, g.ZoneColor(5))
}

func TestValueToAngle(t *testing.T) {
	g := New()
	assert.Equal(t, 225.0, g.ValueToAngle(0))
	assert.Equal(t, 360.0, g.ValueToAngle(50))
	assert.Equal(t, 495.0, g.ValueToAngle(100))
	assert.Equal(t, 495.0, g.ValueToAngle(1000), "out of range values clamp")

	g.SetGaugeType(Semicircle)
	assert.Equal(t, 180.0, g.ValueToAngle(0))
	assert.Equal(t, 270.0, g.ValueToAngle(50))
	assert.Equal(t, 360.0, g.ValueToAngle(100))
}

func TestAngleRoundTrip(t *testing.T) {
	for _, typ := range []Type{Circular, Semicircle} {
		g := New(WithType(typ), WithRange(-20, 140))
		for v := -20.0; v <= 140; v += 7.3 {
			assert.InDelta(t, v, g.AngleToValue(g.ValueToAngle(v)), 1e-9, "%s %v", typ, v)
		}
		assert.Equal(t, -20.0, g.AngleToValue(0))
		assert.Equal(t, 140.0, g.AngleToValue(1000))
	}
}

func TestFillRatio(t *testing.T) {
	g := New(WithAnimation(false, 0), WithRange(50, 150))
	g.SetValue(75)
	g.Update()
	assert.Equal(t, 0.25, g.FillRatio())
}

func TestMajorTicks(t *testing.T) {
	g := New()
	assert.Equal(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, g.TickValues(true))
}

func TestMinorTicks(t *testing.T) {
	g := New()
	minor := g.TickValues(false)
	require.Len(t, minor, 50)
	majors := g.TickValues(true)
	for i := 0; i < 10; i++ {
		lo, hi := majors[i], majors[i+1]
		in := 0
		for _, v := range minor {
			if v > lo && v < hi {
				in++
			}
		}
		assert.Equal(t, 5, in, "interval %d", i)
	}
	for _, v := range minor {
		assert.Less(t, v, 100.0)
		assert.NotEqual(t, 0.0, math.Mod(v, 10), "minor tick %v sits on a major tick", v)
	}
}

func TestTickCountClamps(t *testing.T) {
	g := New()
	g.SetMajorTickCount(1)
	assert.Equal(t, 2, g.MajorTickCount())
	g.SetMinorTickCount(-4)
	assert.Equal(t, 0, g.MinorTickCount())
	assert.Empty(t, g.TickValues(false))
	assert.Equal(t, []float64{0, 50, 100}, g.TickValues(true))
}

func TestNeedleClamps(t *testing.T) {
	g := New()
	g.SetNeedleLength(0)
	assert.Equal(t, 0.1, g.NeedleLength())
	g.SetNeedleLength(3)
	assert.Equal(t, 1.0, g.NeedleLength())
	g.SetNeedleWidth(0.2)
	assert.Equal(t, 1.0, g.NeedleWidth())
}

func TestValueText(t *testing.T) {
	g := New(WithAnimation(false, 0))
	g.SetValue(42.26)
	g.Update()
	assert.Equal(t, "42.3", g.ValueText())
	g.SetUnit("°C")
	assert.Equal(t, "42.3 °C", g.ValueText())
	assert.Equal(t, "7.0", FormatValue(7))
}

func TestParseType(t *testing.T) {
	for _, n := range Types() {
		typ, ok := ParseType(n)
		require.True(t, ok, n)
		assert.Equal(t, n, typ.String())
	}
	typ, ok := ParseType("Semicircle")
	assert.True(t, ok)
	assert.Equal(t, Semicircle, typ)
	_, ok = ParseType("pie")
	assert.False(t, ok)
	assert.Equal(t, Circular, LinearVertical.Next())
}

func TestParseStyle(t *testing.T) {
	s, ok := ParseStyle("Classic")
	assert.True(t, ok)
	assert.Equal(t, Classic, s)
	_, ok = ParseStyle("baroque")
	assert.False(t, ok)
}
