package gauge

import "image/color"

// Zone is a coloured value band. Ranges of different zones may overlap.
type Zone struct {
	Start   float64
	End     float64
	Color   color.Color
	Enabled bool
}

// Contains reports whether v lies in [Start, End] and the zone is enabled.
func (z Zone) Contains(v float64) bool {
	return z.Enabled && v >= z.Start && v <= z.End
}

// NoZone is what ZoneColor returns for a value outside every enabled zone.
var NoZone color.Color = color.NRGBA{}

// IsNoZone reports whether c is fully transparent.
func IsNoZone(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// SetDangerZone, SetWarningZone and SetSafeZone set a zone's range and
// enable it.
func (g *Gauge) SetDangerZone(start, end float64) {
	g.danger.Start, g.danger.End, g.danger.Enabled = start, end, true
}

func (g *Gauge) SetWarningZone(start, end float64) {
	g.warning.Start, g.warning.End, g.warning.Enabled = start, end, true
}

func (g *Gauge) SetSafeZone(start, end float64) {
	g.safe.Start, g.safe.End, g.safe.Enabled = start, end, true
}

// ClearZones disables every zone; ranges and colours are kept.
func (g *Gauge) ClearZones() {
	g.danger.Enabled = false
	g.warning.Enabled = false
	g.safe.Enabled = false
}

// Zone colour setters work while the zone is disabled. nil restores the
// default colour.
func (g *Gauge) SetDangerZoneColor(c color.Color) {
	g.danger.Color = orDefault(c, DefaultDangerColor)
}
func (g *Gauge) SetWarningZoneColor(c color.Color) {
	g.warning.Color = orDefault(c, DefaultWarningColor)
}
func (g *Gauge) SetSafeZoneColor(c color.Color) {
	g.safe.Color = orDefault(c, DefaultSafeColor)
}

func (g *Gauge) DangerZoneColor() color.Color  { return g.danger.Color }
func (g *Gauge) WarningZoneColor() color.Color { return g.warning.Color }
func (g *Gauge) SafeZoneColor() color.Color    { return g.safe.Color }

// DangerZone, WarningZone and SafeZone return copies of the zones.
func (g *Gauge) DangerZone() Zone  { return g.danger }
func (g *Gauge) WarningZone() Zone { return g.warning }
func (g *Gauge) SafeZone() Zone    { return g.safe }

// ZoneColor returns the colour of the zone holding v. Danger wins over
// warning, which wins over safe.
func (g *Gauge) ZoneColor(v float64) color.Color {
	switch {
	case g.danger.Contains(v):
		return g.danger.Color
	case g.warning.Contains(v):
		return g.warning.Color
	case g.safe.Contains(v):
		return g.safe.Color
	}
	return NoZone
}

// zones returns the enabled zones in paint order, so that the zone with
// the highest precedence is painted last.
func (g *Gauge) zones() []Zone {
	zs := make([]Zone, 0, 3)
	for _, z := range []Zone{g.safe, g.warning, g.danger} {
		if z.Enabled {
			zs = append(zs, z)
		}
	}
	return zs
}
