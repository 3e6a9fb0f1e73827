package gauge

// TickValues returns the major tick values (min to max inclusive) when
// major is true, otherwise the minor values between them. Minor values never
// reach max.
func (g *Gauge) TickValues(major bool) []float64 {
	span := g.max - g.min
	if major {
		rv := make([]float64, 0, g.majorTicks+1)
		for i := 0; i <= g.majorTicks; i++ {
			rv = append(rv, g.min+span*float64(i)/float64(g.majorTicks))
		}
		return rv
	}
	interval := span / float64(g.majorTicks)
	step := interval / float64(g.minorTicks+1)
	rv := make([]float64, 0, g.majorTicks*g.minorTicks)
	for i := 0; i < g.majorTicks; i++ {
		base := g.min + interval*float64(i)
		for j := 1; j <= g.minorTicks; j++ {
			if v := base + step*float64(j); v < g.max {
				rv = append(rv, v)
			}
		}
	}
	return rv
}

// SetMajorTickCount sets the number of major intervals; at least 2.
func (g *Gauge) SetMajorTickCount(n int) {
	if n < 2 {
		n = 2
	}
	g.majorTicks = n
}

// SetMinorTickCount sets the number of minor ticks per major interval.
func (g *Gauge) SetMinorTickCount(n int) {
	if n < 0 {
		n = 0
	}
	g.minorTicks = n
}

func (g *Gauge) MajorTickCount() int { return g.majorTicks }
func (g *Gauge) MinorTickCount() int { return g.minorTicks }

func (g *Gauge) SetShowTickLabels(show bool) { g.tickLabels = show }
func (g *Gauge) ShowTickLabels() bool        { return g.tickLabels }
