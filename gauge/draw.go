package gauge

const (
	faceSegments = 64
	zoneSegments = 32
	zoneRadius   = 0.9
	centerDot    = 3
)

// Draw renders the gauge into the rectangle (x, y, w, h) and then advances
// the animation by one fixed frame.
func (g *Gauge) Draw(r Renderer, x, y, w, h int) {
	g.Render(r, x, y, w, h)
	g.Update()
}

// Render draws the gauge without touching the animation. Hosts that track
// real elapsed time call Advance themselves and then Render.
func (g *Gauge) Render(r Renderer, x, y, w, h int) {
	g.layout(x, y, w, h)
	switch g.gaugeType {
	case LinearHorizontal, LinearVertical:
		g.drawLinear(r)
	default:
		g.drawRadial(r)
	}
}

func (g *Gauge) drawRadial(r Renderer) {
	g.drawBackground(r)
	g.drawZones(r)
	g.drawTicks(r)
	if g.showNeedle {
		g.drawNeedle(r)
	}
	if g.showValue {
		g.drawValueText(r)
	}
	if g.showTitle {
		g.drawTitle(r)
	}
}

func (g *Gauge) drawLinear(r Renderer) {
	gm := g.geom
	x, y, w, h := float64(gm.X), float64(gm.Y), float64(gm.W), float64(gm.H)

	r.SetColor(g.background)
	r.DrawRectangle(x, y, w, h, true)

	g.drawZones(r)

	c := g.ZoneColor(g.current)
	if IsNoZone(c) {
		c = g.needle
	}
	r.SetColor(c)
	ratio := g.FillRatio()
	if g.gaugeType == LinearHorizontal {
		r.DrawRectangle(x, y, float64(int(w*ratio)), h, true)
	} else {
		bh := float64(int(h * ratio))
		r.DrawRectangle(x, y+h-bh, w, bh, true)
	}

	r.SetColor(g.tick)
	r.DrawRectangle(x, y, w, h, false)

	if g.showValue {
		g.drawValueText(r)
	}
	if g.showTitle {
		g.drawTitle(r)
	}
}

func (g *Gauge) drawBackground(r Renderer) {
	r.SetColor(g.background)
	gm := g.geom
	if g.gaugeType == Semicircle {
		r.DrawArc(gm.CX, gm.CY, gm.Radius, 180, 360, true, faceSegments)
		return
	}
	r.DrawCircle(gm.CX, gm.CY, gm.Radius, true, faceSegments)
}

func (g *Gauge) drawZones(r Renderer) {
	gm := g.geom
	x, y, w, h := float64(gm.X), float64(gm.Y), float64(gm.W), float64(gm.H)
	for _, z := range g.zones() {
		r.SetColor(z.Color)
		start, end := g.Ratio(z.Start), g.Ratio(z.End)
		switch g.gaugeType {
		case LinearHorizontal:
			r.DrawRectangle(x+float64(int(w*start)), y, float64(int(w*(end-start))), h, true)
		case LinearVertical:
			r.DrawRectangle(x, y+float64(int(h*(1-end))), w, float64(int(h*(end-start))), true)
		default:
			r.DrawArc(gm.CX, gm.CY, gm.Radius*zoneRadius,
				g.ValueToAngle(z.Start), g.ValueToAngle(z.End), true, zoneSegments)
		}
	}
}

func (g *Gauge) drawTicks(r Renderer) {
	if !g.gaugeType.Radial() {
		return
	}
	rad := g.geom.Radius
	r.SetColor(g.tick)
	for _, v := range g.TickValues(true) {
		a := g.ValueToAngle(v)
		x1, y1 := g.polar(a, rad*0.85)
		x2, y2 := g.polar(a, rad*0.95)
		r.DrawLine(x1, y1, x2, y2)
		if g.tickLabels {
			lx, ly := g.polar(a, rad*0.75)
			r.DrawText(FormatValue(v), lx-10, ly-5, FontSmall)
		}
	}
	for _, v := range g.TickValues(false) {
		a := g.ValueToAngle(v)
		x1, y1 := g.polar(a, rad*0.9)
		x2, y2 := g.polar(a, rad*0.95)
		r.DrawLine(x1, y1, x2, y2)
	}
}

func (g *Gauge) drawNeedle(r Renderer) {
	if !g.gaugeType.Radial() {
		return
	}
	gm := g.geom
	r.SetColor(g.needle)
	ex, ey := g.polar(g.ValueToAngle(g.current), gm.Radius*g.needleLength)
	lw, wide := r.(LineWidther)
	if wide {
		lw.SetLineWidth(g.needleWidth)
	}
	r.DrawLine(gm.CX, gm.CY, ex, ey)
	if wide {
		lw.SetLineWidth(1)
	}
	r.DrawCircle(gm.CX, gm.CY, centerDot, true, faceSegments)
}

func (g *Gauge) drawValueText(r Renderer) {
	r.SetColor(g.valueText)
	gm := g.geom
	var x, y float64
	switch g.gaugeType {
	case Semicircle:
		x, y = gm.CX-20, gm.CY-20
	case LinearHorizontal, LinearVertical:
		x, y = float64(gm.X)+float64(gm.W)*0.5-20, float64(gm.Y)+float64(gm.H)*0.5
	default:
		x, y = gm.CX-20, gm.CY+10
	}
	r.DrawText(g.ValueText(), x, y, FontMedium)
}

func (g *Gauge) drawTitle(r Renderer) {
	r.SetColor(g.titleColor)
	gm := g.geom
	var x, y float64
	if g.gaugeType.Radial() {
		x, y = gm.CX-halfTextWidth(g.title), float64(gm.Y)+15
	} else {
		x, y = float64(gm.X)+5, float64(gm.Y)-5
	}
	r.DrawText(g.title, x, y, FontSmall)
}
