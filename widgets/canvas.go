package widgets

import (
	"image"
	"image/color"
	"math"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/drawille"
	"github.com/mattn/go-runewidth"

	"github.com/xxxserxxx/gogauge/gauge"
)

// Canvas lays a pixel grid over a rectangle of terminal cells and draws gauges
// into it with braille dots. Every cell is CellWidth x CellHeight pixels and
// holds 2x4 dots, so a dot is a 3x3 pixel square and circles stay round.
//
// Each dot remembers the last colour painted on it. When flushed, a cell
// shows its most recently painted dots in the foreground colour over the
// cell's most common other colour.
type Canvas struct {
	area  image.Rectangle
	dots  []dot
	seq   uint32
	color termui.Color
	blank bool
	width float64
	texts []queuedText
	pal   *palette
}

const (
	CellWidth  = 6
	CellHeight = 12
	dotSize    = 3
	dotsX      = 2
	dotsY      = 4
)

type dot struct {
	color termui.Color
	seq   uint32
}

type queuedText struct {
	s     string
	x, y  float64
	color termui.Color
}

var (
	_ gauge.Renderer    = (*Canvas)(nil)
	_ gauge.LineWidther = (*Canvas)(nil)
)

func NewCanvas() *Canvas {
	return &Canvas{pal: newPalette(), width: 1}
}

// Reset clears the canvas and resizes it to area, in terminal cells.
func (c *Canvas) Reset(area image.Rectangle) {
	c.area = area.Canon()
	n := c.area.Dx() * dotsX * c.area.Dy() * dotsY
	if cap(c.dots) >= n {
		c.dots = c.dots[:n]
		for i := range c.dots {
			c.dots[i] = dot{}
		}
	} else {
		c.dots = make([]dot, n)
	}
	c.texts = c.texts[:0]
	c.seq = 0
	c.width = 1
}

// Bounds returns the canvas area in pixels, as passed to gauge.Render.
func (c *Canvas) Bounds() (x, y, w, h int) {
	return c.area.Min.X * CellWidth, c.area.Min.Y * CellHeight, c.area.Dx() * CellWidth, c.area.Dy() * CellHeight
}

func (c *Canvas) SetColor(col color.Color) {
	idx, ok := c.pal.Index(col)
	c.color, c.blank = idx, !ok
}

func (c *Canvas) SetLineWidth(w float64) {
	if w < 1 {
		w = 1
	}
	c.width = w
}

// set paints the dot at absolute dot coordinates (dx, dy).
func (c *Canvas) set(dx, dy int) {
	if c.blank {
		return
	}
	lx, ly := dx-c.area.Min.X*dotsX, dy-c.area.Min.Y*dotsY
	w := c.area.Dx() * dotsX
	if lx < 0 || ly < 0 || lx >= w || ly >= c.area.Dy()*dotsY {
		return
	}
	c.seq++
	c.dots[ly*w+lx] = dot{color: c.color, seq: c.seq}
}

func toDot(p float64) int {
	return int(math.Floor(p / dotSize))
}

// dotCenter returns the pixel centre of dot d.
func dotCenter(d int) float64 {
	return float64(d)*dotSize + dotSize/2.0
}

func (c *Canvas) DrawRectangle(x, y, w, h float64, filled bool) {
	if !filled {
		c.line(x, y, x+w, y)
		c.line(x+w, y, x+w, y+h)
		c.line(x+w, y+h, x, y+h)
		c.line(x, y+h, x, y)
		return
	}
	for dy := toDot(y); dotCenter(dy) < y+h; dy++ {
		if dotCenter(dy) < y {
			continue
		}
		for dx := toDot(x); dotCenter(dx) < x+w; dx++ {
			if dotCenter(dx) >= x {
				c.set(dx, dy)
			}
		}
	}
}

func (c *Canvas) DrawCircle(cx, cy, r float64, filled bool, segments int) {
	if filled {
		c.fillWedge(cx, cy, r, 0, 360)
		return
	}
	c.polyArc(cx, cy, r, 0, 360, segments)
}

func (c *Canvas) DrawArc(cx, cy, r, startDeg, endDeg float64, filled bool, segments int) {
	if filled {
		c.fillWedge(cx, cy, r, startDeg, endDeg)
		return
	}
	c.polyArc(cx, cy, r, startDeg, endDeg, segments)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	n := int(math.Round(c.width / dotSize))
	if n <= 1 {
		c.line(x1, y1, x2, y2)
		return
	}
	// parallel strokes one dot apart along the normal
	l := math.Hypot(x2-x1, y2-y1)
	if l == 0 {
		c.line(x1, y1, x2, y2)
		return
	}
	nx, ny := -(y2-y1)/l*dotSize, (x2-x1)/l*dotSize
	for k := -(n - 1) / 2; k <= n/2; k++ {
		ox, oy := nx*float64(k), ny*float64(k)
		c.line(x1+ox, y1+oy, x2+ox, y2+oy)
	}
}

// line plots a one-dot-wide Bresenham line.
func (c *Canvas) line(x1, y1, x2, y2 float64) {
	x0, y0, xe, ye := toDot(x1), toDot(y1), toDot(x2), toDot(y2)
	dx, dy := absInt(xe-x0), -absInt(ye-y0)
	sx, sy := 1, 1
	if x0 > xe {
		sx = -1
	}
	if y0 > ye {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fillWedge sets every dot whose centre is within r of (cx, cy) and whose
// angle lies in [start, end].
func (c *Canvas) fillWedge(cx, cy, r, start, end float64) {
	sweep := end - start
	if sweep < 0 || r <= 0 {
		return
	}
	full := sweep >= 360
	for dy := toDot(cy - r); dy <= toDot(cy+r); dy++ {
		py := dotCenter(dy) - cy
		for dx := toDot(cx - r); dx <= toDot(cx+r); dx++ {
			px := dotCenter(dx) - cx
			if px*px+py*py > r*r {
				continue
			}
			if !full {
				a := math.Atan2(py, px) * 180 / math.Pi
				if math.Mod(a-start+720, 360) > sweep {
					continue
				}
			}
			c.set(dx, dy)
		}
	}
}

func (c *Canvas) polyArc(cx, cy, r, start, end float64, segments int) {
	if segments < 8 {
		segments = 8
	}
	step := (end - start) / float64(segments)
	px, py := polar(cx, cy, r, start)
	for i := 1; i <= segments; i++ {
		x, y := polar(cx, cy, r, start+step*float64(i))
		c.line(px, py, x, y)
		px, py = x, y
	}
}

func polar(cx, cy, r, deg float64) (float64, float64) {
	s, co := math.Sincos(deg * math.Pi / 180)
	return cx + r*co, cy + r*s
}

// DrawText queues text for Flush. The baseline at y selects the cell row
// the text is written on.
func (c *Canvas) DrawText(text string, x, y float64, _ gauge.FontSize) {
	if c.blank {
		return
	}
	c.texts = append(c.texts, queuedText{s: text, x: x, y: y, color: c.color})
}

// Flush writes the dots and then the queued text into buf.
func (c *Canvas) Flush(buf *termui.Buffer) {
	w := c.area.Dx() * dotsX
	bases := make(map[image.Point]termui.Color)
	for cy := 0; cy < c.area.Dy(); cy++ {
		for cx := 0; cx < c.area.Dx(); cx++ {
			var cell [dotsY][dotsX]dot
			for j := 0; j < dotsY; j++ {
				for i := 0; i < dotsX; i++ {
					cell[j][i] = c.dots[(cy*dotsY+j)*w+cx*dotsX+i]
				}
			}
			r, fg, bg, ok := composeCell(cell)
			if !ok {
				continue
			}
			p := image.Pt(c.area.Min.X+cx, c.area.Min.Y+cy)
			buf.SetCell(termui.NewCell(r, termui.NewStyle(fg, bg)), p)
			if bg != termui.ColorClear {
				bases[p] = bg
			} else {
				bases[p] = fg
			}
		}
	}
	for _, t := range c.texts {
		row := int(math.Floor((t.y - CellHeight/2) / CellHeight))
		col := int(math.Floor(t.x / CellWidth))
		if row < c.area.Min.Y {
			row = c.area.Min.Y
		}
		if row >= c.area.Max.Y {
			continue
		}
		if col < c.area.Min.X {
			col = c.area.Min.X
		}
		room := c.area.Max.X - col
		if room <= 0 {
			continue
		}
		s := t.s
		if runewidth.StringWidth(s) > room {
			s = runewidth.Truncate(s, room, "")
		}
		x := col
		for _, ch := range s {
			p := image.Pt(x, row)
			bg, ok := bases[p]
			if !ok {
				bg = termui.ColorClear
			}
			buf.SetCell(termui.NewCell(ch, termui.NewStyle(t.color, bg)), p)
			x += runewidth.RuneWidth(ch)
		}
	}
}

// composeCell turns up to eight coloured dots into one braille rune. The
// foreground is the colour painted last; the background is the most common
// remaining colour.
func composeCell(cell [dotsY][dotsX]dot) (rune, termui.Color, termui.Color, bool) {
	var last dot
	counts := make(map[termui.Color]int, 2)
	for _, row := range cell {
		for _, d := range row {
			if d.seq == 0 {
				continue
			}
			if d.seq > last.seq {
				last = d
			}
			counts[d.color]++
		}
	}
	if last.seq == 0 {
		return 0, termui.ColorClear, termui.ColorClear, false
	}
	bg, best := termui.ColorClear, 0
	for col, n := range counts {
		if col != last.color && (n > best || n == best && col < bg) {
			bg, best = col, n
		}
	}
	var r rune
	for j, row := range cell {
		for i, d := range row {
			if d.seq != 0 && d.color == last.color {
				r |= drawille.BRAILLE[j][i]
			}
		}
	}
	return drawille.BRAILLE_OFFSET + r, last.color, bg, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
