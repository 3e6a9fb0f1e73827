// Package raster draws gauges into an in-memory RGBA image, for writing
// snapshots to PNG.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/xxxserxxx/gogauge/gauge"
)

// minSegments keeps small circles from turning into visible polygons.
const minSegments = 16

// Canvas is an anti-aliased gauge.Renderer backed by an *image.RGBA. Every
// primitive is filled as a path with x/image/vector; strokes are quads of
// the current line width.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	src   *image.Uniform
	blank bool
	width float64
}

var (
	_ gauge.Renderer    = (*Canvas)(nil)
	_ gauge.LineWidther = (*Canvas)(nil)
)

func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		src:   image.NewUniform(color.Black),
		width: 1,
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with col and resets the line width.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.width = 1
}

func (c *Canvas) SetColor(col color.Color) {
	if col == nil {
		c.blank = true
		return
	}
	_, _, _, a := col.RGBA()
	c.blank = a == 0
	c.src = image.NewUniform(col)
}

func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	c.width = w
}

// fill paints the path accumulated in the rasterizer and starts a new one.
func (c *Canvas) fill() {
	if !c.blank {
		c.z.Draw(c.img, c.img.Bounds(), c.src, image.Point{})
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) moveTo(x, y float64) { c.z.MoveTo(float32(x), float32(y)) }
func (c *Canvas) lineTo(x, y float64) { c.z.LineTo(float32(x), float32(y)) }

func (c *Canvas) DrawRectangle(x, y, w, h float64, filled bool) {
	if !filled {
		c.DrawLine(x, y, x+w, y)
		c.DrawLine(x+w, y, x+w, y+h)
		c.DrawLine(x+w, y+h, x, y+h)
		c.DrawLine(x, y+h, x, y)
		return
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.moveTo(x, y)
	c.lineTo(x+w, y)
	c.lineTo(x+w, y+h)
	c.lineTo(x, y+h)
	c.z.ClosePath()
	c.fill()
}

func (c *Canvas) DrawCircle(cx, cy, r float64, filled bool, segments int) {
	c.DrawArc(cx, cy, r, 0, 360, filled, segments)
}

// DrawArc fills a pie wedge from the centre, or strokes the arc as a
// polyline.
func (c *Canvas) DrawArc(cx, cy, r, startDeg, endDeg float64, filled bool, segments int) {
	if r <= 0 || endDeg <= startDeg {
		return
	}
	if segments < minSegments {
		segments = minSegments
	}
	step := (endDeg - startDeg) / float64(segments)
	if filled {
		full := endDeg-startDeg >= 360
		if full {
			c.moveTo(polar(cx, cy, r, startDeg))
		} else {
			c.moveTo(cx, cy)
			c.lineTo(polar(cx, cy, r, startDeg))
		}
		for i := 1; i <= segments; i++ {
			c.lineTo(polar(cx, cy, r, startDeg+step*float64(i)))
		}
		c.z.ClosePath()
		c.fill()
		return
	}
	px, py := polar(cx, cy, r, startDeg)
	for i := 1; i <= segments; i++ {
		x, y := polar(cx, cy, r, startDeg+step*float64(i))
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// DrawLine strokes a quad of the current line width centred on the line.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	l := math.Hypot(x2-x1, y2-y1)
	hw := c.width / 2
	if l == 0 {
		c.DrawRectangle(x1-hw, y1-hw, c.width, c.width, true)
		return
	}
	nx, ny := -(y2-y1)/l*hw, (x2-x1)/l*hw
	c.moveTo(x1+nx, y1+ny)
	c.lineTo(x2+nx, y2+ny)
	c.lineTo(x2-nx, y2-ny)
	c.lineTo(x1-nx, y1-ny)
	c.z.ClosePath()
	c.fill()
}

// DrawText draws text with its baseline starting at (x, y).
func (c *Canvas) DrawText(text string, x, y float64, size gauge.FontSize) {
	if c.blank {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  c.src,
		Face: Face(size),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

// Face returns the bitmap face used for a text size.
func Face(size gauge.FontSize) font.Face {
	switch size {
	case gauge.FontSmall:
		return basicfont.Face7x13
	case gauge.FontLarge:
		return inconsolata.Bold8x16
	default:
		return inconsolata.Regular8x16
	}
}

func polar(cx, cy, r, deg float64) (float64, float64) {
	s, co := math.Sincos(deg * math.Pi / 180)
	return cx + r*co, cy + r*s
}

// Snapshot draws every gauge in host frames times, each time on a cleared
// w x h canvas, and returns the last image. Each frame advances the gauges'
// animations by one fixed step.
func Snapshot(w, h int, host *gauge.Host, frames int) *image.RGBA {
	c := NewCanvas(w, h)
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		c.Clear(color.Transparent)
		host.Frame(c)
	}
	return c.Image()
}

// WritePNG encodes img as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
