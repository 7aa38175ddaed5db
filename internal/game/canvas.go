package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/odas-hero/internal/particles"
)

type line struct{ x0, y0, x1, y1 float64 }

type disc struct{ x, y, r float64 }

// Canvas is an ebiten backed drawing surface with a canvas-like immediate
// mode context. Path coordinates are logical pixels; the transform maps them
// onto the physical backing image.
type Canvas struct {
	image *ebiten.Image

	width, height float64
	scale         float64

	transform ebiten.GeoM
	cursor    [2]float64
	lines     []line
	discs     []disc

	strokeColor color.Color
	fillColor   color.Color
	lineWidth   float64
}

func NewCanvas() *Canvas {
	return &Canvas{
		scale:       1,
		strokeColor: color.Black,
		fillColor:   color.Black,
		lineWidth:   1,
	}
}

// SetViewport records the displayed size and device scale factor reported
// by the host window.
func (c *Canvas) SetViewport(width, height, scale float64) {
	c.width, c.height, c.scale = width, height, scale
}

func (c *Canvas) Size() (float64, float64) { return c.width, c.height }

func (c *Canvas) DeviceScaleFactor() float64 { return c.scale }

func (c *Canvas) SetBackingSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if c.image != nil {
		if b := c.image.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
}

func (c *Canvas) Context() particles.Context { return c }

// Image is the backing store, nil until the first SetBackingSize.
func (c *Canvas) Image() *ebiten.Image { return c.image }

func (c *Canvas) SetTransform(a, b, cc, d, e, f float64) {
	c.transform.Reset()
	c.transform.SetElement(0, 0, a)
	c.transform.SetElement(1, 0, b)
	c.transform.SetElement(0, 1, cc)
	c.transform.SetElement(1, 1, d)
	c.transform.SetElement(0, 2, e)
	c.transform.SetElement(1, 2, f)
}

func (c *Canvas) ClearRect(x, y, width, height float64) {
	if c.image == nil {
		return
	}
	r := c.deviceRect(x, y, width, height).Intersect(c.image.Bounds())
	switch {
	case r.Empty():
	case r == c.image.Bounds():
		c.image.Clear()
	default:
		c.image.SubImage(r).(*ebiten.Image).Clear()
	}
}

// deviceRect maps a logical rectangle to the smallest covering rectangle of
// backing-store pixels.
func (c *Canvas) deviceRect(x, y, width, height float64) image.Rectangle {
	x0, y0 := c.transform.Apply(x, y)
	x1, y1 := c.transform.Apply(x+width, y+height)
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

func (c *Canvas) BeginPath() {
	c.lines = c.lines[:0]
	c.discs = c.discs[:0]
}

func (c *Canvas) MoveTo(x, y float64) {
	c.cursor = [2]float64{x, y}
}

func (c *Canvas) LineTo(x, y float64) {
	c.lines = append(c.lines, line{c.cursor[0], c.cursor[1], x, y})
	c.cursor = [2]float64{x, y}
}

// Arc adds a circle to the path when it spans a full turn. Partial arcs are
// approximated by chords so they can still be stroked.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	if math.Abs(sweep) >= 2*math.Pi {
		c.discs = append(c.discs, disc{x, y, radius})
		c.cursor = [2]float64{x + radius*math.Cos(endAngle), y + radius*math.Sin(endAngle)}
		return
	}

	const chords = 16
	c.MoveTo(x+radius*math.Cos(startAngle), y+radius*math.Sin(startAngle))
	for i := 1; i <= chords; i++ {
		a := startAngle + sweep*float64(i)/chords
		c.LineTo(x+radius*math.Cos(a), y+radius*math.Sin(a))
	}
}

func (c *Canvas) SetStrokeColor(clr color.Color) { c.strokeColor = clr }
func (c *Canvas) SetFillColor(clr color.Color) { c.fillColor = clr }
func (c *Canvas) SetLineWidth(w float64) { c.lineWidth = w }

func (c *Canvas) Stroke() {
	if c.image == nil {
		return
	}
	w := float32(c.lineWidth * c.unitScale())
	for _, l := range c.lines {
		x0, y0 := c.transform.Apply(l.x0, l.y0)
		x1, y1 := c.transform.Apply(l.x1, l.y1)
		vector.StrokeLine(c.image, float32(x0), float32(y0), float32(x1), float32(y1), w, c.strokeColor, true)
	}
}

func (c *Canvas) Fill() {
	if c.image == nil {
		return
	}
	s := c.unitScale()
	for _, d := range c.discs {
		x, y := c.transform.Apply(d.x, d.y)
		vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(d.r*s), c.fillColor, true)
	}
}

// unitScale is how long a logical unit is after the transform.
func (c *Canvas) unitScale() float64 {
	a, b := c.transform.Element(0, 0), c.transform.Element(1, 0)
	return math.Hypot(a, b)
}
