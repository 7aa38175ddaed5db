package particles

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/iburimskiy/odas-hero/internal/config"
	"github.com/iburimskiy/odas-hero/internal/frame"
)

// MockSurface is a fixed-size surface for tests.
type MockSurface struct {
	width, height float64
	ratio         float64
	backingW      int
	backingH      int
	ctx           *RecordingContext
	noContext     bool
}

func NewMockSurface(w, h, ratio float64) *MockSurface {
	return &MockSurface{width: w, height: h, ratio: ratio, ctx: &RecordingContext{}}
}

func (m *MockSurface) Size() (float64, float64) { return m.width, m.height }
func (m *MockSurface) DeviceScaleFactor() float64 { return m.ratio }
func (m *MockSurface) SetBackingSize(w, h int) { m.backingW, m.backingH = w, h }

func (m *MockSurface) Context() Context {
	if m.noContext {
		return nil
	}
	return m.ctx
}

type segment struct{ x0, y0, x1, y1 float64 }

// RecordingContext keeps the calls that matter for assertions. Clearing
// resets the per-frame records.
type RecordingContext struct {
	transform [6]float64
	clears    int
	strokes   int
	fills     int
	arcs      int
	segments  []segment
	lastMove  [2]float64
	strokeClr color.Color
	fillClr   color.Color
	lineWidth float64
}

func (r *RecordingContext) SetTransform(a, b, c, d, e, f float64) {
	r.transform = [6]float64{a, b, c, d, e, f}
}

func (r *RecordingContext) ClearRect(x, y, w, h float64) {
	r.clears++
	r.segments = r.segments[:0]
	r.arcs = 0
}

func (r *RecordingContext) BeginPath() {}
func (r *RecordingContext) MoveTo(x, y float64) { r.lastMove = [2]float64{x, y} }

func (r *RecordingContext) LineTo(x, y float64) {
	r.segments = append(r.segments, segment{r.lastMove[0], r.lastMove[1], x, y})
}

func (r *RecordingContext) Arc(x, y, radius, start, end float64) { r.arcs++ }
func (r *RecordingContext) SetStrokeColor(c color.Color) { r.strokeClr = c }
func (r *RecordingContext) SetFillColor(c color.Color) { r.fillClr = c }
func (r *RecordingContext) SetLineWidth(w float64) { r.lineWidth = w }
func (r *RecordingContext) Stroke() { r.strokes++ }
func (r *RecordingContext) Fill() { r.fills++ }

func newTestAnimator(t *testing.T, opts ...Option) (*Animator, *frame.Queue) {
	t.Helper()
	q := frame.NewQueue()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return New(q, opts...), q
}

func testField() config.Field {
	return config.DefaultField()
}
