package particles

import (
	"image/color"

	"github.com/iburimskiy/odas-hero/internal/frame"
)

// Surface is the drawing area the field lives on.
type Surface interface {
	// Size is the displayed (logical) size of the surface.
	Size() (width, height float64)
	DeviceScaleFactor() float64
	// SetBackingSize sets the physical resolution of the backing store.
	SetBackingSize(width, height int)
	// Context returns nil when the surface cannot be drawn on.
	Context() Context
}

// Context is a 2D immediate-mode drawing context.
type Context interface {
	SetTransform(a, b, c, d, e, f float64)
	ClearRect(x, y, width, height float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	Stroke()
	Fill()
}

// Scheduler runs a callback before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) frame.Handle
	CancelFrame(h frame.Handle)
}

// Visibility reports page visibility changes.
type Visibility interface {
	Subscribe(fn func(hidden bool)) (unsubscribe func())
}
