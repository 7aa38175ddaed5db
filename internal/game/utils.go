package game

import (
	"image/color"
)

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// withAlpha returns c with its alpha replaced, keeping the colour straight
// (non-premultiplied).
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// px converts a logical coordinate to a physical one.
func px(v, scale float64) int {
	return int(v * scale)
}
