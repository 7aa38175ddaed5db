package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor understands the CSS forms used by the site stylesheet:
// rgba(r, g, b, a), rgb(r, g, b) and #rrggbb / #rgb.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported colour %q", s)
}

func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseFunc(args string, want int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("bad channel %q", strings.TrimSpace(parts[i]))
		}
		ch[i] = uint8(v)
	}

	alpha := uint8(255)
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("bad alpha %q", strings.TrimSpace(parts[3]))
		}
		alpha = uint8(math.Round(a * 255))
	}

	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func mustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
