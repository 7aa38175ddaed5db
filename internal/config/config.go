package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Hero field defaults
	DefaultDensity      = 0.00008
	DefaultMaxVelocity  = 0.4
	DefaultLinkDistance = 140
	DefaultPointRadius  = 1.6
	DefaultLineColor    = "rgba(254, 0, 27, 0.15)"
	DefaultPointColor   = "rgba(254, 0, 27, 0.32)"

	// Contact form
	DefaultRecipient = "info@odasagency.com"

	// Navigation observer band, as fractions of the viewport height
	NavTopMargin    = 0.40
	NavBottomMargin = 0.50
	NavThreshold    = 0.2

	ReducedMotionEnv = "PREFERS_REDUCED_MOTION"
)

// Field holds the tunables of the particle backdrop. It is read-only once
// handed to an animator.
type Field struct {
	Density      float64 // particles per squared pixel
	MaxVelocity  float64
	LinkDistance float64
	PointRadius  float64
	LineColor    color.NRGBA
	PointColor   color.NRGBA
}

// DefaultField returns the faint red network used on the landing page.
func DefaultField() Field {
	return Field{
		Density:      DefaultDensity,
		MaxVelocity:  DefaultMaxVelocity,
		LinkDistance: DefaultLinkDistance,
		PointRadius:  DefaultPointRadius,
		LineColor:    mustColor(DefaultLineColor),
		PointColor:   mustColor(DefaultPointColor),
	}
}

func (f Field) Validate() error {
	switch {
	case f.Density <= 0:
		return fmt.Errorf("density must be positive, got %v", f.Density)
	case f.MaxVelocity < 0:
		return fmt.Errorf("max velocity must not be negative, got %v", f.MaxVelocity)
	case f.LinkDistance <= 0:
		return fmt.Errorf("link distance must be positive, got %v", f.LinkDistance)
	case f.PointRadius <= 0:
		return fmt.Errorf("point radius must be positive, got %v", f.PointRadius)
	}
	return nil
}

// App is everything the binary reads at startup.
type App struct {
	Field Field

	ReducedMotion   bool
	Recipient       string
	ContactEndpoint string
	Debug           bool
}

func Default() App {
	return App{
		Field:     DefaultField(),
		Recipient: DefaultRecipient,
	}
}

// BindFlags registers the command line options on fs. The returned function
// must be called after fs.Parse to resolve colours and environment fallbacks.
func BindFlags(fs *flag.FlagSet, app *App) func() error {
	lineColor := DefaultLineColor
	pointColor := DefaultPointColor

	fs.Float64Var(&app.Field.Density, "density", app.Field.Density, "particles per squared pixel")
	fs.Float64Var(&app.Field.MaxVelocity, "max-velocity", app.Field.MaxVelocity, "maximum particle speed in pixels per frame")
	fs.Float64Var(&app.Field.LinkDistance, "link-distance", app.Field.LinkDistance, "distance under which two particles are linked")
	fs.Float64Var(&app.Field.PointRadius, "point-radius", app.Field.PointRadius, "particle radius")
	fs.StringVar(&lineColor, "line-color", lineColor, "link colour (rgba(), rgb() or #rrggbb)")
	fs.StringVar(&pointColor, "point-color", pointColor, "particle colour (rgba(), rgb() or #rrggbb)")
	fs.BoolVar(&app.ReducedMotion, "reduced-motion", app.ReducedMotion, "disable the animated background")
	fs.StringVar(&app.Recipient, "recipient", app.Recipient, "address the contact form mails to")
	fs.StringVar(&app.ContactEndpoint, "contact-endpoint", app.ContactEndpoint, "webhook URL for contact submissions (mail client when empty)")
	fs.BoolVar(&app.Debug, "debug", app.Debug, "write logs to stderr")

	return func() error {
		var err error
		if app.Field.LineColor, err = ParseColor(lineColor); err != nil {
			return fmt.Errorf("line-color: %w", err)
		}
		if app.Field.PointColor, err = ParseColor(pointColor); err != nil {
			return fmt.Errorf("point-color: %w", err)
		}
		if !app.ReducedMotion {
			app.ReducedMotion = envBool(ReducedMotionEnv)
		}
		if app.Recipient == "" && app.ContactEndpoint == "" {
			return errors.New("either recipient or contact-endpoint is required")
		}
		return app.Field.Validate()
	}
}

func envBool(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	if v == "reduce" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
