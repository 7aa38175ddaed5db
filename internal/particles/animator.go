// Package particles animates the hero backdrop: a field of drifting points
// joined by faint lines whenever two of them come close.
package particles

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/odas-hero/internal/config"
	"github.com/iburimskiy/odas-hero/internal/frame"
)

const (
	// MinParticles is the floor applied to the density-derived count.
	MinParticles = 40
	// Overscan is how far past an edge a particle may drift before its
	// velocity on that axis is reflected.
	Overscan = 20
)

type Particle struct {
	X, Y   float64
	VX, VY float64
}

// Count returns the number of particles for a width x height viewport.
func Count(width, height, density float64) int {
	n := int(math.Floor(width * height * density))
	if n < MinParticles {
		return MinParticles
	}
	return n
}

// Animator owns one particle field. It is not safe for concurrent use; all
// calls are expected from the host's frame loop.
type Animator struct {
	sched      Scheduler
	visibility Visibility
	rng        *rand.Rand

	surface Surface
	ctx     Context
	cfg     config.Field

	width, height float64
	particles     []Particle

	handle      frame.Handle
	unsubscribe func()
}

type Option func(*Animator)

// WithVisibility pauses the field while the page is hidden.
func WithVisibility(v Visibility) Option {
	return func(a *Animator) { a.visibility = v }
}

// WithRand sets the random source used to seed particles.
func WithRand(r *rand.Rand) Option {
	return func(a *Animator) { a.rng = r }
}

func New(sched Scheduler, opts ...Option) *Animator {
	a := &Animator{sched: sched}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Initialize measures surface, regenerates the particles and starts the
// frame loop, replacing any loop already running. Without a drawing
// context the animator stays inert.
func (a *Animator) Initialize(surface Surface, cfg config.Field) {
	var ctx Context
	if surface != nil {
		ctx = surface.Context()
	}
	if ctx == nil {
		log.Printf("particles: no drawing context, field disabled")
		a.Close()
		a.surface, a.ctx = nil, nil
		return
	}

	a.surface, a.ctx, a.cfg = surface, ctx, cfg
	a.Resize()

	if a.visibility != nil && a.unsubscribe == nil {
		a.unsubscribe = a.visibility.Subscribe(a.onVisibility)
	}

	a.sched.CancelFrame(a.handle)
	a.handle = 0
	a.Animate()
}

// Resize re-measures the surface, matches the backing store to the device
// pixel ratio and regenerates the particles. The loop is left alone.
func (a *Animator) Resize() {
	if a.ctx == nil {
		return
	}

	ratio := a.surface.DeviceScaleFactor()
	if ratio <= 0 {
		ratio = 1
	}
	a.width, a.height = a.surface.Size()
	a.surface.SetBackingSize(int(math.Floor(a.width*ratio)), int(math.Floor(a.height*ratio)))
	a.ctx.SetTransform(ratio, 0, 0, ratio, 0, 0)

	a.createParticles()
	log.Printf("particles: %.0fx%.0f @%gx, %d particles", a.width, a.height, ratio, len(a.particles))
}

func (a *Animator) createParticles() {
	n := Count(a.width, a.height, a.cfg.Density)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:  a.rng.Float64() * a.width,
			Y:  a.rng.Float64() * a.height,
			VX: (a.rng.Float64() - 0.5) * a.cfg.MaxVelocity,
			VY: (a.rng.Float64() - 0.5) * a.cfg.MaxVelocity,
		}
	}
	a.particles = ps
}

// Step moves every particle by its velocity. A particle found outside the
// overscan band after moving has that axis reflected for the next step.
func (a *Animator) Step() {
	for i := range a.particles {
		p := &a.particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < -Overscan || p.X > a.width+Overscan {
			p.VX = -p.VX
		}
		if p.Y < -Overscan || p.Y > a.height+Overscan {
			p.VY = -p.VY
		}
	}
}

// Draw clears the surface, strokes a link for every close pair and then
// fills each particle.
func (a *Animator) Draw() {
	if a.ctx == nil {
		return
	}
	ctx := a.ctx
	ctx.ClearRect(0, 0, a.width, a.height)

	ctx.SetStrokeColor(a.cfg.LineColor)
	ctx.SetLineWidth(1)
	ctx.BeginPath()
	for i := 0; i < len(a.particles); i++ {
		p1 := a.particles[i]
		for j := i + 1; j < len(a.particles); j++ {
			p2 := a.particles[j]
			if math.Hypot(p1.X-p2.X, p1.Y-p2.Y) < a.cfg.LinkDistance {
				ctx.MoveTo(p1.X, p1.Y)
				ctx.LineTo(p2.X, p2.Y)
			}
		}
	}
	ctx.Stroke()

	ctx.SetFillColor(a.cfg.PointColor)
	for _, p := range a.particles {
		ctx.BeginPath()
		ctx.Arc(p.X, p.Y, a.cfg.PointRadius, 0, 2*math.Pi)
		ctx.Fill()
	}
}

// Animate runs one frame and schedules the next.
func (a *Animator) Animate() {
	a.Step()
	a.Draw()
	a.handle = a.sched.RequestFrame(a.Animate)
}

// Pause stops scheduling frames. Particle state is kept.
func (a *Animator) Pause() {
	a.sched.CancelFrame(a.handle)
	a.handle = 0
}

// Resume restarts the loop if it is not already running.
func (a *Animator) Resume() {
	if a.ctx == nil || a.handle != 0 {
		return
	}
	a.Animate()
}

// Close stops the loop and drops the visibility subscription.
func (a *Animator) Close() {
	a.Pause()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *Animator) onVisibility(hidden bool) {
	if hidden {
		a.Pause()
	} else {
		a.Resume()
	}
}

// Particles returns a copy of the current particle set.
func (a *Animator) Particles() []Particle {
	return append([]Particle(nil), a.particles...)
}

// Active reports whether the animator has a context to draw on.
func (a *Animator) Active() bool { return a.ctx != nil }

// Running reports whether a frame is scheduled.
func (a *Animator) Running() bool { return a.handle != 0 }

// Viewport returns the logical size the particles were generated for.
func (a *Animator) Viewport() (width, height float64) { return a.width, a.height }
