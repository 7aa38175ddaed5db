package game

import (
	"context"
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/odas-hero/internal/config"
	"github.com/iburimskiy/odas-hero/internal/contact"
	"github.com/iburimskiy/odas-hero/internal/frame"
	"github.com/iburimskiy/odas-hero/internal/nav"
	"github.com/iburimskiy/odas-hero/internal/particles"
)

const (
	navHeight   = 48
	scrollStep  = 60
	submitLimit = 15 * time.Second
)

var uiFace = text.NewGoXFace(basicfont.Face7x13)

var (
	backgroundColor = color.NRGBA{R: 11, G: 11, B: 14, A: 255}
	headerColor     = color.NRGBA{R: 16, G: 16, B: 20, A: 220}
	textColor       = color.NRGBA{R: 230, G: 230, B: 235, A: 255}
	mutedColor      = color.NRGBA{R: 150, G: 150, B: 160, A: 255}
	accentColor     = color.NRGBA{R: 254, G: 0, B: 27, A: 255}
)

// backdrop is the surface the particle field draws on.
type backdrop interface {
	particles.Surface
	SetViewport(width, height, scale float64)
	// Image is nil until the field allocates a backing store.
	Image() *ebiten.Image
}

// Game hosts the landing page in an ebiten window: the particle backdrop,
// the navigation strip and the contact form.
type Game struct {
	cfg config.App

	frames     *frame.Queue
	visibility *frame.Signal
	canvas     backdrop
	field      *particles.Animator

	tracker *nav.Tracker
	form    *contact.Form
	prompt  func() (contact.Submission, error)
	notify  func(status string, failed bool) error

	// viewport, logical pixels
	width, height float64
	scale         float64
	scrollY       float64

	started bool
	focused bool
	// paused is the user's Space toggle; it keeps the field hidden even
	// when the window regains focus.
	paused  bool
	status  string
	lastErr error
}

func NewGame(cfg config.App) *Game {
	frames := frame.NewQueue()
	visibility := frame.NewSignal()

	var relay contact.Relay = contact.MailClient{To: cfg.Recipient}
	if cfg.ContactEndpoint != "" {
		relay = contact.NewWebhook(cfg.ContactEndpoint)
	}

	return &Game{
		cfg:        cfg,
		frames:     frames,
		visibility: visibility,
		canvas:     NewCanvas(),
		field:      particles.New(frames, particles.WithVisibility(visibility)),
		tracker: nav.NewTracker(nav.Band{
			TopMargin:    config.NavTopMargin,
			BottomMargin: config.NavBottomMargin,
			Threshold:    config.NavThreshold,
		}, pageSections, pageLinks),
		form:    contact.NewForm(relay),
		prompt:  contact.Prompt,
		notify:  contact.Notify,
		scale:   1,
		focused: true,
	}
}

func (g *Game) Update() error {
	if !g.started {
		g.start()
	}

	g.setFocused(ebiten.IsFocused())
	g.frames.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleField()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.openContactForm()
	}

	_, wheel := ebiten.Wheel()
	delta := -wheel * scrollStep
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		delta += scrollStep
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		delta -= scrollStep
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		delta += g.height
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		delta -= g.height
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		delta = -g.scrollY
	}
	g.scroll(delta)

	return nil
}

// start runs once the first layout is known.
func (g *Game) start() {
	g.started = true
	g.tracker.Update(g.scrollY, g.height)

	if g.cfg.ReducedMotion {
		log.Printf("reduced motion requested, background disabled")
		return
	}
	g.field.Initialize(g.canvas, g.cfg.Field)
}

func (g *Game) scroll(delta float64) {
	if delta == 0 {
		return
	}
	g.scrollY = clamp(g.scrollY+delta, 0, g.tracker.PageHeight()-g.height)
	g.tracker.Update(g.scrollY, g.height)
}

func (g *Game) setFocused(focused bool) {
	g.focused = focused
	g.syncVisibility()
}

// syncVisibility hides the field while the window is unfocused or the user
// paused it.
func (g *Game) syncVisibility() {
	g.visibility.Set(g.paused || !g.focused)
}

func (g *Game) toggleField() {
	if !g.field.Active() {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.status = "Background paused"
	} else {
		g.status = ""
	}
	g.syncVisibility()
}

func (g *Game) openContactForm() {
	s, err := g.prompt()
	if err != nil {
		if errors.Is(err, contact.ErrCanceled) {
			return
		}
		g.lastErr = err
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), submitLimit)
	defer cancel()

	status, err := g.form.Submit(ctx, s)
	g.status, g.lastErr = status, err
	if err := g.notify(status, err != nil); err != nil && !errors.Is(err, contact.ErrCanceled) {
		log.Printf("contact: notify: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if img := g.canvas.Image(); img != nil && g.field.Active() {
		screen.DrawImage(img, nil)
	}

	g.drawSections(screen)
	g.drawNav(screen)
	g.drawStatus(screen)
}

func (g *Game) drawSections(screen *ebiten.Image) {
	for _, s := range g.tracker.Sections() {
		top := s.Top - g.scrollY
		if top+s.Height < 0 || top > g.height {
			continue
		}

		y := top + s.Height/2
		g.drawText(screen, s.Title, 48, y, textColor)
		g.drawText(screen, sectionBlurbs[s.ID], 48, y+24, mutedColor)

		// divider
		vector.StrokeLine(screen,
			float32(px(48, g.scale)), float32(px(top, g.scale)),
			float32(px(g.width-48, g.scale)), float32(px(top, g.scale)),
			1, withAlpha(mutedColor, 40), false)
	}
}

func (g *Game) drawNav(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(px(g.width, g.scale)), float32(px(navHeight, g.scale)), headerColor, false)

	x := 48.0
	active := g.tracker.Active()
	for _, l := range g.tracker.Links() {
		clr := mutedColor
		if l.Href == active {
			clr = textColor
		}
		g.drawText(screen, l.Label, x, navHeight/2+4, clr)

		w := float64(len(l.Label) * basicfont.Face7x13.Advance)
		if l.Href == active {
			vector.StrokeLine(screen,
				float32(px(x, g.scale)), float32(px(navHeight-10, g.scale)),
				float32(px(x+w, g.scale)), float32(px(navHeight-10, g.scale)),
				float32(2*g.scale), accentColor, false)
		}
		x += w + 32
	}
}

// drawText draws s with its baseline at logical (x, y).
func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -uiFace.Metrics().HAscent)
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate(float64(px(x, g.scale)), float64(px(y, g.scale)))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, uiFace, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "Scroll or arrows to browse - C: contact - Space: pause background - Esc/Q: quit"
	if g.status != "" {
		status = g.status
	}
	if g.lastErr != nil && !errors.Is(g.lastErr, contact.ErrIncomplete) {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, px(12, g.scale), px(g.height-20, g.scale))
}

// Layout reports the physical screen size so the backdrop renders at device
// resolution. A change of logical size or scale regenerates the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	g.resize(float64(outsideWidth), float64(outsideHeight), scale)
	return px(g.width, g.scale), px(g.height, g.scale)
}

func (g *Game) resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if width == g.width && height == g.height && scale == g.scale {
		return
	}
	g.width, g.height, g.scale = width, height, scale
	g.canvas.SetViewport(width, height, scale)

	if !g.started {
		return
	}
	if g.field.Active() {
		g.field.Resize()
	}
	g.scrollY = clamp(g.scrollY, 0, g.tracker.PageHeight()-g.height)
	g.tracker.Update(g.scrollY, g.height)
}

// Close stops the background loop.
func (g *Game) Close() {
	g.field.Close()
}
