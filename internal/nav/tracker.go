// Package nav keeps the navigation strip in step with the scroll position:
// the link of the section currently crossing the middle band of the
// viewport is the active one.
package nav

import (
	"log"
	"math"
)

// Section is a block of the page in page coordinates.
type Section struct {
	ID     string
	Title  string
	Top    float64
	Height float64
}

type Link struct {
	Label string
	Href  string
}

// Band describes the observation window as fractions of the viewport
// height trimmed from the top and from the bottom, and the intersection
// ratio at which a section counts as entered.
type Band struct {
	TopMargin    float64
	BottomMargin float64
	Threshold    float64
}

// observation is the last reported state of one section.
type observation struct {
	intersecting bool
	// 0 below the threshold, 1 at or above it, -1 before the first Update
	thresholdIndex int
}

type Tracker struct {
	band     Band
	sections []Section
	links    []Link
	observed []observation
	active   string
}

func NewTracker(band Band, sections []Section, links []Link) *Tracker {
	observed := make([]observation, len(sections))
	for i := range observed {
		observed[i].thresholdIndex = -1
	}
	return &Tracker{
		band:     band,
		sections: sections,
		links:    links,
		observed: observed,
	}
}

// Ratio is the share of s that lies inside [top, bottom].
func Ratio(s Section, top, bottom float64) float64 {
	if s.Height <= 0 || bottom <= top {
		return 0
	}
	overlap := math.Min(s.Top+s.Height, bottom) - math.Max(s.Top, top)
	if overlap <= 0 {
		return 0
	}
	return overlap / s.Height
}

// Update re-evaluates every section for the given scroll offset and
// viewport height. A section is reported when it starts or stops
// overlapping the band, or when its ratio crosses the threshold; the link
// of every reported section that overlaps becomes active, in document
// order. It reports whether the active link changed.
func (t *Tracker) Update(scrollY, viewportHeight float64) bool {
	top := scrollY + viewportHeight*t.band.TopMargin
	bottom := scrollY + viewportHeight*(1-t.band.BottomMargin)

	prev := t.active
	for i, s := range t.sections {
		ratio := Ratio(s, top, bottom)
		// Unlike the browser, an edge that only touches the band does not
		// count as intersecting.
		cur := observation{intersecting: ratio > 0}
		if ratio >= t.band.Threshold {
			cur.thresholdIndex = 1
		}

		if cur != t.observed[i] && cur.intersecting {
			if href := "#" + s.ID; t.hasLink(href) {
				t.active = href
			}
		}
		t.observed[i] = cur
	}

	if t.active != prev {
		log.Printf("nav: active %q", t.active)
		return true
	}
	return false
}

func (t *Tracker) hasLink(href string) bool {
	for _, l := range t.links {
		if l.Href == href {
			return true
		}
	}
	return false
}

// Active returns the href of the highlighted link, or "" before any
// section has been entered.
func (t *Tracker) Active() string { return t.active }

func (t *Tracker) Links() []Link { return t.links }

func (t *Tracker) Sections() []Section { return t.sections }

// PageHeight is the bottom edge of the last section.
func (t *Tracker) PageHeight() float64 {
	h := 0.0
	for _, s := range t.sections {
		h = math.Max(h, s.Top+s.Height)
	}
	return h
}
