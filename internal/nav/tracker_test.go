package nav

import "testing"

var testBand = Band{TopMargin: 0.4, BottomMargin: 0.5, Threshold: 0.2}

func testPage() ([]Section, []Link) {
	sections := []Section{
		{ID: "hero", Top: 0, Height: 400},
		{ID: "services", Top: 400, Height: 400},
		{ID: "about", Top: 800, Height: 400},
		{ID: "footer", Top: 1200, Height: 100}, // no link
		{ID: "contact", Top: 1300, Height: 400},
	}
	links := []Link{
		{Label: "Home", Href: "#hero"},
		{Label: "Services", Href: "#services"},
		{Label: "About", Href: "#about"},
		{Label: "Contact", Href: "#contact"},
	}
	return sections, links
}

func TestRatio(t *testing.T) {
	s := Section{Top: 100, Height: 200}
	tests := []struct {
		top, bottom float64
		want        float64
	}{
		{0, 50, 0},
		{0, 100, 0},
		{150, 250, 0.5},
		{0, 1000, 1},
		{250, 400, 0.25},
		{300, 400, 0},
	}
	for _, tt := range tests {
		if got := Ratio(s, tt.top, tt.bottom); got != tt.want {
			t.Errorf("Ratio(%v, %v) = %v, want %v", tt.top, tt.bottom, got, tt.want)
		}
	}

	if Ratio(Section{Top: 0, Height: 0}, -10, 10) != 0 {
		t.Error("zero-height section must not intersect")
	}
}

func TestTracker_FollowsScroll(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)

	if tr.Active() != "" {
		t.Fatalf("initial active = %q", tr.Active())
	}

	// Viewport 1000: band is [scroll+400, scroll+500].
	steps := []struct {
		scroll float64
		want   string
	}{
		{-100, "#hero"},
		{0, "#services"},
		{400, "#about"},
		{900, "#contact"},
		{-100, "#hero"},
	}
	for _, st := range steps {
		tr.Update(st.scroll, 1000)
		if tr.Active() != st.want {
			t.Errorf("scroll %v: active = %q, want %q", st.scroll, tr.Active(), st.want)
		}
	}
}

func TestTracker_SectionWithoutLinkKeepsActive(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)

	tr.Update(400, 1000) // about
	// Band [1200, 1300] covers the footer only.
	changed := tr.Update(800, 1000)

	if changed {
		t.Error("footer has no link, active should not change")
	}
	if tr.Active() != "#about" {
		t.Errorf("active = %q, want #about", tr.Active())
	}
}

func TestTracker_EnteringBandActivates(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)

	tr.Update(-100, 1000) // hero
	// Band [360, 460]: hero drops to 0.1, services starts overlapping at 0.15.
	tr.Update(-40, 1000)
	if tr.Active() != "#services" {
		t.Fatalf("active = %q, want #services", tr.Active())
	}
}

func TestTracker_ThresholdCrossing(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)

	tr.Update(-40, 1000) // hero 0.1, services 0.15: services last
	// Band [340, 440]: both still overlap and stay under the threshold.
	if changed := tr.Update(-60, 1000); changed {
		t.Error("no crossing, active should not change")
	}
	if tr.Active() != "#services" {
		t.Fatalf("active = %q, want #services", tr.Active())
	}

	// Band [300, 400]: hero crosses 0.2, services stops overlapping.
	tr.Update(-100, 1000)
	if tr.Active() != "#hero" {
		t.Errorf("active = %q, want #hero", tr.Active())
	}
}

func TestTracker_NoOverlapNoActive(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)

	if changed := tr.Update(5000, 1000); changed || tr.Active() != "" {
		t.Errorf("active = %q, want none", tr.Active())
	}
}

func TestTracker_ReentryRequiresLeaving(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)

	tr.Update(0, 1000) // services enters
	if changed := tr.Update(10, 1000); changed {
		t.Error("staying inside must not fire again")
	}
}

func TestTracker_LastEnteringWins(t *testing.T) {
	sections := []Section{
		{ID: "a", Top: 0, Height: 100},
		{ID: "b", Top: 100, Height: 100},
	}
	links := []Link{{Href: "#a"}, {Href: "#b"}}
	tr := NewTracker(testBand, sections, links)

	// Band [50, 150] covers half of each.
	tr.Update(-350, 1000)
	if tr.Active() != "#b" {
		t.Errorf("active = %q, want #b", tr.Active())
	}
}

func TestTracker_PageHeight(t *testing.T) {
	sections, links := testPage()
	tr := NewTracker(testBand, sections, links)
	if got := tr.PageHeight(); got != 1700 {
		t.Errorf("PageHeight = %v, want 1700", got)
	}
}

func TestTracker_EdgeContactDoesNotActivate(t *testing.T) {
	sections := []Section{{ID: "pricing", Top: 500, Height: 100}}
	links := []Link{{Label: "Pricing", Href: "#pricing"}}
	tr := NewTracker(testBand, sections, links)

	// Band [400, 500] ends exactly where the section starts.
	tr.Update(0, 1000)
	if tr.Active() != "" {
		t.Errorf("active = %q, want none for edge contact", tr.Active())
	}

	tr.Update(1, 1000)
	if tr.Active() != "#pricing" {
		t.Errorf("active = %q, want #pricing", tr.Active())
	}
}
