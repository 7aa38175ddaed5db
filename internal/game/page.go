package game

import (
	"github.com/iburimskiy/odas-hero/internal/nav"
)

// Page layout in logical pixels. The hero sits behind the particle field.
var pageSections = []nav.Section{
	{ID: "home", Title: "ODAS Digital Agency", Top: 0, Height: 640},
	{ID: "services", Title: "Services", Top: 640, Height: 720},
	{ID: "work", Title: "Selected Work", Top: 1360, Height: 640},
	{ID: "about", Title: "About", Top: 2000, Height: 560},
	{ID: "contact", Title: "Contact", Top: 2560, Height: 640},
}

var pageLinks = []nav.Link{
	{Label: "Home", Href: "#home"},
	{Label: "Services", Href: "#services"},
	{Label: "Work", Href: "#work"},
	{Label: "About", Href: "#about"},
	{Label: "Contact", Href: "#contact"},
}

var sectionBlurbs = map[string]string{
	"home":     "Strategy, design and engineering for ambitious brands.",
	"services": "Brand identity / Web platforms / Growth campaigns",
	"work":     "Case studies from retail, fintech and hospitality.",
	"about":    "A small senior team working from Lisbon and London.",
	"contact":  "Press C to write to us.",
}
