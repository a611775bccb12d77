// Package viewmodel defines the view-layer types for ringframe pages. These
// types hold rendered inputs only, so page components can use them without
// importing the handlers.
package viewmodel

import "ringframe/internal/widget"

// DemoWidget is one widget shown on the demo page.
type DemoWidget struct {
	Label string
	Props widget.Props
}

// HomePage holds data for the demo page.
type HomePage struct {
	Title   string
	Image   string
	Colors  string
	Border  string
	Padding string
	Speed   string
	Widgets []DemoWidget
	Error   string
}
