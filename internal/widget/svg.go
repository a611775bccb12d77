package widget

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"ringframe/internal/ring"
)

// Scene is everything needed to draw one widget, derived from Props.
type Scene struct {
	ID        string
	Image     string
	HasImage  bool
	Geometry  ring.Geometry
	Gradients [4]ring.Gradient
	Angles    [4]float64
}

// NewScene validates p (after defaults) and derives its geometry and paints.
func NewScene(p Props) (Scene, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return Scene{}, err
	}
	colors, err := ring.AssignColors(p.Colors)
	if err != nil {
		return Scene{}, err
	}
	geom, err := ring.BorderSizes(p.Border, p.Padding)
	if err != nil {
		return Scene{}, err
	}
	return Scene{
		ID:        p.ID,
		Image:     p.Image,
		HasImage:  p.HasImage(),
		Geometry:  geom,
		Gradients: ring.Gradients(colors),
		Angles:    p.Angles,
	}, nil
}

// GradientID returns the element id of ring i's gradient (0-based).
func (s Scene) GradientID(i int) string {
	return s.ID + "-ring" + strconv.Itoa(i+1)
}

// ClipID returns the element id of the image clip path.
func (s Scene) ClipID() string {
	return s.ID + "-clip"
}

// WriteSVG writes p as a standalone SVG document, XML prolog included.
func WriteSVG(w io.Writer, p Props) error {
	scene, err := NewScene(p)
	if err != nil {
		return err
	}
	scene.draw(svg.New(w), ring.CanvasSize, "px")
	return nil
}

// inlineSVG renders the scene for embedding in HTML: no XML prolog and a
// view box that scales to the container.
func (s Scene) inlineSVG() string {
	var buf bytes.Buffer
	s.draw(svg.New(&buf), 100, "%")
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return out
}

func (s Scene) draw(canvas *svg.SVG, extent int, unit string) {
	canvas.StartviewUnit(extent, extent, unit, 0, 0, ring.CanvasSize, ring.CanvasSize)

	canvas.Def()
	canvas.ClipPath(`id="` + s.ClipID() + `"`)
	canvas.Circle(ring.Center, ring.Center, int(s.Geometry.ImageRadius))
	canvas.ClipEnd()
	for i, g := range s.Gradients {
		stops := make([]svg.Offcolor, 0, len(g.Stops))
		for _, st := range g.Stops {
			stops = append(stops, svg.Offcolor{Offset: st.Offset, Color: string(g.Color), Opacity: st.Opacity})
		}
		switch g.Kind {
		case ring.Radial:
			canvas.RadialGradient(s.GradientID(i), g.CX, g.CY, g.R, g.CX, g.CY, stops)
		default:
			canvas.LinearGradient(s.GradientID(i), 0, 0, 0, 100, stops)
		}
	}
	canvas.DefEnd()

	if s.HasImage {
		r := int(s.Geometry.ImageRadius)
		canvas.Image(ring.Center-r, ring.Center-r, 2*r, 2*r, html.EscapeString(s.Image),
			`clip-path="url(#`+s.ClipID()+`)"`,
			`preserveAspectRatio="xMidYMid slice"`)
	} else {
		canvas.Text(ring.Center, ring.Center, FallbackText,
			`text-anchor="middle"`,
			`dominant-baseline="middle"`,
			"font-size:14px;fill:currentColor")
	}

	// Ring 1 is the top-most layer, so it is drawn last.
	stroke := strconv.FormatFloat(s.Geometry.StrokeWidth, 'f', -1, 64)
	for i := len(s.Geometry.Paths) - 1; i >= 0; i-- {
		canvas.Group(
			`data-ring="`+strconv.Itoa(i+1)+`"`,
			`transform="`+rotate(s.Angles[i])+`"`,
		)
		canvas.Path(s.Geometry.Paths[i],
			`fill="none"`,
			`stroke="url(#`+s.GradientID(i)+`)"`,
			`stroke-width="`+stroke+`"`,
			`stroke-linecap="round"`)
		canvas.Gend()
	}
	canvas.End()
}

func rotate(deg float64) string {
	if deg == 0 {
		deg = 0 // drop the sign of -0
	}
	return fmt.Sprintf("rotate(%s %d %d)", strconv.FormatFloat(deg, 'f', 3, 64), ring.Center, ring.Center)
}
