package ring

import (
	"fmt"
	"strconv"
)

const (
	// CanvasSize is the width and height of the SVG view box.
	CanvasSize = 300
	// Center is the x and y coordinate of the canvas center.
	Center = CanvasSize / 2
	// Inset keeps the outer stroke edge off the view box boundary.
	Inset = 2
)

// Geometry is the derived layout for one border/padding combination.
type Geometry struct {
	ImageRadius float64
	ArcRadius   float64
	StrokeWidth float64
	Paths       [4]string
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// anchors are the arc end points at a given radius from the center. Only
// left, right and bottom are used; every ring starts on the horizontal axis.
type anchors struct {
	right, bottom, left Point
}

func anchorsAt(radius float64) anchors {
	return anchors{
		right:  Point{Center + radius, Center},
		bottom: Point{Center, Center + radius},
		left:   Point{Center - radius, Center},
	}
}

// BorderSizes computes the image clip radius, ring stroke width and the four
// arc paths. Ring 1 sweeps left to right through the bottom, ring 2 left to
// right through the top, ring 3 right to left through the bottom, and ring 4
// is the bottom-right quarter from the right anchor down.
func BorderSizes(border BorderSize, padding PaddingSize) (Geometry, error) {
	if !border.Valid() {
		return Geometry{}, fmt.Errorf("%w: border %q", ErrUnknownSize, border)
	}
	if !padding.Valid() {
		return Geometry{}, fmt.Errorf("%w: padding %q", ErrUnknownSize, padding)
	}
	stroke := border.StrokeWidth()
	maxRadius := float64(Center - Inset)
	arcRadius := maxRadius - stroke/2
	a := anchorsAt(arcRadius)

	return Geometry{
		ImageRadius: maxRadius - stroke - padding.Pixels(),
		ArcRadius:   arcRadius,
		StrokeWidth: stroke,
		Paths: [4]string{
			arcPath(a.left, a.right, arcRadius, 0),
			arcPath(a.left, a.right, arcRadius, 1),
			arcPath(a.right, a.left, arcRadius, 1),
			arcPath(a.right, a.bottom, arcRadius, 1),
		},
	}, nil
}

func arcPath(from, to Point, r float64, sweep int) string {
	return "M " + num(from.X) + " " + num(from.Y) +
		" A " + num(r) + " " + num(r) + " 0 0 " + strconv.Itoa(sweep) +
		" " + num(to.X) + " " + num(to.Y)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
