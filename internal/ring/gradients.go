package ring

// GradientKind distinguishes linear from radial gradients.
type GradientKind int

const (
	Linear GradientKind = iota
	Radial
)

// Stop is one gradient stop. Offset is a percentage in [0, 100].
type Stop struct {
	Offset  uint8
	Opacity float64
}

// Gradient describes the stroke paint for one ring. Linear gradients run
// top to bottom; radial gradients use CX, CY and R as percentages of the
// bounding box.
type Gradient struct {
	Kind      GradientKind
	Color     Color
	CX, CY, R uint8
	Stops     []Stop
}

var gradientRecipes = [4]Gradient{
	{Kind: Linear, Stops: []Stop{{0, 0}, {45, 0.1}, {100, 0.75}}},
	{Kind: Linear, Stops: []Stop{{0, 0.75}, {20, 0.35}, {100, 0}}},
	{Kind: Linear, Stops: []Stop{{0, 0}, {20, 0.1}, {100, 0.75}}},
	{Kind: Radial, CX: 90, CY: 90, R: 75, Stops: []Stop{{0, 0.75}, {100, 0}}},
}

// Gradients binds the assigned colors to the four ring gradients. Ring 1 is
// painted with the fourth color and ring 4 with the first.
func Gradients(colors [4]Color) [4]Gradient {
	var out [4]Gradient
	for i, recipe := range gradientRecipes {
		g := recipe
		g.Color = colors[3-i]
		g.Stops = append([]Stop(nil), recipe.Stops...)
		out[i] = g
	}
	return out
}
