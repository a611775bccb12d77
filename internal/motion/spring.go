// Package motion turns a raw scroll offset into four smoothed ring angles.
//
// Each ring runs its own mass-spring-damper filter stepped at a fixed frame
// rate. The filters have unit steady-state gain: once the scroll offset stops
// changing every filter settles on it, and the ring angle becomes
// offset * weight * speed.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Spring holds the physical parameters of a mass-spring-damper.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// AngularFrequency is sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)). Values above 1 are overdamped.
func (s Spring) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// RingSprings are the per-ring filter parameters, outermost ring first.
var RingSprings = [4]Spring{
	{Stiffness: 100, Damping: 20, Mass: 0.5},
	{Stiffness: 140, Damping: 180, Mass: 0.6},
	{Stiffness: 500, Damping: 200, Mass: 0.9},
	{Stiffness: 600, Damping: 150, Mass: 0.3},
}

// RingWeights scale each ring's filtered offset. Negative weights make the
// ring counter-rotate.
var RingWeights = [4]float64{1, -0.9, 1, -0.8}

// Filter is a single spring smoothing a scalar towards a target.
type Filter struct {
	spring harmonica.Spring
	Pos    float64
	Vel    float64
}

// NewFilter returns a filter at rest at zero, stepped fps times per second.
func NewFilter(fps int, s Spring) Filter {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Filter{
		spring: harmonica.NewSpring(harmonica.FPS(fps), s.AngularFrequency(), s.DampingRatio()),
	}
}

// Step advances the filter by one frame towards target and returns the new
// position.
func (f *Filter) Step(target float64) float64 {
	f.Pos, f.Vel = f.spring.Update(f.Pos, f.Vel, target)
	return f.Pos
}
