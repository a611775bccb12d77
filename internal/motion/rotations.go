package motion

import "math"

const (
	settleDistance = 0.01
	settleVelocity = 0.01
)

// Rotations is the four-ring rotation state for one mounted widget. It is
// not safe for concurrent use; callers serialize access.
type Rotations struct {
	filters [4]Filter
	speed   float64
	target  float64
}

// NewRotations returns rotation state at rest, scaled by speed.
func NewRotations(fps int, speed float64) *Rotations {
	r := &Rotations{speed: speed}
	for i, s := range RingSprings {
		r.filters[i] = NewFilter(fps, s)
	}
	return r
}

// Speed returns the configured speed factor.
func (r *Rotations) Speed() float64 {
	return r.speed
}

// Target returns the latest scroll offset.
func (r *Rotations) Target() float64 {
	return r.target
}

// SetTarget records a new raw scroll offset.
func (r *Rotations) SetTarget(offset float64) {
	r.target = offset
}

// Step advances every ring filter by one frame and returns the new angles.
func (r *Rotations) Step() [4]float64 {
	for i := range r.filters {
		r.filters[i].Step(r.target)
	}
	return r.Angles()
}

// Angles returns the current ring angles in degrees.
func (r *Rotations) Angles() [4]float64 {
	var out [4]float64
	for i, f := range r.filters {
		out[i] = f.Pos * RingWeights[i] * r.speed
	}
	return out
}

func (r *Rotations) positions() [4]float64 {
	var out [4]float64
	for i, f := range r.filters {
		out[i] = f.Pos
	}
	return out
}

// Settled reports whether every ring has come to rest on the target.
func (r *Rotations) Settled() bool {
	for _, f := range r.filters {
		if math.Abs(f.Pos-r.target) > settleDistance || math.Abs(f.Vel) > settleVelocity {
			return false
		}
	}
	return true
}

// Reset puts every ring at rest on offset without any transient.
func (r *Rotations) Reset(offset float64) {
	r.target = offset
	for i := range r.filters {
		r.filters[i].Pos = offset
		r.filters[i].Vel = 0
	}
}

// Simulate steps a fresh rotation state frames times towards offset and
// returns the resulting angles.
func Simulate(fps int, speed, offset float64, frames int) [4]float64 {
	r := NewRotations(fps, speed)
	r.SetTarget(offset)
	for i := 0; i < frames; i++ {
		r.Step()
	}
	return r.Angles()
}
