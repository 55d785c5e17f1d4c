package kinematic

// This package includes the motion helpers used by the simulation:
// constant-velocity stepping and exponential easing towards a target.

import (
	"math"
)

// Vector is a 2D vector in screen space.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Step advances a position by one tick of constant velocity.
func Step(position Vector, velocity Vector) Vector {
	return position.Add(velocity)
}

// Approach moves current towards target by the given fraction of the remaining
// distance and snaps to target once the remainder is below epsilon.
// For factors in (0, 1] the result never overshoots the target.
func Approach(current, target, factor, epsilon float64) float64 {
	next := current + (target-current)*factor
	if math.Abs(target-next) < epsilon {
		return target
	}
	return next
}
