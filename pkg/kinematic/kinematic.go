package kinematic

// This package includes vector helpers and the kinematic equations used by
// the simulation.

import (
	"math"
)

// Vector is a 2D vector in map coordinates. Y grows downward.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of the two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns the vector scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// DistanceTo returns the euclidean distance between the two points.
func (v Vector) DistanceTo(other Vector) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

// AngleTo returns the angle in radians from v to other.
func (v Vector) AngleTo(other Vector) float64 {
	return math.Atan2(other.Y-v.Y, other.X-v.X)
}

// FromAngle returns the unit vector pointing at the given angle.
func FromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// AngleDifference returns the signed difference between two angles,
// wrapped to [-pi, pi].
func AngleDifference(from float64, to float64) float64 {
	diff := math.Mod(to-from+math.Pi, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	return diff - math.Pi
}

// Clamp limits v to the range [min, max].
func Clamp(v float64, min float64, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}
