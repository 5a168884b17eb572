package kinematic

// This package includes the 2D vector math shared by the game and physics packages.
// Coordinates are in screen space: x grows to the right and y grows downward.

import (
	"math"
)

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Clamp returns the factor that brings v down to at most max in length.
// A zero vector yields 1 so callers never divide by zero.
func (v Vector) Clamp(max float64) float64 {
	magnitude := v.Length()
	if magnitude == 0 {
		return 1
	}
	return math.Min(1, max/magnitude)
}
