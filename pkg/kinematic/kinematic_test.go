package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Clamp(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		max  float64
		want float64
	}{
		{name: "zero vector", v: Vector{}, max: 20, want: 1},
		{name: "shorter than max", v: Vector{X: 3, Y: 4}, max: 20, want: 1},
		{name: "exactly max", v: Vector{X: 12, Y: 16}, max: 20, want: 1},
		{name: "longer than max", v: Vector{X: 100, Y: 0}, max: 20, want: 0.2},
		{name: "diagonal", v: Vector{X: -30, Y: 40}, max: 20, want: 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.Clamp(tt.max), 1e-9)
		})
	}
}

func TestVector_arithmetic(t *testing.T) {
	a := Vector{X: 1, Y: 2}
	b := Vector{X: 4, Y: -2}
	assert.Equal(t, Vector{X: 5, Y: 0}, a.Add(b))
	assert.Equal(t, Vector{X: -3, Y: 4}, a.Sub(b))
	assert.Equal(t, Vector{X: 2.5, Y: 5}, a.Scale(2.5))
	assert.InDelta(t, 5, a.Sub(b).Length(), 1e-9)
}
