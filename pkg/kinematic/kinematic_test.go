package kinematic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Vector
	}{
		{
			name: "unit x",
			v:    Vector{X: 5, Y: 0},
			want: Vector{X: 1, Y: 0},
		},
		{
			name: "diagonal",
			v:    Vector{X: 3, Y: 4},
			want: Vector{X: 0.6, Y: 0.8},
		},
		{
			name: "zero vector",
			v:    Vector{},
			want: Vector{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalized()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestAngleDifference(t *testing.T) {
	tests := []struct {
		name string
		from float64
		to   float64
		want float64
	}{
		{
			name: "no difference",
			from: 1.0,
			to:   1.0,
			want: 0,
		},
		{
			name: "quarter turn",
			from: 0,
			to:   math.Pi / 2,
			want: math.Pi / 2,
		},
		{
			name: "wraps across pi",
			from: math.Pi - 0.1,
			to:   -math.Pi + 0.1,
			want: 0.2,
		},
		{
			name: "negative direction",
			from: math.Pi / 2,
			to:   0,
			want: -math.Pi / 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleDifference(tt.from, tt.to), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-5, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestDistanceTo(t *testing.T) {
	a := Vector{X: 0, Y: 0}
	b := Vector{X: 3, Y: 4}
	assert.Equal(t, 5.0, a.DistanceTo(b))
}
