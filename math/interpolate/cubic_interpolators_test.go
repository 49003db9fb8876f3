package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatmullRomGolden(t *testing.T) {
	// Knots on y = x^2. The interior segment reproduces the parabola.
	cr := NewCatmullRom([]float32{0, 1, 2, 3}, []float32{0, 1, 4, 9})

	table := []struct {
		x, y float32
	}{
		{-1, 1},  // before the second knot
		{0.5, 1}, // before the second knot
		{1, 1},
		{1.25, 1.5625},
		{1.5, 2.25},
		{1.75, 3.0625},
		{2, 4}, // past the second-to-last knot
		{5, 4},
	}

	for i, test := range table {
		assert.InDelta(t, test.y, cr.Eval(test.x), 1e-5, "%d) x = %g", i, test.x)
	}
}

func TestCatmullRomLinearData(t *testing.T) {
	xs := []float32{0, 1, 2, 3, 4}
	ys := []float32{1, 3, 5, 7, 9}
	cr := NewCatmullRom(xs, ys)

	for _, x := range []float32{1, 1.5, 2, 2.25, 2.9} {
		assert.InDelta(t, 2*x+1, cr.Eval(x), 1e-5, "x = %g", x)
	}
	assert.Equal(t, float32(7), cr.Eval(3))
	assert.Equal(t, float32(7), cr.Eval(3.5))
}

func TestCatmullRomDegenerateSegment(t *testing.T) {
	xs := []float32{0, 1, 1.000001, 2, 3}
	ys := []float32{0, 1, 6, 2, 3}
	cr := NewCatmullRom(xs, ys)

	y := cr.Eval(1.0000005)
	assert.False(t, math.IsNaN(float64(y)))
	assert.False(t, math.IsInf(float64(y), 0))
	assert.Equal(t, float32(6), y)
}

func TestCatmullRomPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCatmullRom([]float32{0, 1, 2}, []float32{0, 1, 2})
	})
}
