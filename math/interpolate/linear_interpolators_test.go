package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	c := NewConstant(3.5)
	for _, x := range []float32{-1e6, -1, 0, 1, 1e6} {
		assert.Equal(t, float32(3.5), c.Eval(x), "x = %g", x)
	}
}

func TestLinear(t *testing.T) {
	lin := NewLinear([]float32{0, 1, 3}, []float32{0, 10, 4})

	table := []struct {
		x, y float32
	}{
		{-1, 0}, // clamped below
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 7},
		{3, 4},
		{10, 4}, // clamped above
	}

	for i, test := range table {
		assert.InDelta(t, test.y, lin.Eval(test.x), 1e-6, "%d) x = %g", i, test.x)
	}
}

func TestLinearKnots(t *testing.T) {
	xs := []float32{-2, -0.5, 0.25, 4}
	ys := []float32{7, -3, 11, 0.125}
	lin := NewLinear(xs, ys)
	for i := range xs {
		assert.Equal(t, ys[i], lin.Eval(xs[i]), "knot %d", i)
	}
}

func TestLinearSinglePoint(t *testing.T) {
	lin := NewLinear([]float32{2}, []float32{9})
	assert.Equal(t, float32(9), lin.Eval(0))
	assert.Equal(t, float32(9), lin.Eval(2))
	assert.Equal(t, float32(9), lin.Eval(4))
}

func TestLinearDegenerateSegment(t *testing.T) {
	xs := []float32{0, 1, 1.000001, 2}
	ys := []float32{0, 1, 5, 5}
	lin := NewLinear(xs, ys)

	y := lin.Eval(1.0000005)
	assert.False(t, math.IsNaN(float64(y)))
	assert.False(t, math.IsInf(float64(y), 0))
	assert.Equal(t, float32(5), y)
}

func TestCosine(t *testing.T) {
	cs := NewCosine([]float32{0, 2}, []float32{0, 10})

	assert.Equal(t, float32(0), cs.Eval(-5))
	assert.Equal(t, float32(0), cs.Eval(0))
	assert.InDelta(t, 1.4644661, cs.Eval(0.5), 1e-5)
	assert.InDelta(t, 5, cs.Eval(1), 1e-5)
	assert.Equal(t, float32(10), cs.Eval(2))
	assert.Equal(t, float32(10), cs.Eval(5))

	// The blend is symmetric about the middle of the segment.
	assert.InDelta(t, 10, cs.Eval(0.5)+cs.Eval(1.5), 1e-5)
}

func TestCosineFlatAtKnots(t *testing.T) {
	cs := NewCosine([]float32{0, 1, 2}, []float32{0, 1, 0})
	h := float32(1e-3)
	// A linear blend would move by h per unit step here.
	assert.InDelta(t, 1, cs.Eval(1-h), 1e-5)
	assert.InDelta(t, 1, cs.Eval(1+h), 1e-5)
}

func TestEvalAll(t *testing.T) {
	lin := NewLinear([]float32{0, 1}, []float32{0, 2})
	xs := []float32{-1, 0, 0.25, 0.5, 1, 2}
	exp := []float32{0, 0, 0.5, 1, 2, 2}

	assert.Equal(t, exp, lin.EvalAll(xs))

	out := make([]float32, len(xs))
	res := lin.EvalAll(xs, out)
	assert.Equal(t, exp, out)
	assert.Equal(t, &out[0], &res[0], "output array not reused")
}

func TestConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { NewLinear([]float32{0, 1}, []float32{0}) })
	assert.Panics(t, func() { NewLinear(nil, nil) })
	assert.Panics(t, func() { NewCosine([]float32{}, []float32{}) })
}
