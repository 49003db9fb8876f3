/*
Package interpolate implements the one-dimensional interpolation schemes used
to evaluate curves defined by a small table of knots.

Every interpolator is built from a table of x values, xs, and the values the
curve takes at those points, ys. The x values are expected to be sorted in
non-decreasing order; this is not checked. Constructors panic if handed a
table which is too short for the scheme, so callers which cannot trust their
input should check point counts beforehand.
*/
package interpolate

import (
	"fmt"
)

// Epsilon is the smallest x-separation which is interpolated across. Knots
// closer together than this are treated as a step.
const Epsilon float32 = 1e-5

type Interpolator interface {
	Eval(x float32) float32
	EvalAll(xs []float32, out ...[]float32) []float32
}

var (
	_ Interpolator = &Constant{}
	_ Interpolator = &Linear{}
	_ Interpolator = &Cosine{}
	_ Interpolator = &CatmullRom{}
	_ Interpolator = &QuadraticBezier{}
	_ Interpolator = &CubicBezier{}
	_ Interpolator = &Bezier{}
)

// checkTable panics if xs and ys cannot be used by a scheme requiring at
// least minPoints knots.
func checkTable(name string, xs, ys []float32, minPoints int) {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"Table given to %s() has len(xs) = %d but len(ys) = %d.",
			name, len(xs), len(ys),
		))
	} else if len(xs) < minPoints {
		panic(fmt.Sprintf(
			"Table given to %s() has length %d, but at least %d are needed.",
			name, len(xs), minPoints,
		))
	}
}

// evalAll writes eval(xs[i]) to the first output array, allocating it if
// none is given.
func evalAll(
	eval func(float32) float32, xs []float32, out [][]float32,
) []float32 {
	if len(out) == 0 {
		out = [][]float32{make([]float32, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = eval(x)
	}
	return out[0]
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// scanAbove returns the smallest index i >= lo such that xs[i] > x, or
// len(xs) if there is no such index. A knot sitting exactly at x is stepped
// over.
func scanAbove(xs []float32, x float32, lo int) int {
	i := lo
	for i < len(xs) && xs[i] <= x {
		i++
	}
	return i
}
