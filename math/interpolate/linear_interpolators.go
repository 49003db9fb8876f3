package interpolate

import (
	"math"
)

/////////////////////////////
// Constant Implementation //
/////////////////////////////

// Constant is an interpolator which ignores its input.
type Constant struct {
	y float32
}

// NewConstant creates an interpolator which always evaluates to y.
func NewConstant(y float32) *Constant {
	return &Constant{y}
}

// Eval returns the constant value.
func (c *Constant) Eval(x float32) float32 { return c.y }

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (c *Constant) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(c.Eval, xs, out)
}

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a piecewise linear interpolator which is flat outside the range
// of its knots.
type Linear struct {
	xs, ys []float32
}

// NewLinear creates a linear interpolator for a sequence of non-decreasing
// points, xs, which take on the values given by ys.
//
// xs and ys must not be modified throughout the lifetime of the Linear.
func NewLinear(xs, ys []float32) *Linear {
	checkTable("NewLinear", xs, ys, 1)
	return &Linear{xs, ys}
}

// Eval returns the interpolated value at x. Values of x below the first knot
// return the first knot's value and values above the last knot return the last
// knot's value.
func (lin *Linear) Eval(x float32) float32 {
	i, t, y, ok := bracket(lin.xs, lin.ys, x)
	if !ok {
		return y
	}
	y0, y1 := lin.ys[i-1], lin.ys[i]
	return y0 + t*(y1-y0)
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(lin.Eval, xs, out)
}

///////////////////////////
// Cosine Implementation //
///////////////////////////

// Cosine interpolates between adjacent knots with a half cosine wave, so the
// curve has zero slope at every knot.
type Cosine struct {
	xs, ys []float32
}

// NewCosine creates a cosine interpolator. It has the same requirements on
// its input as NewLinear.
func NewCosine(xs, ys []float32) *Cosine {
	checkTable("NewCosine", xs, ys, 1)
	return &Cosine{xs, ys}
}

// Eval returns the interpolated value at x. It clamps in the same way that
// Linear.Eval does.
func (cs *Cosine) Eval(x float32) float32 {
	i, t, y, ok := bracket(cs.xs, cs.ys, x)
	if !ok {
		return y
	}
	y0, y1 := cs.ys[i-1], cs.ys[i]
	mu := (1 - math.Cos(float64(t)*math.Pi)) / 2
	return y0 + (y1-y0)*float32(mu)
}

// EvalAll evaluates the interpolator at all the given x values. See
// Linear.EvalAll.
func (cs *Cosine) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(cs.Eval, xs, out)
}

// bracket locates the segment [xs[i-1], xs[i]] which x falls in and returns
// the fractional position of x within it. If x is outside the table or the
// segment is too narrow to interpolate across, ok is false and y is the value
// which should be returned instead.
func bracket(xs, ys []float32, x float32) (i int, t, y float32, ok bool) {
	i = scanAbove(xs, x, 0)
	if i == 0 {
		return 0, 0, ys[0], false
	} else if i == len(xs) {
		return i, 0, ys[len(ys)-1], false
	}

	dx := xs[i] - xs[i-1]
	if abs32(dx) < Epsilon {
		return i, 0, ys[i], false
	}
	return i, (x - xs[i-1]) / dx, 0, true
}
