package interpolate

// CatmullRom is a Catmull-Rom spline. Each segment is a cubic which depends on
// the two knots bounding it and one knot to either side, so the first and
// last knots only shape the tangents at the ends of the curve and are never
// reached.
type CatmullRom struct {
	xs, ys []float32
}

// NewCatmullRom creates a Catmull-Rom spline through the table given by xs and
// ys. At least four knots are required.
//
// xs and ys must not be modified throughout the lifetime of the CatmullRom.
func NewCatmullRom(xs, ys []float32) *CatmullRom {
	checkTable("NewCatmullRom", xs, ys, 4)
	return &CatmullRom{xs, ys}
}

// Eval computes the value of the spline at x. Inputs before the second knot
// return the second knot's value and inputs past the second-to-last knot
// return the second-to-last knot's value.
func (cr *CatmullRom) Eval(x float32) float32 {
	xs, ys := cr.xs, cr.ys
	n := len(xs)

	i := scanAbove(xs, x, 1)
	if i == 1 {
		return ys[1]
	} else if i >= n-1 {
		return ys[n-2]
	}

	dx := xs[i] - xs[i-1]
	if abs32(dx) < Epsilon {
		return ys[i]
	}
	t := (x - xs[i-1]) / dx

	p0, p1, p2, p3 := ys[i-2], ys[i-1], ys[i], ys[i+1]
	a0 := -0.5*p0 + 1.5*p1 - 1.5*p2 + 0.5*p3
	a1 := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	a2 := -0.5*p0 + 0.5*p2
	a3 := p1

	return a0*t*t*t + a1*t*t + a2*t + a3
}

// EvalAll evaluates the spline at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
func (cr *CatmullRom) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(cr.Eval, xs, out)
}
