package interpolate

// The Bezier interpolators are parametrized by the x-span of the whole table:
// t = 0 at the first knot and t = 1 at the last knot used. They do not clamp,
// so inputs outside the span extrapolate the polynomial.

// QuadraticBezier is a quadratic Bezier curve through its first and third
// knots, with the second knot as the control point.
type QuadraticBezier struct {
	xs, ys []float32
}

// NewQuadraticBezier creates a quadratic Bezier interpolator from the first
// three knots of the table.
func NewQuadraticBezier(xs, ys []float32) *QuadraticBezier {
	checkTable("NewQuadraticBezier", xs, ys, 3)
	return &QuadraticBezier{xs, ys}
}

// Eval returns the value of the curve at x. If the knots span no distance in
// x, the control point's value is returned.
func (q *QuadraticBezier) Eval(x float32) float32 {
	xs, ys := q.xs, q.ys
	dx := xs[2] - xs[0]
	if abs32(dx) < Epsilon {
		return ys[1]
	}

	t := (x - xs[0]) / dx
	s := 1 - t
	return s*s*ys[0] + 2*s*t*ys[1] + t*t*ys[2]
}

// EvalAll evaluates the curve at all the given x values. See Linear.EvalAll.
func (q *QuadraticBezier) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(q.Eval, xs, out)
}

// CubicBezier is a cubic Bezier curve through its first and fourth knots, with
// the second and third knots as control points.
type CubicBezier struct {
	xs, ys []float32
}

// NewCubicBezier creates a cubic Bezier interpolator from the first four knots
// of the table.
func NewCubicBezier(xs, ys []float32) *CubicBezier {
	checkTable("NewCubicBezier", xs, ys, 4)
	return &CubicBezier{xs, ys}
}

// Eval returns the value of the curve at x. If the knots span no distance in
// x, the first control point's value is returned.
func (c *CubicBezier) Eval(x float32) float32 {
	xs, ys := c.xs, c.ys
	dx := xs[3] - xs[0]
	if abs32(dx) < Epsilon {
		return ys[1]
	}

	t := (x - xs[0]) / dx
	s := 1 - t
	return s*s*s*ys[0] + 3*t*s*s*ys[1] + 3*t*t*s*ys[2] + t*t*t*ys[3]
}

// EvalAll evaluates the curve at all the given x values. See Linear.EvalAll.
func (c *CubicBezier) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(c.Eval, xs, out)
}

// Bezier is a Bezier curve of arbitrary degree which uses every knot in its
// table. It is evaluated with De Casteljau's algorithm.
type Bezier struct {
	xs, ys []float32
}

// NewBezier creates a Bezier interpolator of degree len(xs) - 1.
//
// xs and ys must not be modified throughout the lifetime of the Bezier.
func NewBezier(xs, ys []float32) *Bezier {
	checkTable("NewBezier", xs, ys, 1)
	return &Bezier{xs, ys}
}

// Eval returns the value of the curve at x. If the knots span no distance in
// x, the last knot's value is returned.
func (b *Bezier) Eval(x float32) float32 {
	xs, ys := b.xs, b.ys
	n := len(ys)
	dx := xs[n-1] - xs[0]
	if abs32(dx) < Epsilon {
		return ys[n-1]
	}
	t := (x - xs[0]) / dx

	// Each pass replaces the first k values with blends of adjacent pairs, so
	// after n-1 passes a single value remains.
	tmp := make([]float32, n)
	copy(tmp, ys)
	for k := n - 1; k > 0; k-- {
		for j := 0; j < k; j++ {
			tmp[j] += t * (tmp[j+1] - tmp[j])
		}
	}
	return tmp[0]
}

// EvalAll evaluates the curve at all the given x values. See Linear.EvalAll.
func (b *Bezier) EvalAll(xs []float32, out ...[]float32) []float32 {
	return evalAll(b.Eval, xs, out)
}
