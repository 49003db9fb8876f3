/*
Package curve contains typed curves defined by a small number of knots and
the rules for choosing how they are interpolated.

A Curve is filled with Add, put in order with Sort, and only read afterwards.
Any number of goroutines may call Eval on a sorted Curve at once, but Add and
Sort must not run concurrently with anything else touching the same Curve.
*/
package curve

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/curves/math/interpolate"
)

// Point is a single knot of a curve.
type Point struct {
	// Index is the knot's position in its curve. Curves are ordered by Index,
	// not by X.
	Index uint8
	X, Y  float32
}

// Curve is a typed, ordered sequence of knots.
type Curve struct {
	id     int
	typ    uint8
	points []Point

	// intr is the interpolator for the curve's own mode. It is built by Sort
	// and discarded by Add.
	intr interpolate.Interpolator
	err  error
}

// New creates an empty curve with the given identifier and type code.
func New(id int, typeCode uint8) *Curve {
	return &Curve{id: id, typ: typeCode}
}

func (c *Curve) ID() int     { return c.id }
func (c *Curve) Type() uint8 { return c.typ }
func (c *Curve) Len() int    { return len(c.points) }

// Points returns the curve's knots. The returned slice must not be modified.
func (c *Curve) Points() []Point { return c.points }

// Add appends knots to the curve. Sort must be called before the curve is
// next evaluated.
func (c *Curve) Add(ps ...Point) {
	c.points = append(c.points, ps...)
	c.intr, c.err = nil, nil
}

// Sort orders the curve's knots by Index and prepares the curve for
// evaluation. Knots which share an Index keep the order they were added in.
func (c *Curve) Sort() {
	sort.SliceStable(c.points, func(i, j int) bool {
		return c.points[i].Index < c.points[j].Index
	})
	c.intr, c.err = c.Interpolator(c.Mode())
}

// Mode returns the interpolation mode implied by the curve's type code and
// number of points.
func (c *Curve) Mode() Mode {
	return DetermineMode(c.typ, len(c.points))
}

// Eval returns the value of the curve at x. An error is returned if the curve
// has too few points for its mode.
//
// Eval assumes that the curve's knots are in order and does not check this.
func (c *Curve) Eval(x float32) (float32, error) {
	intr, err := c.interpolator()
	if err != nil {
		return 0, err
	}
	return intr.Eval(x), nil
}

// EvalAll evaluates the curve at all the given x values. If an output array
// is given, the output is written to that array.
func (c *Curve) EvalAll(xs []float32, out ...[]float32) ([]float32, error) {
	intr, err := c.interpolator()
	if err != nil {
		return nil, err
	}
	return intr.EvalAll(xs, out...), nil
}

// interpolator returns the cached interpolator if Sort has been called since
// the last Add, and builds a temporary one otherwise. It never writes to c.
func (c *Curve) interpolator() (interpolate.Interpolator, error) {
	if c.intr != nil || c.err != nil {
		return c.intr, c.err
	}
	return c.Interpolator(c.Mode())
}

// Interpolator returns an interpolator over the curve's current knots using
// the given mode, which need not be the curve's own. The interpolator keeps a
// copy of the knots, so later calls to Add are not seen by it.
func (c *Curve) Interpolator(mode Mode) (interpolate.Interpolator, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
	}

	n := len(c.points)
	if n == 0 || n < mode.MinPoints() {
		return nil, &PreconditionError{
			CurveID: c.id, Mode: mode, Points: n, MinPoints: mode.MinPoints(),
		}
	}

	if mode == Constant {
		return interpolate.NewConstant(c.points[0].Y), nil
	}

	xs, ys := make([]float32, n), make([]float32, n)
	for i, p := range c.points {
		xs[i], ys[i] = p.X, p.Y
	}

	switch mode {
	case Linear:
		return interpolate.NewLinear(xs, ys), nil
	case Cosine:
		return interpolate.NewCosine(xs, ys), nil
	case CatmullRom:
		return interpolate.NewCatmullRom(xs, ys), nil
	case Bezier3:
		return interpolate.NewQuadraticBezier(xs, ys), nil
	case Bezier4:
		return interpolate.NewCubicBezier(xs, ys), nil
	case Bezier:
		return interpolate.NewBezier(xs, ys), nil
	}
	panic(fmt.Sprintf("Mode %s passed Valid() but has no interpolator.", mode))
}

// String returns a short description of the curve, e.g. "Curve #12 (4
// points)".
func (c *Curve) String() string {
	return fmt.Sprintf("Curve #%d (%d points)", c.id, len(c.points))
}
