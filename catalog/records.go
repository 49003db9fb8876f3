package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

var (
	// ErrUnknownCurve is returned when a point refers to a curve which is
	// not in the catalog.
	ErrUnknownCurve = errors.New("point refers to unknown curve")
	// ErrDuplicateCurve is returned when two curve records share an ID.
	ErrDuplicateCurve = errors.New("duplicate curve ID")
)

// CurveRecord is the stored description of a single curve.
type CurveRecord struct {
	ID   int
	Type uint8
}

// PointRecord is the stored description of a single knot. It belongs to the
// curve whose ID is CurveID.
type PointRecord struct {
	CurveID int
	Index   uint8
	X, Y    float32
}

// Source is anything which can list curve and point records. Records may be
// returned in any order.
type Source interface {
	Curves() ([]CurveRecord, error)
	Points() ([]PointRecord, error)
}

var (
	_ Source = &TableSource{}
	_ Source = &Store{}
)

// toID converts a numeric column value to a curve ID.
func toID(v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("curve ID %g is not an integer", v)
	}
	return cast.ToIntE(v)
}

// toUint8 converts a numeric column value to a byte-sized field, such as a type
// code or point index.
func toUint8(v float64) (uint8, error) {
	if v != math.Trunc(v) || v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("%g is not an integer in the range [0, 255]", v)
	}
	return cast.ToUint8E(v)
}
