/*
Package catalog assembles curves from the curve and point records held in an
external store and answers the lookups a viewer needs: by ID, and by
interpolation mode.
*/
package catalog

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/curves/curve"
	"github.com/sgostarter/i/l"
)

// Catalog is a read-only collection of sorted curves. It is safe for
// concurrent use once constructed.
type Catalog struct {
	curves []*curve.Curve
	byID   map[int]*curve.Curve
}

// Load reads every record from src and assembles them into a Catalog. logger
// may be nil.
func Load(src Source, logger l.Wrapper) (*Catalog, error) {
	curves, err := src.Curves()
	if err != nil {
		return nil, fmt.Errorf("read curves: %w", err)
	}
	points, err := src.Points()
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return New(curves, points, logger)
}

// New builds a Catalog from curve and point records. Each point is attached to
// the curve with the matching ID and every curve is sorted once all points
// have been added. logger may be nil.
func New(
	curves []CurveRecord, points []PointRecord, logger l.Wrapper,
) (*Catalog, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "catalog"))

	cat := &Catalog{
		curves: make([]*curve.Curve, 0, len(curves)),
		byID:   make(map[int]*curve.Curve, len(curves)),
	}

	for _, rec := range curves {
		if _, ok := cat.byID[rec.ID]; ok {
			logger.WithFields(l.IntField("curveID", rec.ID)).Error("duplicate curve record")
			return nil, fmt.Errorf("curve %d: %w", rec.ID, ErrDuplicateCurve)
		}
		c := curve.New(rec.ID, rec.Type)
		cat.curves = append(cat.curves, c)
		cat.byID[rec.ID] = c
	}

	for _, rec := range points {
		c, ok := cat.byID[rec.CurveID]
		if !ok {
			logger.WithFields(
				l.IntField("curveID", rec.CurveID),
				l.IntField("index", int(rec.Index)),
			).Error("point record for unknown curve")
			return nil, fmt.Errorf(
				"point %d of curve %d: %w", rec.Index, rec.CurveID, ErrUnknownCurve,
			)
		}
		c.Add(curve.Point{Index: rec.Index, X: rec.X, Y: rec.Y})
	}

	for _, c := range cat.curves {
		c.Sort()
	}
	sort.Slice(cat.curves, func(i, j int) bool {
		return cat.curves[i].ID() < cat.curves[j].ID()
	})

	logger.WithFields(
		l.IntField("curves", len(curves)), l.IntField("points", len(points)),
	).Debug("catalog assembled")

	return cat, nil
}

// Len returns the number of curves in the catalog.
func (cat *Catalog) Len() int { return len(cat.curves) }

// Get returns the curve with the given ID.
func (cat *Catalog) Get(id int) (*curve.Curve, bool) {
	c, ok := cat.byID[id]
	return c, ok
}

// Curves returns every curve in the catalog ordered by ID. The returned slice
// must not be modified.
func (cat *Catalog) Curves() []*curve.Curve { return cat.curves }

// Select returns the curves whose mode is in mask, ordered by number of
// points and then by ID.
func (cat *Catalog) Select(mask curve.ModeMask) []*curve.Curve {
	out := []*curve.Curve{}
	for _, c := range cat.curves {
		if mask.Has(c.Mode()) {
			out = append(out, c)
		}
	}
	// cat.curves is already in ID order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Len() < out[j].Len()
	})
	return out
}

// Records converts the catalog back into records. Points are listed curve by
// curve in index order.
func (cat *Catalog) Records() ([]CurveRecord, []PointRecord) {
	curves := make([]CurveRecord, len(cat.curves))
	points := []PointRecord{}
	for i, c := range cat.curves {
		curves[i] = CurveRecord{ID: c.ID(), Type: c.Type()}
		for _, p := range c.Points() {
			points = append(points, PointRecord{
				CurveID: c.ID(), Index: p.Index, X: p.X, Y: p.Y,
			})
		}
	}
	return curves, points
}
