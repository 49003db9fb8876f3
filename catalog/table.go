package catalog

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// TableSource reads records from a pair of whitespace-separated text tables,
// one row per record.
type TableSource struct {
	CurveFile, PointFile string

	// Column indices of the ID and type code in CurveFile.
	CurveIDColumn, CurveTypeColumn int
	// Column indices of the curve ID, point index, x, and y in PointFile.
	PointCurveIDColumn, PointIndexColumn, PointXColumn, PointYColumn int
}

// NewTableSource returns a TableSource which expects curve files laid out as
// "id type" and point files laid out as "curve_id index x y".
func NewTableSource(curveFile, pointFile string) *TableSource {
	return &TableSource{
		CurveFile: curveFile, PointFile: pointFile,
		CurveIDColumn: 0, CurveTypeColumn: 1,
		PointCurveIDColumn: 0, PointIndexColumn: 1,
		PointXColumn: 2, PointYColumn: 3,
	}
}

// Curves reads the curve table.
func (ts *TableSource) Curves() ([]CurveRecord, error) {
	colIdxs := []int{ts.CurveIDColumn, ts.CurveTypeColumn}
	cols, err := table.ReadTable(ts.CurveFile, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	ids, types := cols[0], cols[1]
	recs := make([]CurveRecord, len(ids))
	for i := range recs {
		if recs[i].ID, err = toID(ids[i]); err != nil {
			return nil, fmt.Errorf("%s, row %d: %w", ts.CurveFile, i, err)
		}
		if recs[i].Type, err = toUint8(types[i]); err != nil {
			return nil, fmt.Errorf("%s, row %d: type code %w", ts.CurveFile, i, err)
		}
	}
	return recs, nil
}

// Points reads the point table.
func (ts *TableSource) Points() ([]PointRecord, error) {
	colIdxs := []int{
		ts.PointCurveIDColumn, ts.PointIndexColumn,
		ts.PointXColumn, ts.PointYColumn,
	}
	cols, err := table.ReadTable(ts.PointFile, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	ids, idxs, xs, ys := cols[0], cols[1], cols[2], cols[3]
	recs := make([]PointRecord, len(ids))
	for i := range recs {
		if recs[i].CurveID, err = toID(ids[i]); err != nil {
			return nil, fmt.Errorf("%s, row %d: %w", ts.PointFile, i, err)
		}
		if recs[i].Index, err = toUint8(idxs[i]); err != nil {
			return nil, fmt.Errorf("%s, row %d: index %w", ts.PointFile, i, err)
		}
		recs[i].X, recs[i].Y = float32(xs[i]), float32(ys[i])
	}
	return recs, nil
}
