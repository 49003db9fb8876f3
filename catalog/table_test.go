package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestTableSource(t *testing.T) {
	dir := t.TempDir()
	curveFile := writeFile(t, dir, "curves.txt", "10 0\n20 1\n30 2\n")
	pointFile := writeFile(t, dir, "points.txt",
		"20 1 1 1\n"+
			"10 0 0 0\n"+
			"20 0 0 0\n"+
			"10 1 2 10\n"+
			"30 0 0 0\n"+
			"30 1 1 10\n"+
			"30 2 2 0\n"+
			"20 2 2 4\n"+
			"20 3 3 9\n",
	)

	ts := NewTableSource(curveFile, pointFile)

	curves, err := ts.Curves()
	require.NoError(t, err)
	wantCurves := []CurveRecord{{10, 0}, {20, 1}, {30, 2}}
	if diff := cmp.Diff(wantCurves, curves); diff != "" {
		t.Errorf("curves differ (-want +got):\n%s", diff)
	}

	points, err := ts.Points()
	require.NoError(t, err)
	require.Len(t, points, 9)
	assert.Equal(t, PointRecord{CurveID: 20, Index: 1, X: 1, Y: 1}, points[0])
	assert.Equal(t, PointRecord{CurveID: 10, Index: 1, X: 2, Y: 10}, points[3])

	cat, err := Load(ts, nil)
	require.NoError(t, err)
	c, ok := cat.Get(20)
	require.True(t, ok)
	y, err := c.Eval(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, y, 1e-6)
}

func TestTableSourceColumns(t *testing.T) {
	dir := t.TempDir()
	curveFile := writeFile(t, dir, "curves.txt", "3 99 7\n")
	pointFile := writeFile(t, dir, "points.txt", "0.5 -1 7 4\n")

	ts := NewTableSource(curveFile, pointFile)
	ts.CurveIDColumn, ts.CurveTypeColumn = 2, 0
	ts.PointCurveIDColumn, ts.PointIndexColumn = 2, 3
	ts.PointXColumn, ts.PointYColumn = 1, 0

	curves, err := ts.Curves()
	require.NoError(t, err)
	assert.Equal(t, []CurveRecord{{ID: 7, Type: 3}}, curves)

	points, err := ts.Points()
	require.NoError(t, err)
	assert.Equal(t, []PointRecord{{CurveID: 7, Index: 4, X: -1, Y: 0.5}}, points)
}

func TestTableSourceBadValues(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "1 0\n")

	for _, body := range []string{"1 256\n", "1 -1\n", "1 0.5\n", "1.5 0\n"} {
		bad := writeFile(t, dir, "bad.txt", body)
		_, err := NewTableSource(bad, good).Curves()
		assert.Error(t, err, "curve table %q", body)
	}

	for _, body := range []string{"1 300 0 0\n", "1 2.5 0 0\n", "0.1 0 0 0\n"} {
		bad := writeFile(t, dir, "bad.txt", body)
		_, err := NewTableSource(good, bad).Points()
		assert.Error(t, err, "point table %q", body)
	}

	_, err := NewTableSource(filepath.Join(dir, "missing.txt"), good).Curves()
	assert.Error(t, err)
}
