package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/curves/curve"
)

func TestExampleCatalogFile(t *testing.T) {
	wrap := DefaultCatalogWrapper()
	require.NoError(t, gcfg.ReadStringInto(wrap, ExampleCatalogFile))

	con := &wrap.Catalog
	assert.NoError(t, con.Check())
	assert.True(t, con.IsTable())
	assert.Equal(t, "path/to/curves.txt", con.CurveFile)
	assert.Equal(t, 3, con.PointYColumn)

	mask, err := con.Modes()
	require.NoError(t, err)
	assert.Equal(t, curve.AllModes, mask)
}

func TestReadCatalogConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "catalog.cfg")
	body := `[Catalog]
Format = sqlite
Database = curves.db
Mode = Bezier3
Mode = catmullrom
`
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))

	con, err := ReadCatalogConfig(fname)
	require.NoError(t, err)
	assert.True(t, con.IsSQLite())
	assert.Equal(t, "curves.db", con.Database)

	mask, err := con.Modes()
	require.NoError(t, err)
	assert.Equal(t, curve.MaskOf(curve.Bezier3, curve.CatmullRom), mask)
}

func TestCatalogConfigCheck(t *testing.T) {
	table := []struct {
		body string
		ok   bool
	}{
		{"[Catalog]\nFormat = Table\nCurveFile = a\nPointFile = b\n", true},
		{"[Catalog]\nFormat = Table\nCurveFile = a\n", false},
		{"[Catalog]\nFormat = Table\nPointFile = b\n", false},
		{"[Catalog]\nFormat = Table\nCurveFile = a\nPointFile = b\nPointXColumn = -1\n", false},
		{"[Catalog]\nFormat = SQLite\n", false},
		{"[Catalog]\nFormat = DB2\nDatabase = a\n", false},
		{"[Catalog]\nFormat = SQLite\nDatabase = a\nMode = Spline\n", false},
	}

	for i, test := range table {
		wrap := DefaultCatalogWrapper()
		require.NoError(t, gcfg.ReadStringInto(wrap, test.body), "%d", i)
		err := wrap.Catalog.Check()
		if test.ok {
			assert.NoError(t, err, "%d) %q", i, test.body)
		} else {
			assert.Error(t, err, "%d) %q", i, test.body)
		}
	}
}

func TestTableSource(t *testing.T) {
	wrap := DefaultCatalogWrapper()
	body := "[Catalog]\nFormat = Table\nCurveFile = c.txt\nPointFile = p.txt\n" +
		"PointXColumn = 4\nPointYColumn = 5\n"
	require.NoError(t, gcfg.ReadStringInto(wrap, body))

	ts := wrap.Catalog.TableSource()
	assert.Equal(t, "c.txt", ts.CurveFile)
	assert.Equal(t, "p.txt", ts.PointFile)
	assert.Equal(t, 0, ts.PointCurveIDColumn)
	assert.Equal(t, 1, ts.PointIndexColumn)
	assert.Equal(t, 4, ts.PointXColumn)
	assert.Equal(t, 5, ts.PointYColumn)
}
