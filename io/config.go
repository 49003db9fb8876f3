package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/curves/catalog"
	"github.com/phil-mansfield/curves/curve"
)

const (
	ExampleCatalogFile = `[Catalog]

#######################
# Required Parameters #
#######################

# The format the curve records are stored in. Must be one of
# [ Table | SQLite ].
Format = Table

# Table format: two whitespace-separated text files. By default the curve file
# has the columns "id type" and the point file has the columns
# "curve_id index x y".
CurveFile = path/to/curves.txt
PointFile = path/to/points.txt

# SQLite format: a database written by -Import.
# Database = path/to/curves.db

#######################
# Optional Parameters #
#######################

# Column indices for Table format, counting from zero. You only need these if
# your tables have extra columns or use a different order.
# CurveIDColumn = 0
# CurveTypeColumn = 1
# PointCurveIDColumn = 0
# PointIndexColumn = 1
# PointXColumn = 2
# PointYColumn = 3

# Restricts -List to curves evaluated with the given interpolation modes. Can be
# repeated. Modes are Constant, Linear, Cosine, Bezier, Bezier3, Bezier4, and
# CatmullRom. All modes are listed if no Mode is given.
# Mode = CatmullRom
# Mode = Bezier

# LogFile = log.out`
)

// Supported values of CatalogConfig.Format.
const (
	TableFormat  = "Table"
	SQLiteFormat = "SQLite"
)

type CatalogConfig struct {
	// Required
	Format string

	// Table format
	CurveFile, PointFile string
	CurveIDColumn, CurveTypeColumn int
	PointCurveIDColumn, PointIndexColumn int
	PointXColumn, PointYColumn int

	// SQLite format
	Database string

	// Optional
	Mode []string
	LogFile string
}

type CatalogWrapper struct {
	Catalog CatalogConfig
}

// DefaultCatalogWrapper returns a wrapper whose column indices are set to the
// default table layout.
func DefaultCatalogWrapper() *CatalogWrapper {
	con := CatalogConfig{}
	con.CurveIDColumn, con.CurveTypeColumn = 0, 1
	con.PointCurveIDColumn, con.PointIndexColumn = 0, 1
	con.PointXColumn, con.PointYColumn = 2, 3
	return &CatalogWrapper{con}
}

// ReadCatalogConfig reads the [Catalog] section of the given file and checks
// that it is complete.
func ReadCatalogConfig(fname string) (*CatalogConfig, error) {
	wrap := DefaultCatalogWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Catalog.Check(); err != nil {
		return nil, err
	}
	return &wrap.Catalog, nil
}

func (con *CatalogConfig) ValidFormat() bool {
	return con.IsTable() || con.IsSQLite()
}
func (con *CatalogConfig) IsTable() bool {
	return strings.EqualFold(con.Format, TableFormat)
}
func (con *CatalogConfig) IsSQLite() bool {
	return strings.EqualFold(con.Format, SQLiteFormat)
}
func (con *CatalogConfig) ValidCurveFile() bool {
	return con.CurveFile != ""
}
func (con *CatalogConfig) ValidPointFile() bool {
	return con.PointFile != ""
}
func (con *CatalogConfig) ValidDatabase() bool {
	return con.Database != ""
}
func (con *CatalogConfig) ValidColumns() bool {
	cols := []int{
		con.CurveIDColumn, con.CurveTypeColumn,
		con.PointCurveIDColumn, con.PointIndexColumn,
		con.PointXColumn, con.PointYColumn,
	}
	for _, col := range cols {
		if col < 0 {
			return false
		}
	}
	return true
}
func (con *CatalogConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// Check returns an error describing the first problem with the config, if
// any.
func (con *CatalogConfig) Check() error {
	if !con.ValidFormat() {
		return fmt.Errorf(
			"Invalid/non-existent 'Format' value, '%s'. Must be '%s' or '%s'.",
			con.Format, TableFormat, SQLiteFormat,
		)
	}

	if con.IsTable() {
		if !con.ValidCurveFile() {
			return fmt.Errorf("Invalid/non-existent 'CurveFile' value.")
		} else if !con.ValidPointFile() {
			return fmt.Errorf("Invalid/non-existent 'PointFile' value.")
		} else if !con.ValidColumns() {
			return fmt.Errorf("Column indices must be non-negative.")
		}
	} else if !con.ValidDatabase() {
		return fmt.Errorf("Invalid/non-existent 'Database' value.")
	}

	_, err := con.Modes()
	return err
}

// Modes returns the set of modes named by the Mode variables. If none are
// given, every mode is included.
func (con *CatalogConfig) Modes() (curve.ModeMask, error) {
	if len(con.Mode) == 0 {
		return curve.AllModes, nil
	}

	var mask curve.ModeMask
	for _, name := range con.Mode {
		m, ok := curve.ModeFromString(name)
		if !ok {
			return 0, fmt.Errorf("Unrecognized 'Mode' value, '%s'.", name)
		}
		mask = mask.Add(m)
	}
	return mask, nil
}

// TableSource returns a source reading the Table format files named by the
// config.
func (con *CatalogConfig) TableSource() *catalog.TableSource {
	ts := catalog.NewTableSource(con.CurveFile, con.PointFile)
	ts.CurveIDColumn, ts.CurveTypeColumn = con.CurveIDColumn, con.CurveTypeColumn
	ts.PointCurveIDColumn = con.PointCurveIDColumn
	ts.PointIndexColumn = con.PointIndexColumn
	ts.PointXColumn, ts.PointYColumn = con.PointXColumn, con.PointYColumn
	return ts
}
