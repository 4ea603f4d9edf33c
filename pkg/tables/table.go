// Package tables defines the tabular dataset model that crosswalk consumes
// and produces: ordered columns, rows of optional string cells, and the
// null-normalization rules applied before any linking happens.
package tables

import (
	"slices"

	"github.com/crosswalklabs/crosswalk/pkg/errors"
)

// nullMarkers are cell values treated as null on ingestion.
var nullMarkers = []string{"", "N/A"}

// IsNull reports whether a raw cell value is treated as null.
func IsNull(value string) bool {
	return slices.Contains(nullMarkers, value)
}

// Row is one record: a mapping from field name to value. A field absent
// from the map is null for that record.
type Row map[string]string

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for field, value := range r {
		clone[field] = value
	}
	return clone
}

// Table is an in-memory tabular dataset. Columns carry the field order;
// Rows hold the records. Cells holding a null marker are dropped at append
// time, so a stored row never contains null values.
type Table struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`

	seen map[string]bool
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{
		Columns: make([]string, 0, len(columns)),
		seen:    make(map[string]bool, len(columns)),
	}
	for _, c := range columns {
		t.addColumn(c)
	}
	return t
}

// addColumn registers a column once, preserving first-seen order.
func (t *Table) addColumn(name string) {
	if t.seen == nil {
		t.seen = make(map[string]bool, len(t.Columns))
		for _, c := range t.Columns {
			t.seen[c] = true
		}
	}
	if name == "" || t.seen[name] {
		return
	}
	t.seen[name] = true
	t.Columns = append(t.Columns, name)
}

// Append adds a record to the table. Null-marker cells are dropped and
// fields not yet known are appended to the column set, so the table's
// columns are always the union of every field seen.
func (t *Table) Append(row Row) {
	stored := make(Row, len(row))
	for field, value := range row {
		t.addColumn(field)
		if IsNull(value) {
			continue
		}
		stored[field] = value
	}
	t.Rows = append(t.Rows, stored)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Get returns the value of a cell and whether it is non-null.
func (t *Table) Get(row int, field string) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	value, ok := t.Rows[row][field]
	return value, ok
}

// Validate checks that the table has a usable schema. A table with zero
// columns cannot be consolidated and aborts the pipeline before any record
// is processed.
func (t *Table) Validate() error {
	if t == nil {
		return errors.NewSchemaError("nil table")
	}
	if len(t.Columns) == 0 {
		return errors.NewSchemaError("table has no columns")
	}
	colSeen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if c == "" {
			return errors.NewSchemaError("empty column name")
		}
		if colSeen[c] {
			return errors.NewSchemaError("duplicate column name: " + c)
		}
		colSeen[c] = true
	}
	return nil
}

// Equal reports whether two tables hold the same columns in the same order
// and the same rows in the same order.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.Columns, other.Columns) {
		return false
	}
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i, row := range t.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for field, value := range row {
			if ov, ok := other.Rows[i][field]; !ok || ov != value {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	clone := New(t.Columns...)
	for _, row := range t.Rows {
		clone.Append(row)
	}
	return clone
}
