// Package table is a small column-oriented in-memory table with nullable
// typed cells. It is the exchange format between the spreadsheet loader,
// the wrangling pipeline, and the export sinks.
package table

import (
	"fmt"
	"strconv"
)

type kind uint8

const (
	kindNull kind = iota
	kindString
	kindInt
	kindFloat
)

// Cell is a single nullable value: a string, an integer, or a float.
// The zero value is null.
type Cell struct {
	k kind
	s string
	f float64
	i int64
}

// Null returns the null cell.
func Null() Cell { return Cell{} }

// String returns a string cell.
func String(s string) Cell { return Cell{k: kindString, s: s} }

// Int returns an integer cell.
func Int(n int64) Cell { return Cell{k: kindInt, i: n} }

// Float returns a float cell.
func Float(f float64) Cell { return Cell{k: kindFloat, f: f} }

// Bool returns 1 or 0 as an integer cell.
func Bool(b bool) Cell {
	if b {
		return Int(1)
	}
	return Int(0)
}

// IsNull reports whether the cell is null.
func (c Cell) IsNull() bool { return c.k == kindNull }

// AsString returns the string value. ok is false for nulls and numbers.
func (c Cell) AsString() (string, bool) {
	return c.s, c.k == kindString
}

// AsInt returns the integer value. ok is false for nulls, strings, floats.
func (c Cell) AsInt() (int64, bool) {
	return c.i, c.k == kindInt
}

// AsFloat returns the numeric value of an int or float cell.
func (c Cell) AsFloat() (float64, bool) {
	switch c.k {
	case kindInt:
		return float64(c.i), true
	case kindFloat:
		return c.f, true
	}
	return 0, false
}

// Format renders the cell for text output. Nulls render as the empty string.
func (c Cell) Format() string {
	switch c.k {
	case kindString:
		return c.s
	case kindInt:
		return strconv.FormatInt(c.i, 10)
	case kindFloat:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	}
	return ""
}

// Equal reports whether two cells hold the same kind and value.
func (c Cell) Equal(o Cell) bool { return c == o }

// Table holds named columns of equal length. Column order is preserved.
type Table struct {
	names []string
	cols  map[string][]Cell
	rows  int
}

// New returns an empty table expecting columns of length rows.
func New(rows int) *Table {
	return &Table{cols: make(map[string][]Cell), rows: rows}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether a column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the cells of a column.
func (t *Table) Column(name string) ([]Cell, bool) {
	c, ok := t.cols[name]
	return c, ok
}

// Add appends a new column. The name must be unused and the length must
// match the table's row count.
func (t *Table) Add(name string, cells []Cell) error {
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(cells) != t.rows {
		return fmt.Errorf("column %q has %d cells, table has %d rows", name, len(cells), t.rows)
	}
	t.names = append(t.names, name)
	t.cols[name] = cells
	return nil
}

// Drop removes a column if present.
func (t *Table) Drop(name string) {
	if _, ok := t.cols[name]; !ok {
		return
	}
	delete(t.cols, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i], t.names[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy. The wrangling pipeline works on a copy so the
// raw table is never mutated.
func (t *Table) Clone() *Table {
	out := New(t.rows)
	for _, name := range t.names {
		cells := make([]Cell, t.rows)
		copy(cells, t.cols[name])
		out.names = append(out.names, name)
		out.cols[name] = cells
	}
	return out
}
