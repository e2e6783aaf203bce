// Package dataframe provides a small column-oriented table with filtering,
// grouping with aggregation, and missing-data handling. Numeric columns
// use NaN to mark missing values.
package dataframe

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dperussina/code-library/pkg/errors"
)

// Kind is the type of a column.
type Kind int

const (
	// Float columns hold float64 values; NaN marks a missing cell
	Float Kind = iota
	// String columns hold string values
	String
)

// Column is a named, typed column. Exactly one of Floats or Strings is
// populated, matching Kind.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	if c.Kind == Float {
		return len(c.Floats)
	}
	return len(c.Strings)
}

func (c *Column) clone() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Float {
		out.Floats = append([]float64(nil), c.Floats...)
	} else {
		out.Strings = append([]string(nil), c.Strings...)
	}
	return out
}

// Frame is an ordered collection of equally sized columns.
type Frame struct {
	order   []string
	columns map[string]*Column
}

// New builds a Frame from columns, preserving their order. All columns
// must share the same length and have unique names.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{columns: make(map[string]*Column, len(columns))}

	rows := -1
	for i := range columns {
		col := columns[i]
		if _, exists := f.columns[col.Name]; exists {
			return nil, errors.Newf(errors.ErrorTypeValidation, "duplicate column %q", col.Name)
		}
		if rows == -1 {
			rows = col.Len()
		} else if col.Len() != rows {
			return nil, errors.Newf(errors.ErrorTypeValidation,
				"column %q has %d rows, want %d", col.Name, col.Len(), rows)
		}
		f.order = append(f.order, col.Name)
		f.columns[col.Name] = &col
	}

	return f, nil
}

// FromRecords builds a Frame from row maps using the given column order.
// Numeric values (or numeric strings) produce Float columns; anything
// else produces String columns. Missing keys become NaN or "".
func FromRecords(records []map[string]interface{}, columns []string) (*Frame, error) {
	if len(columns) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "no columns given")
	}

	cols := make([]Column, 0, len(columns))
	for _, name := range columns {
		numeric := true
		for _, rec := range records {
			v, ok := rec[name]
			if !ok || v == nil {
				continue
			}
			if _, isNum := toFloat(v); !isNum {
				numeric = false
				break
			}
		}

		col := Column{Name: name}
		if numeric {
			col.Kind = Float
			col.Floats = make([]float64, len(records))
			for i, rec := range records {
				v, ok := rec[name]
				if !ok || v == nil {
					col.Floats[i] = math.NaN()
					continue
				}
				fv, _ := toFloat(v)
				col.Floats[i] = fv
			}
		} else {
			col.Kind = String
			col.Strings = make([]string, len(records))
			for i, rec := range records {
				if v, ok := rec[name]; ok && v != nil {
					col.Strings[i] = fmt.Sprintf("%v", v)
				}
			}
		}
		cols = append(cols, col)
	}

	return New(cols...)
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// NumRows returns the row count.
func (f *Frame) NumRows() int {
	if len(f.order) == 0 {
		return 0
	}
	return f.columns[f.order[0]].Len()
}

// Columns returns column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.order...)
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Column, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "no column %q", name)
	}
	return col, nil
}

// Float returns the float cell at (name, row). NaN for string columns.
func (f *Frame) Float(name string, row int) float64 {
	col, ok := f.columns[name]
	if !ok || col.Kind != Float || row < 0 || row >= col.Len() {
		return math.NaN()
	}
	return col.Floats[row]
}

// String returns the string cell at (name, row), formatting float cells.
func (f *Frame) String(name string, row int) string {
	col, ok := f.columns[name]
	if !ok || row < 0 || row >= col.Len() {
		return ""
	}
	if col.Kind == String {
		return col.Strings[row]
	}
	return strconv.FormatFloat(col.Floats[row], 'g', -1, 64)
}

// Select returns a new Frame with only the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col.clone())
	}
	return New(cols...)
}

// Filter returns a new Frame with the rows for which keep returns true.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	var rows []int
	for i := 0; i < f.NumRows(); i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return f.take(rows)
}

// take builds a new Frame from the given row indices.
func (f *Frame) take(rows []int) *Frame {
	out := &Frame{columns: make(map[string]*Column, len(f.order))}
	for _, name := range f.order {
		src := f.columns[name]
		col := &Column{Name: name, Kind: src.Kind}
		if src.Kind == Float {
			col.Floats = make([]float64, len(rows))
			for i, r := range rows {
				col.Floats[i] = src.Floats[r]
			}
		} else {
			col.Strings = make([]string, len(rows))
			for i, r := range rows {
				col.Strings[i] = src.Strings[r]
			}
		}
		out.order = append(out.order, name)
		out.columns[name] = col
	}
	return out
}

// Records converts the Frame back to row maps. NaN cells are omitted.
func (f *Frame) Records() []map[string]interface{} {
	records := make([]map[string]interface{}, f.NumRows())
	for i := range records {
		rec := make(map[string]interface{}, len(f.order))
		for _, name := range f.order {
			col := f.columns[name]
			if col.Kind == Float {
				if !math.IsNaN(col.Floats[i]) {
					rec[name] = col.Floats[i]
				}
			} else {
				rec[name] = col.Strings[i]
			}
		}
		records[i] = rec
	}
	return records
}
