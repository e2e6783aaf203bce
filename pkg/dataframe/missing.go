package dataframe

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DropNA returns a new Frame without the rows that have a missing value
// in any float column.
func (f *Frame) DropNA() *Frame {
	return f.Filter(func(row int) bool {
		for _, name := range f.order {
			col := f.columns[name]
			if col.Kind == Float && math.IsNaN(col.Floats[row]) {
				return false
			}
		}
		return true
	})
}

// FillNA returns a new Frame with missing float cells replaced by value.
func (f *Frame) FillNA(value float64) *Frame {
	out := f.copyAll()
	for _, name := range out.order {
		col := out.columns[name]
		if col.Kind != Float {
			continue
		}
		for i, v := range col.Floats {
			if math.IsNaN(v) {
				col.Floats[i] = value
			}
		}
	}
	return out
}

// FillNAMean returns a new Frame with missing cells in each float column
// replaced by that column's mean over its non-missing values. A column
// with no values at all is left untouched.
func (f *Frame) FillNAMean() *Frame {
	out := f.copyAll()
	for _, name := range out.order {
		col := out.columns[name]
		if col.Kind != Float {
			continue
		}

		present := make([]float64, 0, len(col.Floats))
		for _, v := range col.Floats {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}
		if len(present) == 0 {
			continue
		}

		mean := stat.Mean(present, nil)
		for i, v := range col.Floats {
			if math.IsNaN(v) {
				col.Floats[i] = mean
			}
		}
	}
	return out
}

func (f *Frame) copyAll() *Frame {
	out := &Frame{columns: make(map[string]*Column, len(f.order))}
	for _, name := range f.order {
		col := f.columns[name].clone()
		out.order = append(out.order, name)
		out.columns[name] = &col
	}
	return out
}
