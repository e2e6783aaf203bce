package dataframe

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/dperussina/code-library/pkg/errors"
)

// AggOp is an aggregation operator.
type AggOp string

const (
	// Sum adds the non-missing values of a group
	Sum AggOp = "sum"
	// Mean averages the non-missing values of a group
	Mean AggOp = "mean"
	// Min takes the smallest non-missing value of a group
	Min AggOp = "min"
	// Max takes the largest non-missing value of a group
	Max AggOp = "max"
	// Count counts all rows of a group, missing or not
	Count AggOp = "count"
)

// Agg describes one output column of a GroupBy: apply Op to Column and
// name the result As.
type Agg struct {
	As     string
	Column string
	Op     AggOp
}

// GroupBy groups rows by the values of the key column and computes the
// given aggregations. Group order follows first appearance in the frame.
// The result has the key column first, then one Float column per Agg.
func (f *Frame) GroupBy(key string, aggs ...Agg) (*Frame, error) {
	keyCol, err := f.Column(key)
	if err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "no aggregations given")
	}

	for _, agg := range aggs {
		col, err := f.Column(agg.Column)
		if err != nil {
			return nil, err
		}
		if col.Kind != Float && agg.Op != Count {
			return nil, errors.Newf(errors.ErrorTypeValidation,
				"cannot apply %s to string column %q", agg.Op, agg.Column)
		}
	}

	// Bucket row indices by group key, first-seen order
	var groupOrder []string
	groups := make(map[string][]int)
	for i := 0; i < f.NumRows(); i++ {
		k := f.String(key, i)
		if _, seen := groups[k]; !seen {
			groupOrder = append(groupOrder, k)
		}
		groups[k] = append(groups[k], i)
	}

	out := make([]Column, 0, len(aggs)+1)
	if keyCol.Kind == String {
		keys := Column{Name: key, Kind: String, Strings: groupOrder}
		out = append(out, keys)
	} else {
		keys := Column{Name: key, Kind: Float, Floats: make([]float64, len(groupOrder))}
		for gi, k := range groupOrder {
			keys.Floats[gi] = keyCol.Floats[groups[k][0]]
		}
		out = append(out, keys)
	}

	for _, agg := range aggs {
		col := Column{Name: agg.As, Kind: Float, Floats: make([]float64, len(groupOrder))}
		src := f.columns[agg.Column]
		for gi, k := range groupOrder {
			col.Floats[gi] = aggregate(src, groups[k], agg.Op)
		}
		out = append(out, col)
	}

	return New(out...)
}

func aggregate(col *Column, rows []int, op AggOp) float64 {
	if op == Count {
		return float64(len(rows))
	}

	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		v := col.Floats[r]
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return math.NaN()
	}

	switch op {
	case Sum:
		total := 0.0
		for _, v := range values {
			total += v
		}
		return total
	case Mean:
		return stat.Mean(values, nil)
	case Min:
		minV := values[0]
		for _, v := range values[1:] {
			if v < minV {
				minV = v
			}
		}
		return minV
	case Max:
		maxV := values[0]
		for _, v := range values[1:] {
			if v > maxV {
				maxV = v
			}
		}
		return maxV
	default:
		return math.NaN()
	}
}
