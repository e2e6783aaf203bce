package dataframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupingFrame(t *testing.T) *Frame {
	t.Helper()

	f, err := New(
		Column{Name: "category", Kind: String, Strings: []string{"A", "B", "A", "B", "A"}},
		Column{Name: "value", Kind: Float, Floats: []float64{10, 20, 15, 25, 12}},
		Column{Name: "count", Kind: Float, Floats: []float64{1, 2, 3, 1, 2}},
	)
	require.NoError(t, err)
	return f
}

func TestGroupBy(t *testing.T) {
	f := groupingFrame(t)

	got, err := f.GroupBy("category",
		Agg{As: "total_value", Column: "value", Op: Sum},
		Agg{As: "average_value", Column: "value", Op: Mean},
		Agg{As: "max_count", Column: "count", Op: Max},
		Agg{As: "num_records", Column: "value", Op: Count},
	)
	require.NoError(t, err)

	// First-seen group order: A then B
	assert.Equal(t, 2, got.NumRows())
	assert.Equal(t, "A", got.String("category", 0))
	assert.Equal(t, "B", got.String("category", 1))

	assert.InDelta(t, 37.0, got.Float("total_value", 0), 1e-12)
	assert.InDelta(t, 45.0, got.Float("total_value", 1), 1e-12)
	assert.InDelta(t, 37.0/3, got.Float("average_value", 0), 1e-12)
	assert.InDelta(t, 3.0, got.Float("max_count", 0), 1e-12)
	assert.InDelta(t, 2.0, got.Float("max_count", 1), 1e-12)
	assert.InDelta(t, 3.0, got.Float("num_records", 0), 1e-12)
}

func TestGroupByMinSkipsMissing(t *testing.T) {
	f, err := New(
		Column{Name: "g", Kind: String, Strings: []string{"x", "x", "x"}},
		Column{Name: "v", Kind: Float, Floats: []float64{math.NaN(), 5, 3}},
	)
	require.NoError(t, err)

	got, err := f.GroupBy("g", Agg{As: "min_v", Column: "v", Op: Min})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got.Float("min_v", 0), 1e-12)
}

func TestGroupByErrors(t *testing.T) {
	f := groupingFrame(t)

	_, err := f.GroupBy("missing", Agg{As: "x", Column: "value", Op: Sum})
	require.Error(t, err)

	_, err = f.GroupBy("category")
	require.Error(t, err)

	// Sum over a string column is rejected; Count is allowed
	_, err = f.GroupBy("category", Agg{As: "x", Column: "category", Op: Sum})
	require.Error(t, err)

	_, err = f.GroupBy("category", Agg{As: "n", Column: "category", Op: Count})
	require.NoError(t, err)
}
