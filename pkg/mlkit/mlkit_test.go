package mlkit

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dperussina/code-library/pkg/errors"
)

func makeDataset(n int) ([][]float64, []float64) {
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = []float64{float64(i), float64(i * 2)}
		y[i] = float64(i % 2)
	}
	return x, y
}

func TestTrainTestSplitSizes(t *testing.T) {
	x, y := makeDataset(100)

	xTr, xTe, yTr, yTe, err := TrainTestSplit(x, y, DefaultSplitOptions())
	require.NoError(t, err)

	assert.Len(t, xTe, 20)
	assert.Len(t, xTr, 80)
	assert.Len(t, yTe, 20)
	assert.Len(t, yTr, 80)
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	x, y := makeDataset(50)

	_, xTe1, _, _, err := TrainTestSplit(x, y, DefaultSplitOptions())
	require.NoError(t, err)
	_, xTe2, _, _, err := TrainTestSplit(x, y, DefaultSplitOptions())
	require.NoError(t, err)

	assert.Equal(t, xTe1, xTe2)
}

func TestTrainTestSplitStratified(t *testing.T) {
	// 80 of class 0, 20 of class 1
	x := make([][]float64, 100)
	y := make([]float64, 100)
	for i := range x {
		x[i] = []float64{float64(i)}
		if i >= 80 {
			y[i] = 1
		}
	}

	opts := DefaultSplitOptions()
	opts.Stratify = true

	_, _, _, yTe, err := TrainTestSplit(x, y, opts)
	require.NoError(t, err)

	var ones int
	for _, v := range yTe {
		if v == 1 {
			ones++
		}
	}
	// 20% of each class: 16 zeros and 4 ones
	assert.Len(t, yTe, 20)
	assert.Equal(t, 4, ones)
}

func TestTrainTestSplitValidation(t *testing.T) {
	x, _ := makeDataset(10)

	_, _, _, _, err := TrainTestSplit(x, []float64{1}, DefaultSplitOptions())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestKFold(t *testing.T) {
	folds, err := KFold(10, 5, 42, true)
	require.NoError(t, err)
	require.Len(t, folds, 5)

	seen := make(map[int]int)
	for _, fold := range folds {
		assert.Len(t, fold.Test, 2)
		assert.Len(t, fold.Train, 8)
		for _, i := range fold.Test {
			seen[i]++
		}
	}
	// Every row appears in exactly one test fold
	assert.Len(t, seen, 10)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestKFoldUneven(t *testing.T) {
	folds, err := KFold(10, 3, 0, false)
	require.NoError(t, err)

	total := 0
	for _, fold := range folds {
		total += len(fold.Test)
	}
	assert.Equal(t, 10, total)
}

func TestKFoldValidation(t *testing.T) {
	_, err := KFold(3, 1, 0, false)
	require.Error(t, err)

	_, err = KFold(2, 5, 0, false)
	require.Error(t, err)
}

func TestStandardScaler(t *testing.T) {
	x := [][]float64{{1, 10}, {2, 20}, {3, 30}}

	var s StandardScaler
	scaled, err := s.FitTransform(x)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, s.Mean[0], 1e-12)
	assert.InDelta(t, 20.0, s.Mean[1], 1e-12)

	// Each column has zero mean after scaling
	for j := 0; j < 2; j++ {
		sum := 0.0
		for i := range scaled {
			sum += scaled[i][j]
		}
		assert.InDelta(t, 0.0, sum, 1e-9)
	}

	// Transform of the mean row is all zeros
	mid, err := s.Transform([][]float64{{2, 20}})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mid[0][0], 1e-12)
	assert.InDelta(t, 0.0, mid[0][1], 1e-12)
}

func TestStandardScalerConstantColumn(t *testing.T) {
	var s StandardScaler
	scaled, err := s.FitTransform([][]float64{{5}, {5}, {5}})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, scaled[0][0], 1e-12)
}

func TestStandardScalerNotFitted(t *testing.T) {
	var s StandardScaler
	_, err := s.Transform([][]float64{{1}})
	require.Error(t, err)
}

func TestClassificationMetrics(t *testing.T) {
	yTrue := []int{1, 0, 1, 1, 0, 1}
	yPred := []int{1, 0, 0, 1, 1, 1}

	report, err := ClassificationMetrics(yTrue, yPred)
	require.NoError(t, err)

	// tp=3 tn=1 fp=1 fn=1
	assert.InDelta(t, 4.0/6, report.Accuracy, 1e-12)
	assert.InDelta(t, 3.0/4, report.Precision, 1e-12)
	assert.InDelta(t, 3.0/4, report.Recall, 1e-12)
	assert.InDelta(t, 3.0/4, report.F1, 1e-12)
}

func TestClassificationMetricsNoPositives(t *testing.T) {
	report, err := ClassificationMetrics([]int{0, 0}, []int{0, 0})
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.Accuracy)
	assert.Equal(t, 0.0, report.Precision)
	assert.Equal(t, 0.0, report.F1)
}

func TestRegressionMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1.1, 1.9, 3.2, 3.8}

	report, err := RegressionMetrics(yTrue, yPred)
	require.NoError(t, err)

	wantMSE := (0.01 + 0.01 + 0.04 + 0.04) / 4
	assert.InDelta(t, wantMSE, report.MSE, 1e-9)
	assert.InDelta(t, math.Sqrt(wantMSE), report.RMSE, 1e-9)
	assert.Greater(t, report.R2, 0.9)
}

func TestRegressionMetricsPerfectFit(t *testing.T) {
	y := []float64{1, 2, 3}
	report, err := RegressionMetrics(y, y)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.MSE)
	assert.InDelta(t, 1.0, report.R2, 1e-12)
}

func TestSaveLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaler.gob")

	var s StandardScaler
	_, err := s.FitTransform([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, SaveModel(path, &s))

	var loaded StandardScaler
	require.NoError(t, LoadModel(path, &loaded))
	assert.Equal(t, s.Mean, loaded.Mean)
	assert.Equal(t, s.Std, loaded.Std)
}

func TestLoadModelMissing(t *testing.T) {
	var s StandardScaler
	err := LoadModel(filepath.Join(t.TempDir(), "missing.gob"), &s)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}
