// Package mlkit provides model-development helpers: dataset splitting,
// feature scaling, evaluation metrics, and model persistence.
package mlkit

import (
	"math"
	"math/rand"

	"github.com/dperussina/code-library/pkg/errors"
)

// SplitOptions controls TrainTestSplit behavior.
type SplitOptions struct {
	// TestSize is the fraction held out for testing (0, 1); defaults to 0.2
	TestSize float64
	// Seed makes the split deterministic
	Seed int64
	// Shuffle randomizes row order before splitting; defaults to true
	// via DefaultSplitOptions
	Shuffle bool
	// Stratify preserves per-class proportions of y in both halves
	Stratify bool
}

// DefaultSplitOptions mirrors the common defaults: 20% test, shuffled,
// fixed seed 42.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{TestSize: 0.2, Seed: 42, Shuffle: true}
}

// TrainTestSplit splits features X and targets y into train and test
// subsets. The split is deterministic for a fixed seed.
func TrainTestSplit(x [][]float64, y []float64, opts SplitOptions) (xTrain, xTest [][]float64, yTrain, yTest []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, nil, errors.Newf(errors.ErrorTypeValidation,
			"X has %d rows but y has %d", len(x), len(y))
	}
	if opts.TestSize <= 0 {
		opts.TestSize = 0.2
	}
	if opts.TestSize >= 1 {
		return nil, nil, nil, nil, errors.New(errors.ErrorTypeValidation, "test size must be below 1")
	}

	n := len(x)
	if n < 2 {
		return nil, nil, nil, nil, errors.New(errors.ErrorTypeValidation, "need at least 2 samples")
	}

	var testIdx []int
	if opts.Stratify {
		testIdx = stratifiedTestIndices(y, opts)
	} else {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		if opts.Shuffle {
			rng := rand.New(rand.NewSource(opts.Seed))
			rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		testCount := int(math.Round(float64(n) * opts.TestSize))
		if testCount == 0 {
			testCount = 1
		}
		testIdx = order[:testCount]
	}

	inTest := make(map[int]bool, len(testIdx))
	for _, i := range testIdx {
		inTest[i] = true
	}

	for i := 0; i < n; i++ {
		if inTest[i] {
			xTest = append(xTest, x[i])
			yTest = append(yTest, y[i])
		} else {
			xTrain = append(xTrain, x[i])
			yTrain = append(yTrain, y[i])
		}
	}

	return xTrain, xTest, yTrain, yTest, nil
}

// stratifiedTestIndices picks a proportional sample of each class.
func stratifiedTestIndices(y []float64, opts SplitOptions) []int {
	byClass := make(map[float64][]int)
	var classOrder []float64
	for i, label := range y {
		if _, seen := byClass[label]; !seen {
			classOrder = append(classOrder, label)
		}
		byClass[label] = append(byClass[label], i)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	var testIdx []int
	for _, label := range classOrder {
		idx := byClass[label]
		if opts.Shuffle {
			rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		}
		take := int(math.Round(float64(len(idx)) * opts.TestSize))
		if take == 0 && len(idx) > 1 {
			take = 1
		}
		testIdx = append(testIdx, idx[:take]...)
	}
	return testIdx
}

// Fold is one cross-validation split of row indices.
type Fold struct {
	Train []int
	Test  []int
}

// KFold returns nSplits folds over n rows. With shuffle enabled the row
// order is randomized by seed before folding.
func KFold(n, nSplits int, seed int64, shuffle bool) ([]Fold, error) {
	if nSplits < 2 {
		return nil, errors.New(errors.ErrorTypeValidation, "need at least 2 splits")
	}
	if nSplits > n {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"cannot split %d rows into %d folds", n, nSplits)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	folds := make([]Fold, 0, nSplits)
	foldSize := n / nSplits
	extra := n % nSplits

	start := 0
	for f := 0; f < nSplits; f++ {
		size := foldSize
		if f < extra {
			size++
		}
		test := order[start : start+size]
		train := make([]int, 0, n-size)
		train = append(train, order[:start]...)
		train = append(train, order[start+size:]...)
		folds = append(folds, Fold{Train: train, Test: test})
		start += size
	}

	return folds, nil
}
