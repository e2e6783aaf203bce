package mlkit

import (
	"gonum.org/v1/gonum/stat"

	"github.com/dperussina/code-library/pkg/errors"
)

// StandardScaler standardizes features to zero mean and unit variance,
// column by column. Fit learns the parameters; Transform applies them.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit learns per-feature mean and population standard deviation from x.
func (s *StandardScaler) Fit(x [][]float64) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return errors.New(errors.ErrorTypeValidation, "empty training data")
	}

	features := len(x[0])
	s.Mean = make([]float64, features)
	s.Std = make([]float64, features)

	column := make([]float64, len(x))
	for j := 0; j < features; j++ {
		for i, row := range x {
			if len(row) != features {
				return errors.Newf(errors.ErrorTypeValidation,
					"row %d has %d features, want %d", i, len(row), features)
			}
			column[i] = row[j]
		}
		s.Mean[j] = stat.Mean(column, nil)
		s.Std[j] = stat.PopStdDev(column, nil)
		// Constant features pass through unscaled
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}

	return nil
}

// Transform standardizes x using the fitted parameters.
func (s *StandardScaler) Transform(x [][]float64) ([][]float64, error) {
	if s.Mean == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "scaler is not fitted")
	}

	out := make([][]float64, len(x))
	for i, row := range x {
		if len(row) != len(s.Mean) {
			return nil, errors.Newf(errors.ErrorTypeValidation,
				"row %d has %d features, want %d", i, len(row), len(s.Mean))
		}
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}

	return out, nil
}

// FitTransform fits the scaler on x and returns the scaled copy.
func (s *StandardScaler) FitTransform(x [][]float64) ([][]float64, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}
