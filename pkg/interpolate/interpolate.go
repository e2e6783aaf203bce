// Package interpolate provides 1D interpolation over sampled points
package interpolate

import (
	"gonum.org/v1/gonum/interp"

	"github.com/dperussina/code-library/pkg/errors"
)

// Kind selects the interpolation scheme.
type Kind string

const (
	// Linear joins samples with straight segments
	Linear Kind = "linear"
	// Cubic fits an Akima spline through the samples
	Cubic Kind = "cubic"
)

// Interpolator predicts y values for arbitrary x given known samples.
// Outside the sampled range it extrapolates linearly from the boundary
// segment.
type Interpolator struct {
	xs        []float64
	ys        []float64
	predictor interp.FittablePredictor
}

// New fits an interpolator to the known samples. xs must be strictly
// increasing; Linear needs at least 2 points and Cubic at least 4.
func New(xs, ys []float64, kind Kind) (*Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"xs has %d points but ys has %d", len(xs), len(ys))
	}

	minPoints := 2
	if kind == Cubic {
		minPoints = 4
	}
	if len(xs) < minPoints {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"%s interpolation needs at least %d points", kind, minPoints)
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, errors.New(errors.ErrorTypeValidation,
				"xs must be strictly increasing")
		}
	}

	var predictor interp.FittablePredictor
	switch kind {
	case Linear:
		predictor = &interp.PiecewiseLinear{}
	case Cubic:
		predictor = &interp.AkimaSpline{}
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation, "unknown kind %q", kind)
	}

	if err := predictor.Fit(xs, ys); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to fit interpolator")
	}

	it := &Interpolator{predictor: predictor}
	it.xs = append(it.xs, xs...)
	it.ys = append(it.ys, ys...)
	return it, nil
}

// Predict returns the interpolated value at x.
func (it *Interpolator) Predict(x float64) float64 {
	n := len(it.xs)

	switch {
	case x < it.xs[0]:
		slope := (it.ys[1] - it.ys[0]) / (it.xs[1] - it.xs[0])
		return it.ys[0] + slope*(x-it.xs[0])
	case x > it.xs[n-1]:
		slope := (it.ys[n-1] - it.ys[n-2]) / (it.xs[n-1] - it.xs[n-2])
		return it.ys[n-1] + slope*(x-it.xs[n-1])
	default:
		return it.predictor.Predict(x)
	}
}

// PredictAll returns interpolated values for every x in xNew.
func (it *Interpolator) PredictAll(xNew []float64) []float64 {
	out := make([]float64, len(xNew))
	for i, x := range xNew {
		out[i] = it.Predict(x)
	}
	return out
}
