// Package optimize provides scalar function minimization
package optimize

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/dperussina/code-library/pkg/errors"
)

// Method selects the minimization algorithm.
type Method string

const (
	// BFGS is a quasi-Newton method using numerically approximated
	// gradients
	BFGS Method = "bfgs"
	// NelderMead is a gradient-free simplex method
	NelderMead Method = "nelder-mead"
)

// Result describes the outcome of a minimization.
type Result struct {
	// X is the location of the minimum found
	X []float64
	// F is the objective value at X
	F float64
	// Status describes why the optimizer stopped
	Status string
	// FuncEvaluations counts objective calls
	FuncEvaluations int
}

// Minimize finds a local minimum of f starting from x0.
func Minimize(f func([]float64) float64, x0 []float64, method Method) (*Result, error) {
	if f == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "objective function is nil")
	}
	if len(x0) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "initial guess is empty")
	}

	var m optimize.Method
	switch method {
	case BFGS, "":
		m = &optimize.BFGS{}
	case NelderMead:
		m = &optimize.NelderMead{}
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation, "unknown method %q", method)
	}

	// BFGS needs a gradient; approximate it by finite differences
	problem := optimize.Problem{
		Func: f,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, f, x, nil)
		},
	}

	res, err := optimize.Minimize(problem, x0, nil, m)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "minimization failed")
	}
	if err := res.Status.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "optimizer stopped abnormally")
	}

	return &Result{
		X:               res.X,
		F:               res.F,
		Status:          res.Status.String(),
		FuncEvaluations: res.Stats.FuncEvaluations,
	}, nil
}
