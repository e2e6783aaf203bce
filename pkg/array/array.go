// Package array provides numeric vector and matrix helpers built on gonum
package array

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/dperussina/code-library/pkg/errors"
)

// Zeros returns a slice of n zeros.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// Ones returns a slice of n ones.
func Ones(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 1
	}
	return xs
}

// ARange returns values from start up to (excluding) stop in step
// increments. Step must be positive.
func ARange(start, stop, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "step must be positive")
	}

	var xs []float64
	for v := start; v < stop; v += step {
		xs = append(xs, v)
	}
	return xs, nil
}

// Linspace returns n evenly spaced values between start and stop,
// inclusive of both endpoints. n must be at least 2.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, errors.New(errors.ErrorTypeValidation, "n must be at least 2")
	}

	xs := make([]float64, n)
	floats.Span(xs, start, stop)
	return xs, nil
}

func sameLen(a, b []float64) error {
	if len(a) != len(b) {
		return errors.Newf(errors.ErrorTypeValidation,
			"length mismatch: %d vs %d", len(a), len(b))
	}
	return nil
}

// Add returns the element-wise sum a + b.
func Add(a, b []float64) ([]float64, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	floats.AddTo(out, a, b)
	return out, nil
}

// Sub returns the element-wise difference a - b.
func Sub(a, b []float64) ([]float64, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	return out, nil
}

// Mul returns the element-wise product a * b.
func Mul(a, b []float64) ([]float64, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	floats.MulTo(out, a, b)
	return out, nil
}

// Div returns the element-wise quotient a / b.
func Div(a, b []float64) ([]float64, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	floats.DivTo(out, a, b)
	return out, nil
}

// Scale returns a copy of xs with every element multiplied by c.
func Scale(c float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	floats.Scale(c, out)
	return out
}

// Dot returns the dot product of a and b.
func Dot(a, b []float64) (float64, error) {
	if err := sameLen(a, b); err != nil {
		return 0, err
	}
	return floats.Dot(a, b), nil
}

// MatMul multiplies two matrices given as row-major [][]float64.
func MatMul(a, b [][]float64) ([][]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "empty matrix")
	}
	if len(a[0]) != len(b) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"incompatible shapes: %dx%d and %dx%d", len(a), len(a[0]), len(b), len(b[0]))
	}

	am := mat.NewDense(len(a), len(a[0]), Flatten(a))
	bm := mat.NewDense(len(b), len(b[0]), Flatten(b))

	var cm mat.Dense
	cm.Mul(am, bm)

	rows, cols := cm.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		copy(out[i], cm.RawRowView(i))
	}
	return out, nil
}

// Flatten concatenates matrix rows into a single row-major slice.
func Flatten(m [][]float64) []float64 {
	if len(m) == 0 {
		return nil
	}
	out := make([]float64, 0, len(m)*len(m[0]))
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}
