package optimize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rosenbrock has its global minimum of 0 at (1, 1).
func rosenbrock(p []float64) float64 {
	x, y := p[0], p[1]
	return (1-x)*(1-x) + 100*(y-x*x)*(y-x*x)
}

func TestMinimizeBFGS(t *testing.T) {
	res, err := Minimize(rosenbrock, []float64{0, 0}, BFGS)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X[0], 1e-4)
	assert.InDelta(t, 1.0, res.X[1], 1e-4)
	assert.InDelta(t, 0.0, res.F, 1e-6)
	assert.Positive(t, res.FuncEvaluations)
}

func TestMinimizeNelderMead(t *testing.T) {
	// Simple convex bowl centered at (2, -3)
	bowl := func(p []float64) float64 {
		dx, dy := p[0]-2, p[1]+3
		return dx*dx + dy*dy
	}

	res, err := Minimize(bowl, []float64{0, 0}, NelderMead)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, res.X[0], 1e-3)
	assert.InDelta(t, -3.0, res.X[1], 1e-3)
}

func TestMinimizeDefaultMethod(t *testing.T) {
	square := func(p []float64) float64 { return p[0] * p[0] }

	res, err := Minimize(square, []float64{5}, "")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.X[0], 1e-6)
}

func TestMinimizeOneDimensional(t *testing.T) {
	f := func(p []float64) float64 { return math.Cos(p[0]) }

	res, err := Minimize(f, []float64{3}, BFGS)
	require.NoError(t, err)
	// Nearest minimum of cos is at pi
	assert.InDelta(t, math.Pi, res.X[0], 1e-4)
}

func TestMinimizeValidation(t *testing.T) {
	_, err := Minimize(nil, []float64{0}, BFGS)
	require.Error(t, err)

	_, err = Minimize(rosenbrock, nil, BFGS)
	require.Error(t, err)

	_, err = Minimize(rosenbrock, []float64{0, 0}, Method("annealing"))
	require.Error(t, err)
}
