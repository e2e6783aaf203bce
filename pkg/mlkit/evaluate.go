package mlkit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/dperussina/code-library/pkg/errors"
)

// ClassificationReport holds binary classification metrics with class 1
// treated as positive.
type ClassificationReport struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// ClassificationMetrics computes accuracy, precision, recall, and F1 for
// binary labels (0/1).
func ClassificationMetrics(yTrue, yPred []int) (*ClassificationReport, error) {
	if len(yTrue) != len(yPred) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"yTrue has %d samples but yPred has %d", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "no samples")
	}

	var tp, tn, fp, fn float64
	for i := range yTrue {
		switch {
		case yTrue[i] == 1 && yPred[i] == 1:
			tp++
		case yTrue[i] == 0 && yPred[i] == 0:
			tn++
		case yTrue[i] == 0 && yPred[i] == 1:
			fp++
		default:
			fn++
		}
	}

	report := &ClassificationReport{
		Accuracy: (tp + tn) / float64(len(yTrue)),
	}
	if tp+fp > 0 {
		report.Precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		report.Recall = tp / (tp + fn)
	}
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}

	return report, nil
}

// RegressionReport holds regression metrics.
type RegressionReport struct {
	MSE  float64
	RMSE float64
	R2   float64
}

// RegressionMetrics computes mean squared error, its root, and the
// coefficient of determination.
func RegressionMetrics(yTrue, yPred []float64) (*RegressionReport, error) {
	if len(yTrue) != len(yPred) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"yTrue has %d samples but yPred has %d", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "no samples")
	}

	var sse float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sse += d * d
	}
	mse := sse / float64(len(yTrue))

	return &RegressionReport{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		R2:   stat.RSquaredFrom(yPred, yTrue, nil),
	}, nil
}
