package classifier

import (
	"fmt"
	"log"

	"github.com/ChizhovVadim/cellclass/internal/ml"
	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultBeta          = 0.1
	DefaultTolerance     = 0.001
	DefaultMaxIterations = 100_000
)

// LogisticRegression separates "bad" objects from everything else.
// parameters[0] is the bias and multiplies the constant first descriptor.
// Create it with NewLogisticRegression.
type LogisticRegression struct {
	LearningRate  float64
	Beta          float64
	Tolerance     float64
	MaxIterations int

	parameters   []float64
	activationFn ml.IActivationFn
	cost         ml.IModelCost
}

type FitStats struct {
	Iterations   int
	GradientNorm float64
	Cost         float64
	Converged    bool
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate:  ml.LearningRate,
		Beta:          DefaultBeta,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		activationFn:  &ml.SigmoidActivation{},
		cost:          &ml.LogLossCost{},
	}
}

func newLogisticRegression(parameters []float64) *LogisticRegression {
	var m = NewLogisticRegression()
	m.parameters = parameters
	return m
}

func (m *LogisticRegression) Parameters() []float64 {
	return append([]float64(nil), m.parameters...)
}

func (m *LogisticRegression) Learn(instances []Instance) error {
	_, err := m.Fit(instances)
	return err
}

// Fit trains from zero weights with full-batch gradient descent and Adam steps
// until the gradient norm drops below Tolerance or MaxIterations is reached.
// Targets are 0 for LabelBad and 1 for any other label.
func (m *LogisticRegression) Fit(instances []Instance) (FitStats, error) {
	if len(instances) == 0 {
		return FitStats{}, errors.Wrap(ErrInsufficientData, "logistic regression needs at least one instance")
	}
	if m.LearningRate <= 0 || m.Tolerance <= 0 || m.MaxIterations < 1 {
		return FitStats{}, errors.Wrapf(ErrInvalidParameter,
			"learning rate %v, tolerance %v, max iterations %v", m.LearningRate, m.Tolerance, m.MaxIterations)
	}
	log.Println("Train started", "instances", len(instances))
	defer log.Println("Train finished")

	var rows, cols = len(instances), features.VectorSize
	var x = mat.NewDense(rows, cols, nil)
	var targets = make([]float64, rows)
	for i := range instances {
		x.SetRow(i, instances[i].Features.Vector())
		if instances[i].Label != LabelBad {
			targets[i] = 1
		}
	}

	var parameters = make([]float64, cols)
	var weights = mat.NewVecDense(cols, parameters)
	var outputs = mat.NewVecDense(rows, nil)
	var errs = mat.NewVecDense(rows, nil)
	var gradient = mat.NewVecDense(cols, nil)
	var gradients = ml.NewGradients(cols, m.LearningRate)
	var scale = float64(cols)

	var stats FitStats
	for {
		outputs.MulVec(x, weights)
		for i := 0; i < rows; i++ {
			errs.SetVec(i, m.activationFn.Sigma(outputs.AtVec(i))-targets[i])
		}
		gradient.MulVec(x.T(), errs)

		var g = gradient.RawVector().Data
		for j := range g {
			// S/m + (beta/m)*S
			g[j] = g[j]/scale + (m.Beta/scale)*g[j]
		}
		gradients.Set(g)
		gradients.Apply(parameters)

		stats.Iterations = gradients.Step()
		stats.GradientNorm = floats.Norm(g, 2)
		if stats.GradientNorm < m.Tolerance {
			stats.Converged = true
			break
		}
		if stats.Iterations >= m.MaxIterations {
			log.Printf("logistic regression did not converge after %v iterations, gradient norm %g",
				stats.Iterations, stats.GradientNorm)
			break
		}
	}

	m.parameters = parameters
	outputs.MulVec(x, weights)
	for i := 0; i < rows; i++ {
		stats.Cost += m.cost.Cost(m.activationFn.Sigma(outputs.AtVec(i)), targets[i])
	}
	stats.Cost /= float64(rows)
	log.Printf("iterations: %v gradient norm: %g cost: %f", stats.Iterations, stats.GradientNorm, stats.Cost)
	return stats, nil
}

func (m *LogisticRegression) Probability(object Object) (float64, error) {
	return m.ProbabilityFeatures(features.Extract(object.Contour()))
}

// ProbabilityFeatures is the model's estimate that the object is not "bad".
func (m *LogisticRegression) ProbabilityFeatures(f features.Features) (float64, error) {
	var v = f.Vector()
	if len(m.parameters) != len(v) {
		return 0, errors.Wrapf(ErrDimensionMismatch,
			"model has %v parameters, descriptor has %v values", len(m.parameters), len(v))
	}
	return m.activationFn.Sigma(floats.Dot(m.parameters, v)), nil
}

func (m *LogisticRegression) Predict(object Object) (string, error) {
	return m.PredictFeatures(features.Extract(object.Contour()))
}

func (m *LogisticRegression) PredictFeatures(f features.Features) (string, error) {
	var p, err = m.ProbabilityFeatures(f)
	if err != nil {
		return "", err
	}
	if p > 0.5 {
		return LabelGood, nil
	}
	return LabelBad, nil
}

func (m *LogisticRegression) String() string {
	return fmt.Sprintf("LR: {weights: %v}", m.parameters)
}
