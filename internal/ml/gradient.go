package ml

import "math"

const (
	LearningRate = 0.01
	Beta1        = 0.9
	Beta2        = 0.999
	Epsilon      = 1e-8
)

// Gradient keeps the Adam moments of one parameter.
type Gradient struct {
	Value float64
	M1    float64
	M2    float64
}

// Calculate returns the bias-corrected Adam step for iteration t (1-based).
func (g *Gradient) Calculate(t int, learningRate float64) float64 {
	g.M1 = g.M1*Beta1 + g.Value*(1-Beta1)
	g.M2 = g.M2*Beta2 + (g.Value*g.Value)*(1-Beta2)

	var m1 = g.M1 / (1 - math.Pow(Beta1, float64(t)))
	var m2 = g.M2 / (1 - math.Pow(Beta2, float64(t)))
	return learningRate * m1 / (math.Sqrt(m2) + Epsilon)
}

// Gradients is an Adam optimizer over a parameter vector.
type Gradients struct {
	Data         []Gradient
	LearningRate float64
	step         int
}

func NewGradients(size int, learningRate float64) Gradients {
	return Gradients{
		Data:         make([]Gradient, size),
		LearningRate: learningRate,
	}
}

// Set stores the gradient computed for the current iteration.
func (g *Gradients) Set(values []float64) {
	for i := range g.Data {
		g.Data[i].Value = values[i]
	}
}

// Apply moves the parameters against the stored gradient and clears it.
func (g *Gradients) Apply(params []float64) {
	g.step++
	for i := range g.Data {
		params[i] -= g.Data[i].Calculate(g.step, g.LearningRate)
		g.Data[i].Value = 0
	}
}

// Step is the number of applied iterations.
func (g *Gradients) Step() int {
	return g.step
}
