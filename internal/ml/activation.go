package ml

type IActivationFn interface {
	Sigma(x float64) float64
	SigmaPrime(x float64) float64
}

type SigmoidActivation struct{}

func (s *SigmoidActivation) Sigma(x float64) float64 {
	return Sigmoid(x)
}

func (s *SigmoidActivation) SigmaPrime(x float64) float64 {
	var y = s.Sigma(x)
	return y * (1 - y)
}
