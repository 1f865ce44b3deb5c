package ml

import "math"

type IModelCost interface {
	Cost(predicted, target float64) float64
	CostPrime(predicted, target float64) float64
}

type MSECost struct{}

func (*MSECost) Cost(predicted, target float64) float64 {
	var x = predicted - target
	return x * x
}

func (*MSECost) CostPrime(predicted, target float64) float64 {
	return 2 * (predicted - target)
}

// LogLossCost is the binary cross entropy of a probability.
// Combined with a sigmoid output its derivative by the pre-activation is predicted-target.
type LogLossCost struct{}

const logLossEpsilon = 1e-15

func (*LogLossCost) Cost(predicted, target float64) float64 {
	var p = math.Min(math.Max(predicted, logLossEpsilon), 1-logLossEpsilon)
	return -(target*math.Log(p) + (1-target)*math.Log(1-p))
}

func (*LogLossCost) CostPrime(predicted, target float64) float64 {
	var p = math.Min(math.Max(predicted, logLossEpsilon), 1-logLossEpsilon)
	return (p - target) / (p * (1 - p))
}
