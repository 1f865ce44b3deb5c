package features

import (
	"math"
	"testing"

	"github.com/ChizhovVadim/cellclass/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = shape.Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

func sum(values []float64) float64 {
	var result float64
	for _, v := range values {
		result += v
	}
	return result
}

func TestSquareDescriptors(t *testing.T) {
	var f = Extract(square)
	assert.InDelta(t, math.Pi/4, f.Circularity(), 1e-6)
	assert.InDelta(t, 4/math.Pi, f.Roundness(), 1e-9)
	assert.InDelta(t, 1.0, f.AspectRatio(), 1e-9)
	assert.InDelta(t, 1.0, f.Solidity(), 1e-9)
	assert.Equal(t, [HistogramSize]float64{0.25, 0, 0.25, 0, 0.25, 0, 0.25, 0}, f.Histogram())
}

func TestHistogramSumsToOne(t *testing.T) {
	var contours = []shape.Contour{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 5, Y: 7}, {X: 2, Y: 9}, {X: -1, Y: 4}},
		{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 7}, {X: 4, Y: 7}, {X: 3, Y: 6}, {X: 3, Y: 5}},
		{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}},
	}
	for _, c := range contours {
		var hist = Extract(c).Histogram()
		assert.InDelta(t, 1.0, sum(hist[:]), 1e-9, "contour %v", c)
		for _, h := range hist {
			assert.GreaterOrEqual(t, h, 0.0)
			assert.LessOrEqual(t, h, 1.0)
		}
	}
}

func TestDegenerateContourIsZero(t *testing.T) {
	for _, c := range []shape.Contour{nil, {{X: 7, Y: 7}}} {
		var f = Extract(c)
		assert.Equal(t, Features{}, f)
		assert.Zero(t, sum(f.Vector()[1:]))
	}

	var line = Extract(shape.Contour{{X: 0, Y: 0}, {X: 4, Y: 0}})
	assert.Zero(t, line.Circularity())
	assert.Zero(t, line.AspectRatio())
	assert.Zero(t, line.Solidity())
}

func TestVectorLayout(t *testing.T) {
	var hist = [HistogramSize]float64{0.1, 0.2, 0.3, 0.4, 0, 0, 0, 0}
	var f = New(hist, 0.5, 0.6, 1.7, 0.8)
	var v = f.Vector()
	require.Len(t, v, VectorSize)
	assert.Equal(t, []float64{1, 0.1, 0.2, 0.3, 0.4, 0, 0, 0, 0, 0.5, 0.6, 1.7, 0.8}, v)
}

func TestString(t *testing.T) {
	var f = New([HistogramSize]float64{0.25, 0, 0.25, 0, 0.25, 0, 0.25, 0}, 0.5, 1, 2, 1)
	assert.Equal(t,
		"{circularity: 0.5, roundness: 1, aspect_ratio: 2, solidity: 1, h: [0.25, 0.00, 0.25, 0.00, 0.25, 0.00, 0.25, 0.00]}",
		f.String())
}
