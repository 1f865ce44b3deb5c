package quality

import (
	"math"
	"testing"

	"github.com/ChizhovVadim/cellclass/internal/domain"
	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/ChizhovVadim/cellclass/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = shape.Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
var bigSquare = shape.Contour{{X: 0, Y: 0}, {X: 0, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 0}}
var bar = shape.Contour{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 30, Y: 2}, {X: 30, Y: 0}}

func item(label string, contours ...shape.Contour) domain.DatasetItem {
	var objects []shape.Object
	for _, c := range contours {
		objects = append(objects, shape.NewObject(c))
	}
	return domain.DatasetItem{Label: label, Path: label + ".txt", Objects: objects}
}

func TestEvaluateKNN(t *testing.T) {
	var model = classifier.NewKNN(1, 2)
	require.NoError(t, model.Learn([]classifier.Instance{
		{Label: "good", Features: features.Extract(square)},
		{Label: "bad", Features: features.Extract(bar)},
	}))

	report, err := Evaluate([]domain.DatasetItem{
		item("good", bigSquare),
		item("bad", bar),
		item("bad", square),
		item("bad"),
	}, model)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Correct)
	assert.Equal(t, 1, report.Skipped)
	assert.InDelta(t, 2.0/3, report.Accuracy(), 1e-12)
	assert.Equal(t, []string{"bad", "good"}, report.Labels)
	assert.Equal(t, 1, report.Confusion["bad"]["bad"])
	assert.Equal(t, 1, report.Confusion["bad"]["good"])
	assert.Equal(t, 1, report.Confusion["good"]["good"])
	assert.False(t, report.HasProbability)
	assert.Contains(t, report.String(), "accuracy: 0.6667 (2/3)")
}

func TestEvaluateLogisticRegression(t *testing.T) {
	var model = classifier.NewLogisticRegression()
	var instances []classifier.Instance
	for i := 0; i < 5; i++ {
		var jitter = float64(i) * 0.01
		instances = append(instances,
			classifier.Instance{Label: "bad", Features: features.New(
				[features.HistogramSize]float64{0.25, 0, 0.25, 0, 0.25, 0, 0.25, 0}, 0.1+jitter, 0.5, 1, 1)},
			classifier.Instance{Label: "good", Features: features.New(
				[features.HistogramSize]float64{0.25, 0, 0.25, 0, 0.25, 0, 0.25, 0}, 0.9-jitter, 0.5, 1, 1)},
		)
	}
	require.NoError(t, model.Learn(instances))

	report, err := Evaluate([]domain.DatasetItem{item("good", square)}, model)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.True(t, report.HasProbability)
	assert.GreaterOrEqual(t, report.MSE, 0.0)
	assert.LessOrEqual(t, report.MSE, 1.0)
	assert.Contains(t, report.String(), "mse cost:")
}

func TestEvaluateEmpty(t *testing.T) {
	report, err := Evaluate(nil, classifier.NewKNN(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Accuracy())
}

func TestEvaluatePredictError(t *testing.T) {
	_, err := Evaluate([]domain.DatasetItem{item("good", square)}, classifier.NewKNN(1, 2))
	assert.ErrorIs(t, err, classifier.ErrInsufficientData)
}

func TestDescribe(t *testing.T) {
	var stats = Describe([]domain.DatasetItem{
		item("good", square),
		item("good", bigSquare),
		item("bad", bar),
		item("bad"),
	})
	require.Len(t, stats, 2)

	assert.Equal(t, "bad", stats[0].Label)
	assert.Equal(t, 1, stats[0].Count)
	assert.InDelta(t, 15.0, stats[0].Descriptors["aspect_ratio"].Mean, 1e-9)
	assert.Equal(t, 0.0, stats[0].Descriptors["aspect_ratio"].StdDev)

	assert.Equal(t, "good", stats[1].Label)
	assert.Equal(t, 2, stats[1].Count)
	var circularity = stats[1].Descriptors["circularity"]
	assert.InDelta(t, math.Pi/4, circularity.Mean, 1e-9)
	assert.InDelta(t, 0, circularity.StdDev, 1e-9)
	assert.Contains(t, stats[1].String(), "good (2): circularity: 0.7854")
}
