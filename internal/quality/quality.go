package quality

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ChizhovVadim/cellclass/internal/domain"
	"github.com/ChizhovVadim/cellclass/internal/ml"
	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/ChizhovVadim/cellclass/pkg/shape"
	"github.com/pkg/errors"
)

type IProbabilityModel interface {
	Probability(object classifier.Object) (float64, error)
}

type Report struct {
	Total   int
	Correct int
	Skipped int
	Labels  []string
	// Confusion[actual][predicted]
	Confusion map[string]map[string]int
	// MSE of the "not bad" probability. Set only for models that report one.
	MSE            float64
	HasProbability bool
}

func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Evaluate classifies the largest object of every labeled file.
func Evaluate(items []domain.DatasetItem, model classifier.Classifier) (Report, error) {
	var report = Report{
		Confusion: make(map[string]map[string]int),
	}
	var probabilityModel, hasProbability = model.(IProbabilityModel)
	var cost ml.MSECost
	var sumSq float64
	var labels = make(map[string]struct{})

	for _, item := range items {
		var object, ok = usableObject(item)
		if !ok {
			report.Skipped++
			continue
		}
		predicted, err := model.Predict(object)
		if err != nil {
			return Report{}, errors.Wrapf(err, "predict %v", item.Path)
		}
		if report.Confusion[item.Label] == nil {
			report.Confusion[item.Label] = make(map[string]int)
		}
		report.Confusion[item.Label][predicted]++
		labels[item.Label] = struct{}{}
		labels[predicted] = struct{}{}
		report.Total++
		if predicted == item.Label {
			report.Correct++
		}

		if hasProbability {
			p, err := probabilityModel.Probability(object)
			if err != nil {
				return Report{}, errors.Wrapf(err, "probability %v", item.Path)
			}
			var target float64
			if item.Label != classifier.LabelBad {
				target = 1
			}
			sumSq += cost.Cost(p, target)
		}
	}

	for label := range labels {
		report.Labels = append(report.Labels, label)
	}
	sort.Strings(report.Labels)

	if hasProbability && report.Total > 0 {
		report.HasProbability = true
		report.MSE = sumSq / float64(report.Total)
	}
	log.Println("evaluate", "total", report.Total, "correct", report.Correct, "skipped", report.Skipped)
	return report, nil
}

func (r *Report) String() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "accuracy: %.4f (%v/%v)\n", r.Accuracy(), r.Correct, r.Total)
	if r.Skipped > 0 {
		fmt.Fprintf(sb, "skipped: %v\n", r.Skipped)
	}
	if r.HasProbability {
		fmt.Fprintf(sb, "mse cost: %f\n", r.MSE)
	}
	fmt.Fprintf(sb, "%-12s", "actual\\pred")
	for _, label := range r.Labels {
		fmt.Fprintf(sb, " %8s", label)
	}
	sb.WriteString("\n")
	for _, actual := range r.Labels {
		fmt.Fprintf(sb, "%-12s", actual)
		for _, predicted := range r.Labels {
			fmt.Fprintf(sb, " %8d", r.Confusion[actual][predicted])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func usableObject(item domain.DatasetItem) (shape.Object, bool) {
	var object, found = shape.Largest(item.Objects)
	if !found {
		return shape.Object{}, false
	}
	if classifier.CheckContour(object.Contour()) != nil {
		return shape.Object{}, false
	}
	return object, true
}
