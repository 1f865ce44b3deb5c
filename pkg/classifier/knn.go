package classifier

import (
	"fmt"
	"sort"

	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/pkg/errors"
)

// KNN votes among the K stored instances nearest to the query under the
// Minkowski distance of order D (D == 0 is Chebyshev).
type KNN struct {
	K         int
	D         int
	instances []Instance
}

func NewKNN(k, d int) *KNN {
	return &KNN{K: k, D: d}
}

// Learn appends the instances. Nothing is deduplicated or pruned.
func (m *KNN) Learn(instances []Instance) error {
	m.instances = append(m.instances, instances...)
	return nil
}

func (m *KNN) Instances() []Instance {
	return append([]Instance(nil), m.instances...)
}

func (m *KNN) Predict(object Object) (string, error) {
	return m.PredictFeatures(features.Extract(object.Contour()))
}

type neighbour struct {
	distance float64
	label    string
}

// PredictFeatures returns the majority label of the K nearest instances.
// On a tie the label of the nearest tied neighbour wins.
func (m *KNN) PredictFeatures(query features.Features) (string, error) {
	if m.K < 1 {
		return "", errors.Wrapf(ErrInvalidParameter, "k=%v", m.K)
	}
	if m.D < 0 {
		return "", errors.Wrapf(ErrInvalidParameter, "d=%v", m.D)
	}
	if len(m.instances) == 0 {
		return "", errors.Wrap(ErrInsufficientData, "knn has no instances")
	}
	if m.K > len(m.instances) {
		return "", &NeighboursError{K: m.K, Instances: len(m.instances)}
	}

	var queryVector = query.Vector()
	var neighbours = make([]neighbour, len(m.instances))
	for i := range m.instances {
		neighbours[i] = neighbour{
			distance: features.MinkowskiDistance(queryVector, m.instances[i].Features.Vector(), m.D),
			label:    m.instances[i].Label,
		}
	}
	sort.SliceStable(neighbours, func(i, j int) bool {
		return neighbours[i].distance < neighbours[j].distance
	})
	neighbours = neighbours[:m.K]

	var votes = make(map[string]int)
	var maxVotes int
	for _, n := range neighbours {
		votes[n.label]++
		if votes[n.label] > maxVotes {
			maxVotes = votes[n.label]
		}
	}
	for _, n := range neighbours {
		if votes[n.label] == maxVotes {
			return n.label, nil
		}
	}
	panic("unreachable")
}

func (m *KNN) String() string {
	return fmt.Sprintf("KNN: {k: %v, d: %v, instances: %v}", m.K, m.D, len(m.instances))
}
