package quality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ChizhovVadim/cellclass/internal/domain"
	"github.com/ChizhovVadim/cellclass/pkg/features"
	"gonum.org/v1/gonum/stat"
)

var descriptorNames = []string{"circularity", "roundness", "aspect_ratio", "solidity"}

type Stat struct {
	Mean   float64
	StdDev float64
}

// LabelStats summarizes the scalar descriptors of one class.
type LabelStats struct {
	Label       string
	Count       int
	Descriptors map[string]Stat
}

func descriptorValues(f features.Features) []float64 {
	return []float64{f.Circularity(), f.Roundness(), f.AspectRatio(), f.Solidity()}
}

// Describe computes mean and sample standard deviation of every descriptor
// per label, using the largest object of each file.
func Describe(items []domain.DatasetItem) []LabelStats {
	var values = make(map[string][][]float64)
	for _, item := range items {
		var object, ok = usableObject(item)
		if !ok {
			continue
		}
		var v = descriptorValues(features.Extract(object.Contour()))
		if values[item.Label] == nil {
			values[item.Label] = make([][]float64, len(descriptorNames))
		}
		for i := range v {
			values[item.Label][i] = append(values[item.Label][i], v[i])
		}
	}

	var result []LabelStats
	for label, columns := range values {
		var ls = LabelStats{
			Label:       label,
			Count:       len(columns[0]),
			Descriptors: make(map[string]Stat),
		}
		for i, name := range descriptorNames {
			var mean, std = stat.MeanStdDev(columns[i], nil)
			if ls.Count < 2 {
				std = 0
			}
			ls.Descriptors[name] = Stat{Mean: mean, StdDev: std}
		}
		result = append(result, ls)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Label < result[j].Label
	})
	return result
}

func (ls LabelStats) String() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "%v (%v):", ls.Label, ls.Count)
	for _, name := range descriptorNames {
		var s = ls.Descriptors[name]
		fmt.Fprintf(sb, " %v: %.4f±%.4f", name, s.Mean, s.StdDev)
	}
	return sb.String()
}
