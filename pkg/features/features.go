// Package features turns object contours into fixed-size shape descriptors.
//
// The descriptor vector is
//
//	[1, hist[0..7], circularity, roundness, aspect_ratio, solidity]
//
// where hist is the normalized chain-code histogram of the contour.
// The leading 1 is the bias input of linear models.
package features

import (
	"fmt"
	"math"
	"strings"

	"github.com/ChizhovVadim/cellclass/pkg/shape"
)

const HistogramSize = shape.DirectionCount

// VectorSize is the length of Features.Vector.
const VectorSize = 1 + HistogramSize + 4

type Features struct {
	hist        [HistogramSize]float64
	circularity float64
	roundness   float64
	aspectRatio float64
	solidity    float64
}

func New(hist [HistogramSize]float64, circularity, roundness, aspectRatio, solidity float64) Features {
	return Features{
		hist:        hist,
		circularity: circularity,
		roundness:   roundness,
		aspectRatio: aspectRatio,
		solidity:    solidity,
	}
}

// Extract computes the descriptors of a contour. Degenerate contours yield
// zero descriptors instead of an error.
func Extract(contour shape.Contour) Features {
	var f Features
	if len(contour) >= 2 {
		var codes = shape.ChainCode(contour)
		for _, code := range codes {
			f.hist[code]++
		}
		for i := range f.hist {
			f.hist[i] /= float64(len(codes))
		}
	}

	var area = shape.Area(contour)
	var perimeter = shape.Perimeter(contour)
	if perimeter > 0 {
		f.circularity = 4 * math.Pi * area / (perimeter * perimeter)
	}

	var major, minor = shape.MinAreaRect(contour)
	if major > 0 {
		f.roundness = 4 * area / (math.Pi * major * major)
	}
	if minor > 0 {
		f.aspectRatio = major / minor
	}
	if hullArea := shape.Area(shape.ConvexHull(contour)); hullArea > 0 {
		f.solidity = area / hullArea
	}
	return f
}

// Vector returns the ordered descriptor vector with the bias term first.
func (f Features) Vector() []float64 {
	var result = make([]float64, 0, VectorSize)
	result = append(result, 1.0)
	result = append(result, f.hist[:]...)
	return append(result, f.circularity, f.roundness, f.aspectRatio, f.solidity)
}

func (f Features) Histogram() [HistogramSize]float64 { return f.hist }
func (f Features) Circularity() float64             { return f.circularity }
func (f Features) Roundness() float64               { return f.roundness }
func (f Features) AspectRatio() float64             { return f.aspectRatio }
func (f Features) Solidity() float64                { return f.solidity }

func (f Features) String() string {
	var hist = make([]string, len(f.hist))
	for i, h := range f.hist {
		hist[i] = fmt.Sprintf("%.2f", h)
	}
	return fmt.Sprintf("{circularity: %v, roundness: %v, aspect_ratio: %v, solidity: %v, h: [%v]}",
		f.circularity, f.roundness, f.aspectRatio, f.solidity, strings.Join(hist, ", "))
}
