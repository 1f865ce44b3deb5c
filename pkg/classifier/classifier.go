// Package classifier labels segmented objects from their shape descriptors.
//
// Two models are provided: an instance based k-nearest-neighbour classifier and a
// logistic regression trained with Adam. Both are persisted to a single JSON format
// discriminated by its "model" field, and Load reconstructs whichever was stored.
package classifier

import (
	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/ChizhovVadim/cellclass/pkg/shape"
	"github.com/pkg/errors"
)

const (
	LabelGood = "good"
	LabelBad  = "bad"
)

// Object is anything with an outline to classify.
type Object interface {
	Contour() shape.Contour
}

// Instance is a labeled descriptor used for training.
type Instance struct {
	Label    string
	Features features.Features
}

type Classifier interface {
	Learn(instances []Instance) error
	Predict(object Object) (string, error)
	Store(path string) error
}

// CheckContour returns ErrDegenerateShape for contours whose descriptors carry no
// information. Training sets should skip such objects.
func CheckContour(contour shape.Contour) error {
	if contour.IsDegenerate() {
		return errors.Wrapf(ErrDegenerateShape, "contour with %v points", len(contour))
	}
	return nil
}
