package domain

import "github.com/ChizhovVadim/cellclass/pkg/shape"

// DatasetItem is one contour file. Label is the class folder name,
// empty for unlabeled input.
type DatasetItem struct {
	Label   string
	Path    string
	Objects []shape.Object
}
