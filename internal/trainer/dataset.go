package trainer

import (
	"context"
	"log"

	"github.com/ChizhovVadim/cellclass/internal/dataset"
	"github.com/ChizhovVadim/cellclass/internal/domain"
	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/ChizhovVadim/cellclass/pkg/shape"
)

func loadInstances(
	ctx context.Context,
	datasetProvider dataset.IDatasetProvider,
) ([]classifier.Instance, error) {
	items, err := dataset.LoadAll(ctx, datasetProvider)
	if err != nil {
		return nil, err
	}
	return processDataset(items), nil
}

// processDataset turns every file into one instance built from its largest
// object. Files without a usable shape are skipped.
func processDataset(items []domain.DatasetItem) []classifier.Instance {
	var result []classifier.Instance
	for _, item := range items {
		var instance, ok = NewInstance(item)
		if !ok {
			continue
		}
		result = append(result, instance)
	}
	return result
}

func NewInstance(item domain.DatasetItem) (classifier.Instance, bool) {
	var object, found = shape.Largest(item.Objects)
	if !found {
		log.Println("skip file without objects", item.Path)
		return classifier.Instance{}, false
	}
	if err := classifier.CheckContour(object.Contour()); err != nil {
		log.Println("skip file", item.Path, err)
		return classifier.Instance{}, false
	}
	return classifier.Instance{
		Label:    item.Label,
		Features: features.Extract(object.Contour()),
	}, true
}
