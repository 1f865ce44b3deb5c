package trainer

import (
	"context"
	"log"

	"github.com/ChizhovVadim/cellclass/internal/dataset"
	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/pkg/errors"
)

// Run trains model on the labeled dataset and stores it at modelPath.
func Run(
	ctx context.Context,
	datasetProvider dataset.IDatasetProvider,
	model classifier.Classifier,
	modelPath string,
) error {
	instances, err := loadInstances(ctx, datasetProvider)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		return errors.Wrap(classifier.ErrInsufficientData, "no training instances")
	}
	log.Println("Loaded dataset", len(instances))
	for label, count := range countLabels(instances) {
		log.Println("label", label, "instances", count)
	}

	err = model.Learn(instances)
	if err != nil {
		return err
	}

	err = model.Store(modelPath)
	if err != nil {
		return err
	}
	log.Println("Model saved", modelPath)
	return nil
}

func countLabels(instances []classifier.Instance) map[string]int {
	var result = make(map[string]int)
	for _, instance := range instances {
		result[instance.Label]++
	}
	return result
}
