package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/pkg/errors"
)

const (
	KindKNN = "knn"
	KindLR  = "lr"
)

type header struct {
	Model string `json:"model"`
}

type knnDocument struct {
	Model     string             `json:"model"`
	K         *int               `json:"k"`
	D         *int               `json:"d"`
	Instances []instanceDocument `json:"instances"`
}

type instanceDocument struct {
	Label       *string   `json:"label"`
	Circularity *float64  `json:"circularity"`
	Roundness   *float64  `json:"roundness"`
	AspectRatio *float64  `json:"aspect_ratio"`
	Solidity    *float64  `json:"solidity"`
	Histogram   []float64 `json:"histogram"`
}

type lrDocument struct {
	Model      string    `json:"model"`
	Parameters []float64 `json:"parameters"`
}

// Load reads a stored model. A missing "model" field means knn.
// Every call returns a new, independent classifier.
func Load(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load model")
	}
	c, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load model %v", path)
	}
	return c, nil
}

func Decode(data []byte) (Classifier, error) {
	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	switch h.Model {
	case "", KindKNN:
		return decodeKNN(data)
	case KindLR:
		return decodeLR(data)
	}
	return nil, errors.Wrapf(ErrUnsupportedModelKind, "%q", h.Model)
}

func decodeKNN(data []byte) (*KNN, error) {
	var doc knnDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	if doc.K == nil || doc.D == nil || doc.Instances == nil {
		return nil, errors.Wrap(ErrParse, "knn model requires k, d and instances")
	}
	if *doc.K < 1 || *doc.D < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "k=%v d=%v", *doc.K, *doc.D)
	}
	var instances = make([]Instance, len(doc.Instances))
	for i, item := range doc.Instances {
		if item.Label == nil || item.Circularity == nil || item.Roundness == nil ||
			item.AspectRatio == nil || item.Solidity == nil {
			return nil, errors.Wrapf(ErrParse, "instance %v has missing fields", i)
		}
		if len(item.Histogram) != features.HistogramSize {
			return nil, errors.Wrapf(ErrParse, "instance %v: histogram has %v bins, want %v",
				i, len(item.Histogram), features.HistogramSize)
		}
		var hist [features.HistogramSize]float64
		copy(hist[:], item.Histogram)
		instances[i] = Instance{
			Label: *item.Label,
			Features: features.New(hist,
				*item.Circularity, *item.Roundness, *item.AspectRatio, *item.Solidity),
		}
	}
	var m = NewKNN(*doc.K, *doc.D)
	m.instances = instances
	return m, nil
}

func decodeLR(data []byte) (*LogisticRegression, error) {
	var doc lrDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	if doc.Parameters == nil {
		return nil, errors.Wrap(ErrParse, "lr model requires parameters")
	}
	if len(doc.Parameters) != features.VectorSize {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"stored %v parameters, descriptor has %v values", len(doc.Parameters), features.VectorSize)
	}
	return newLogisticRegression(doc.Parameters), nil
}

func (m *KNN) Store(path string) error {
	var doc = knnDocument{
		Model:     KindKNN,
		K:         ptr(m.K),
		D:         ptr(m.D),
		Instances: make([]instanceDocument, 0, len(m.instances)),
	}
	for _, inst := range m.instances {
		var f = inst.Features
		var hist = f.Histogram()
		doc.Instances = append(doc.Instances, instanceDocument{
			Label:       ptr(inst.Label),
			Circularity: ptr(f.Circularity()),
			Roundness:   ptr(f.Roundness()),
			AspectRatio: ptr(f.AspectRatio()),
			Solidity:    ptr(f.Solidity()),
			Histogram:   hist[:],
		})
	}
	return writeDocument(path, doc)
}

func (m *LogisticRegression) Store(path string) error {
	var parameters = m.parameters
	if parameters == nil {
		parameters = []float64{}
	}
	return writeDocument(path, lrDocument{
		Model:      KindLR,
		Parameters: parameters,
	})
}

func writeDocument(path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode model")
	}
	data = append(data, '\n')
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create model dir")
		}
	}
	var tmp = path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write model")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "rename model")
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
