package risk

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed model.yaml
var defaultArtifact []byte

// artifact mirrors the on-disk YAML layout of an exported model.
type artifact struct {
	Labels   []string `yaml:"labels"`
	Features []string `yaml:"features"`
	Scaler   struct {
		Mean  []float64 `yaml:"mean"`
		Scale []float64 `yaml:"scale"`
	} `yaml:"scaler"`
	Classifier struct {
		Coefficients [][]float64 `yaml:"coefficients"`
		Intercepts   []float64   `yaml:"intercepts"`
	} `yaml:"classifier"`
}

// Load reads a model artifact from path, or the embedded default artifact
// when path is empty.
func Load(path string) (*Model, error) {
	data := defaultArtifact
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read model artifact: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a YAML model artifact.
func Parse(data []byte) (*Model, error) {
	var art artifact
	if err := yaml.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	n := len(art.Features)
	if n == 0 {
		return nil, fmt.Errorf("model artifact has no features")
	}
	if len(art.Labels) == 0 {
		return nil, fmt.Errorf("model artifact has no labels")
	}
	if len(art.Scaler.Mean) != n || len(art.Scaler.Scale) != n {
		return nil, fmt.Errorf("scaler dimensions %d/%d do not match %d features",
			len(art.Scaler.Mean), len(art.Scaler.Scale), n)
	}
	for i, s := range art.Scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler scale for feature %q is zero", art.Features[i])
		}
	}
	if len(art.Classifier.Coefficients) != len(art.Labels) {
		return nil, fmt.Errorf("classifier has %d coefficient rows for %d labels",
			len(art.Classifier.Coefficients), len(art.Labels))
	}
	for k, row := range art.Classifier.Coefficients {
		if len(row) != n {
			return nil, fmt.Errorf("coefficient row %d has %d weights for %d features", k, len(row), n)
		}
	}
	if len(art.Classifier.Intercepts) != len(art.Labels) {
		return nil, fmt.Errorf("classifier has %d intercepts for %d labels",
			len(art.Classifier.Intercepts), len(art.Labels))
	}

	return &Model{
		labels:     art.Labels,
		features:   art.Features,
		mean:       art.Scaler.Mean,
		scale:      art.Scaler.Scale,
		coefs:      art.Classifier.Coefficients,
		intercepts: art.Classifier.Intercepts,
	}, nil
}
