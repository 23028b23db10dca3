package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk YAML layout of a dataset:
//
//	name: and
//	examples:
//	  - inputs: [0, 0]
//	    label: 0
//	  - inputs: [1, 1]
//	    label: 1
type fileFormat struct {
	Name     string        `yaml:"name"`
	Examples []fileExample `yaml:"examples"`
}

type fileExample struct {
	Inputs []float64 `yaml:"inputs"`
	Label  float64   `yaml:"label"`
}

// Load reads a YAML dataset file. When the file has no name, the base
// file name without extension is used.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is user-provided on purpose
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	if ds.name == "" {
		ds.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ds, nil
}

// Parse decodes a YAML dataset document. Unknown fields are rejected.
func Parse(data []byte) (*Dataset, error) {
	var f fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	inputs := make([][]float64, len(f.Examples))
	labels := make([]float64, len(f.Examples))
	for i, ex := range f.Examples {
		inputs[i] = ex.Inputs
		labels[i] = ex.Label
	}
	return New(f.Name, inputs, labels)
}
