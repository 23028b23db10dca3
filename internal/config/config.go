// Package config loads training runs from YAML files and resolves them
// against the built-in presets.
//
// A run file looks like:
//
//	workers: 4
//	runs:
//	  - name: and-simple
//	    gate: and
//	    preset: simple
//	  - name: or-seeded
//	    gate: or
//	    learning_rate: 0.5
//	    update_mode: per_example
//	    init:
//	      seed: 7
//	  - name: custom
//	    dataset: implies.yaml   # relative to the run file
//	    init:
//	      weights: [0, 0]
//	      bias: 0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"github.com/born-ml/gates/internal/sweep"
	"github.com/born-ml/gates/internal/trainer"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Common errors.
var (
	ErrInvalidFile   = errors.New("invalid run file")
	ErrUnknownPreset = errors.New("unknown preset")
	ErrConflict      = errors.New("conflicting settings")
)

// File is the root of a YAML run file.
type File struct {
	Workers int       `yaml:"workers" validate:"gte=0"`
	Runs    []RunSpec `yaml:"runs" validate:"required,min=1,dive"`

	dir string // Directory relative dataset paths resolve against
}

// RunSpec describes one run. Unset overrides fall back to the preset.
type RunSpec struct {
	Name                 string    `yaml:"name" validate:"required"`
	Gate                 string    `yaml:"gate" validate:"required_without=Dataset,excluded_with=Dataset"`
	Dataset              string    `yaml:"dataset"`
	Preset               string    `yaml:"preset"`
	LearningRate         *float64  `yaml:"learning_rate"`
	MaxIterations        *int      `yaml:"max_iterations"`
	ConvergenceThreshold *float64  `yaml:"convergence_threshold"`
	ReportInterval       *int      `yaml:"report_interval"`
	UpdateMode           string    `yaml:"update_mode"`
	Init                 *InitSpec `yaml:"init"`
}

// InitSpec selects the initial-parameter policy.
//
// Weights/Bias give a fixed start; Seed gives a uniform draw, or a
// Xavier draw when Xavier is set. Fixed and seeded forms are exclusive.
type InitSpec struct {
	Weights []float64 `yaml:"weights"`
	Bias    *float64  `yaml:"bias"`
	Seed    *int64    `yaml:"seed"`
	Xavier  bool      `yaml:"xavier"`
}

var validate = validator.New()

// Load reads and validates a run file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is user-provided on purpose
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes and validates a run file. Unknown fields are rejected.
// Relative dataset paths resolve against the working directory.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return &f, nil
}

// Jobs resolves every run into a sweep job.
func (f *File) Jobs() ([]sweep.Job, error) {
	jobs := make([]sweep.Job, 0, len(f.Runs))
	for _, spec := range f.Runs {
		ds, cfg, err := spec.Resolve(f.dir)
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", spec.Name, err)
		}
		jobs = append(jobs, sweep.Job{Name: spec.Name, Dataset: ds, Config: cfg})
	}
	return jobs, nil
}

// Resolve loads the dataset and builds the final training configuration.
//
// The returned config has been validated.
func (r RunSpec) Resolve(baseDir string) (*dataset.Dataset, trainer.Config, error) {
	ds, err := r.dataset(baseDir)
	if err != nil {
		return nil, trainer.Config{}, err
	}

	name := r.Preset
	if name == "" {
		name = DefaultPreset
	}
	preset, err := LookupPreset(name)
	if err != nil {
		return nil, trainer.Config{}, err
	}

	cfg, err := r.apply(preset.For(ds), ds.Width())
	if err != nil {
		return nil, trainer.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, trainer.Config{}, err
	}
	return ds, cfg, nil
}

func (r RunSpec) dataset(baseDir string) (*dataset.Dataset, error) {
	if r.Gate != "" {
		return dataset.Gate(r.Gate)
	}

	path := r.Dataset
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return dataset.Load(path)
}

// apply layers the run overrides on top of cfg.
func (r RunSpec) apply(cfg trainer.Config, dim int) (trainer.Config, error) {
	if r.LearningRate != nil {
		cfg.LearningRate = *r.LearningRate
	}
	if r.MaxIterations != nil {
		cfg.MaxIterations = *r.MaxIterations
	}
	if r.ConvergenceThreshold != nil {
		cfg.ConvergenceThreshold = *r.ConvergenceThreshold
	}
	if r.ReportInterval != nil {
		cfg.ReportInterval = *r.ReportInterval
	}
	if r.UpdateMode != "" {
		mode, err := optim.ParseMode(r.UpdateMode)
		if err != nil {
			return cfg, &trainer.ConfigurationError{Field: "Mode", Reason: err.Error(), Err: err}
		}
		cfg.Mode = mode
	}

	if r.Init != nil {
		policy, err := r.Init.initializer(cfg.Init, dim)
		if err != nil {
			return cfg, err
		}
		cfg.Init = policy
	}
	return cfg, nil
}

// initializer builds the policy, falling back to base for unset parts.
func (s InitSpec) initializer(base nn.Initializer, dim int) (nn.Initializer, error) {
	fixed := s.Weights != nil || s.Bias != nil
	if fixed && (s.Seed != nil || s.Xavier) {
		return nil, fmt.Errorf("%w: init.seed and init.xavier cannot be combined with init.weights or init.bias", ErrConflict)
	}

	switch {
	case s.Seed != nil && s.Xavier:
		return nn.Xavier{Seed: *s.Seed}, nil
	case s.Seed != nil:
		return nn.Uniform{Seed: *s.Seed}, nil
	case s.Xavier:
		return nn.Xavier{}, nil
	case !fixed:
		return base, nil
	}

	// Start from the preset's fixed values when only one part is given.
	start := nn.Fixed{Weights: make([]float64, dim)}
	if prev, ok := base.(nn.Fixed); ok {
		start = prev
	}
	if s.Weights != nil {
		start.Weights = s.Weights
	}
	if s.Bias != nil {
		start.Bias = *s.Bias
	}
	return start, nil
}
