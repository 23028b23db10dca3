package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"github.com/born-ml/gates/internal/trainer"
)

// DefaultPreset is used when a run names no preset.
const DefaultPreset = "optimized"

// Preset is a named starting configuration.
type Preset struct {
	Name        string
	Description string
	Config      trainer.Config
}

var presets = []Preset{
	{
		Name:        "simple",
		Description: "per-example updates from w=(2,2) b=-3, lr 1.0, 500 iterations",
		Config: trainer.Config{
			LearningRate:         1.0,
			MaxIterations:        500,
			ConvergenceThreshold: 0.01,
			ReportInterval:       25,
			Mode:                 optim.ModePerExample,
			Init:                 nn.Fixed{Weights: []float64{2, 2}, Bias: -3},
		},
	},
	{
		Name:        "optimized",
		Description: "full-batch updates from w=(2,2) b=-3, lr 1.0, 1000 iterations",
		Config: trainer.Config{
			LearningRate:         1.0,
			MaxIterations:        1000,
			ConvergenceThreshold: 0.01,
			ReportInterval:       100,
			Mode:                 optim.ModeBatch,
			Init:                 nn.Fixed{Weights: []float64{2, 2}, Bias: -3},
		},
	},
	{
		Name:        "fast",
		Description: "full-batch updates from w=(1,1) b=-1.5, lr 2.0, 1000 iterations",
		Config: trainer.Config{
			LearningRate:         2.0,
			MaxIterations:        1000,
			ConvergenceThreshold: 0.01,
			ReportInterval:       50,
			Mode:                 optim.ModeBatch,
			Init:                 nn.Fixed{Weights: []float64{1, 1}, Bias: -1.5},
		},
	},
	{
		Name:        "random",
		Description: "full-batch updates from a seeded uniform draw, lr 0.1, 10000 iterations, no early stop",
		Config: trainer.Config{
			LearningRate:         0.1,
			MaxIterations:        10000,
			ConvergenceThreshold: 0,
			ReportInterval:       1000,
			Mode:                 optim.ModeBatch,
			Init:                 nn.Uniform{Seed: 42},
		},
	},
}

// Presets returns copies of all presets in definition order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clone()
	}
	return out
}

// PresetNames lists preset names in definition order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// LookupPreset finds a preset by name (case-insensitive).
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.Name == key {
			return p.clone(), nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
}

// For returns the preset configuration adapted to the width of ds.
//
// Fixed initial weights are truncated, or padded with zeros, to match
// the dataset; seeded policies already follow the requested width.
func (p Preset) For(ds *dataset.Dataset) trainer.Config {
	cfg := p.Config
	if fixed, ok := cfg.Init.(nn.Fixed); ok {
		cfg.Init = nn.Fixed{Weights: fitWeights(fixed.Weights, ds.Width()), Bias: fixed.Bias}
	}
	return cfg
}

// clone copies p so that callers never share weight slices with the
// built-in table.
func (p Preset) clone() Preset {
	if fixed, ok := p.Config.Init.(nn.Fixed); ok {
		p.Config.Init = nn.Fixed{Weights: slices.Clone(fixed.Weights), Bias: fixed.Bias}
	}
	return p
}

func fitWeights(w []float64, dim int) []float64 {
	out := make([]float64, dim)
	copy(out, w)
	return out
}
