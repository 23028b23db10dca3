// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package perceptron

import (
	"github.com/born-ml/gates/internal/config"
	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"github.com/born-ml/gates/internal/trainer"
	"gonum.org/v1/gonum/mat"
)

// Datasets

// Dataset is an immutable table of input rows and binary labels.
type Dataset = dataset.Dataset

// NewDataset validates and copies a truth table.
func NewDataset(name string, inputs [][]float64, labels []float64) (*Dataset, error) {
	return dataset.New(name, inputs, labels)
}

// LoadDataset reads a YAML truth table.
func LoadDataset(path string) (*Dataset, error) {
	return dataset.Load(path)
}

// Gate returns a built-in gate by name ("and", "or", ...).
func Gate(name string) (*Dataset, error) {
	return dataset.Gate(name)
}

// GateNames lists the built-in gates.
func GateNames() []string {
	return dataset.GateNames()
}

// And returns the two-input AND table.
func And() *Dataset { return dataset.And() }

// Or returns the two-input OR table.
func Or() *Dataset { return dataset.Or() }

// Nand returns the two-input NAND table.
func Nand() *Dataset { return dataset.Nand() }

// Nor returns the two-input NOR table.
func Nor() *Dataset { return dataset.Nor() }

// Xor returns the two-input XOR table. It is not linearly separable.
func Xor() *Dataset { return dataset.Xor() }

// Xnor returns the two-input XNOR table. It is not linearly separable.
func Xnor() *Dataset { return dataset.Xnor() }

// Not returns the one-input NOT table.
func Not() *Dataset { return dataset.Not() }

// Parameters

// Parameters holds the weights and bias of the neuron.
type Parameters = nn.Parameters

// Initializer produces initial parameters.
type Initializer = nn.Initializer

// Fixed starts from explicit weights and bias.
type Fixed = nn.Fixed

// Uniform draws weights from [-1, 1) and bias from [0, 1) with a seed.
type Uniform = nn.Uniform

// Xavier draws weights from a Glorot uniform range with a seed.
type Xavier = nn.Xavier

// Update strategies

// Mode selects how a gradient step is applied.
type Mode = optim.Mode

// Update strategies.
const (
	ModeBatch      = optim.ModeBatch
	ModePerExample = optim.ModePerExample
)

// Training

// Config holds the hyperparameters of a run.
type Config = trainer.Config

// IterationRecord describes one reported epoch.
type IterationRecord = trainer.IterationRecord

// Observer consumes iteration records.
type Observer = trainer.Observer

// ObserverFunc adapts a function to Observer.
type ObserverFunc = trainer.ObserverFunc

// Result is the final state of a run.
type Result = trainer.Result

// Trainer runs a session step by step through Records.
type Trainer = trainer.Trainer

// Run trains until convergence or until the iteration budget is spent.
func Run(ds *Dataset, cfg Config, observers ...Observer) (*Result, error) {
	return trainer.Run(ds, cfg, observers...)
}

// New prepares a run without executing any epoch.
func New(ds *Dataset, cfg Config) (*Trainer, error) {
	return trainer.New(ds, cfg)
}

// Initialize validates cfg and returns fresh parameters for dim inputs.
func Initialize(cfg Config, dim int) (*Parameters, error) {
	return trainer.Initialize(cfg, dim)
}

// Forward computes the sigmoid output for every row of x.
func Forward(x mat.Matrix, p *Parameters) (*mat.VecDense, error) {
	return trainer.Forward(x, p)
}

// Step performs one update with the given strategy and learning rate.
// It returns the updated copy of p and the error before the update, or
// *ConfigurationError for a non-positive or non-finite lr or an unknown
// mode.
func Step(x mat.Matrix, y *mat.VecDense, p *Parameters, mode Mode, lr float64) (*Parameters, float64, error) {
	opt, err := trainer.NewOptimizer(mode, lr)
	if err != nil {
		return nil, 0, err
	}
	return trainer.Step(x, y, p, opt)
}

// Presets

// Preset is a named, ready-to-use configuration.
type Preset = config.Preset

// Presets returns the built-in presets.
func Presets() []Preset { return config.Presets() }

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, error) {
	return config.LookupPreset(name)
}

// Errors

// ConfigurationError reports an invalid hyperparameter.
type ConfigurationError = trainer.ConfigurationError

// DimensionMismatchError reports disagreeing sizes.
type DimensionMismatchError = dataset.DimensionMismatchError

// Sentinel errors.
var (
	ErrEmpty         = dataset.ErrEmpty
	ErrInvalidLabel  = dataset.ErrInvalidLabel
	ErrUnknownGate   = dataset.ErrUnknownGate
	ErrUnknownMode   = optim.ErrUnknownMode
	ErrUnknownPreset = config.ErrUnknownPreset
)
