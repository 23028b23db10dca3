// Package optim implements the hand-derived update rules of the perceptron.
//
// This package provides:
//   - Optimizer interface: applies one update to Parameters in place
//   - Batch: full-batch gradient descent on ½·Σerror² through the sigmoid
//   - PerExample: example-by-example update with the logistic gradient
//
// Neither strategy relies on automatic differentiation: the gradients are
// written out explicitly from the chain rule.
//
// Example usage:
//
//	opt, err := optim.New(optim.ModeBatch, 1.0)
//	if err != nil {
//	    return err
//	}
//
//	// errs = labels - outputs from the forward pass
//	opt.Step(params, x, errs, outputs)
package optim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/gates/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownMode is returned for an update mode that has no strategy.
var ErrUnknownMode = errors.New("unknown update mode")

// Mode names an update strategy.
type Mode string

// Supported update modes.
const (
	ModeBatch      Mode = "batch"
	ModePerExample Mode = "per_example"
)

// Modes lists the supported update modes.
func Modes() []Mode {
	return []Mode{ModeBatch, ModePerExample}
}

// ParseMode converts a user-supplied string into a Mode.
//
// Accepts "per-example" as a spelling of "per_example". The empty string
// selects ModeBatch.
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", string(ModeBatch):
		return ModeBatch, nil
	case string(ModePerExample):
		return ModePerExample, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Optimizer is the base interface for all update strategies.
//
// All optimizers must implement:
//   - Step: Apply one update to the parameters in place
//   - LR: Get the learning rate (for logs)
//   - Mode: Report which strategy this is
type Optimizer interface {
	// Step updates p in place.
	//
	// x holds one example per row, errs the per-example error
	// (label − output) and outputs the sigmoid activations, both
	// computed from p before the call. Dimensions are assumed to have
	// been validated by the caller; mismatches panic.
	Step(p *nn.Parameters, x mat.Matrix, errs, outputs mat.Vector)

	// LR returns the learning rate.
	LR() float64

	// Mode returns the strategy name.
	Mode() Mode
}

// New creates the optimizer for mode with learning rate lr.
func New(mode Mode, lr float64) (Optimizer, error) {
	switch mode {
	case ModeBatch, "":
		return NewBatch(lr), nil
	case ModePerExample:
		return NewPerExample(lr), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
