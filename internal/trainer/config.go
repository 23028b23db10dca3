package trainer

import (
	"fmt"
	"math"
	"sync"

	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"github.com/go-playground/validator/v10"
)

// Config holds the hyperparameters of one training run.
//
// Example:
//
//	cfg := trainer.Config{
//	    LearningRate:         1.0,
//	    MaxIterations:        500,
//	    ConvergenceThreshold: 0.01,
//	    ReportInterval:       25,
//	    Mode:                 optim.ModePerExample,
//	    Init:                 nn.Fixed{Weights: []float64{2, 2}, Bias: -3},
//	}
type Config struct {
	LearningRate         float64        `validate:"gt=0"`                                // Step size (> 0)
	MaxIterations        int            `validate:"gt=0"`                                // Iteration budget (> 0)
	ConvergenceThreshold float64        `validate:"gte=0"`                               // Stop once MAE falls below this (>= 0)
	ReportInterval       int            `validate:"gt=0"`                                // Emit a record every N epochs (> 0)
	Mode                 optim.Mode     `validate:"omitempty,oneof=batch per_example"` // Update strategy (default: batch)
	Init                 nn.Initializer `validate:"required"`                            // Initial-parameter policy
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the configuration.
//
// Returns *ConfigurationError describing the first violated constraint.
func (c Config) Validate() error {
	// Tags compare with < and >, which NaN and ±Inf do not fail reliably.
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"LearningRate", c.LearningRate},
		{"ConvergenceThreshold", c.ConvergenceThreshold},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigurationError{Field: f.name, Reason: ErrNotFinite.Error(), Err: ErrNotFinite}
		}
	}

	if err := configValidator().Struct(c); err != nil {
		return fromValidation(err)
	}
	return nil
}

// NewOptimizer builds the update strategy for mode with learning rate lr.
//
// Returns *ConfigurationError when lr is not a finite positive number or
// mode is unknown. An empty mode selects batch updates.
func NewOptimizer(mode optim.Mode, lr float64) (optim.Optimizer, error) {
	if math.IsNaN(lr) || math.IsInf(lr, 0) {
		return nil, &ConfigurationError{Field: "LearningRate", Reason: ErrNotFinite.Error(), Err: ErrNotFinite}
	}
	if lr <= 0 {
		return nil, &ConfigurationError{Field: "LearningRate", Reason: fmt.Sprintf("must be > 0 (got %v)", lr)}
	}

	opt, err := optim.New(mode, lr)
	if err != nil {
		return nil, &ConfigurationError{Field: "Mode", Reason: err.Error(), Err: err}
	}
	return opt, nil
}

// mode returns the configured mode, defaulting to batch.
func (c Config) mode() optim.Mode {
	if c.Mode == "" {
		return optim.ModeBatch
	}
	return c.Mode
}
