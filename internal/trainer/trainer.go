// Package trainer implements a single-layer sigmoid classifier trained by
// gradient descent with hand-derived gradients.
//
// The building blocks are pure functions:
//   - Initialize: validate a Config and draw starting Parameters
//   - Forward: σ(x·w + b) for every example
//   - Step: one forward pass, error, and update on a copy of the parameters
//
// Trainer drives them in a loop bounded by Config.MaxIterations and stops
// early the first time the mean absolute error falls below
// Config.ConvergenceThreshold. Progress is exposed as a lazily produced
// sequence of IterationRecord values; the package never prints.
//
// Example:
//
//	res, err := trainer.Run(dataset.And(), cfg, trainer.ObserverFunc(func(r trainer.IterationRecord) {
//	    fmt.Printf("%4d\t%.6f\n", r.Epoch, r.MAE)
//	}))
package trainer

import (
	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Initialize validates cfg and draws starting parameters for inputs of
// width dim.
//
// Returns *ConfigurationError for an invalid config and
// *dataset.DimensionMismatchError when a fixed policy carries a weight
// count different from dim. Seeded policies are reproducible.
func Initialize(cfg Config, dim int) (*nn.Parameters, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := cfg.Init.Init(dim)
	if p.Dim() != dim {
		return nil, &dataset.DimensionMismatchError{What: "weight count", Want: dim, Got: p.Dim()}
	}
	return p, nil
}

// Forward computes σ(x·w + b) for every row of x.
//
// Pure: neither x nor p is modified and identical arguments produce
// bit-identical output. Returns *dataset.DimensionMismatchError when the
// column count of x differs from the weight count.
func Forward(x mat.Matrix, p *nn.Parameters) (*mat.VecDense, error) {
	n, c := x.Dims()
	if c != p.Dim() {
		return nil, &dataset.DimensionMismatchError{What: "input width", Want: p.Dim(), Got: c}
	}

	out := mat.NewVecDense(n, nil)
	out.MulVec(x, mat.NewVecDense(c, p.Weights))

	z := out.RawVector().Data
	floats.AddConst(p.Bias, z)
	nn.SigmoidSlice(z, z)
	return out, nil
}

// Step performs one update and returns the new parameters together with
// the mean absolute error measured before the update.
//
// p is not modified. Returns *dataset.DimensionMismatchError when the
// shapes of x, y and p disagree.
func Step(x mat.Matrix, y *mat.VecDense, p *nn.Parameters, opt optim.Optimizer) (*nn.Parameters, float64, error) {
	ev, err := evaluate(x, y, p)
	if err != nil {
		return nil, 0, err
	}

	next := p.Clone()
	opt.Step(next, x, ev.errs, ev.outputs)
	return next, ev.mae, nil
}

// evaluation is one forward pass and its error signal.
type evaluation struct {
	outputs *mat.VecDense
	errs    *mat.VecDense // label − output
	mae     float64
}

func evaluate(x mat.Matrix, y *mat.VecDense, p *nn.Parameters) (evaluation, error) {
	out, err := Forward(x, p)
	if err != nil {
		return evaluation{}, err
	}
	if y.Len() != out.Len() {
		return evaluation{}, &dataset.DimensionMismatchError{What: "label count", Want: out.Len(), Got: y.Len()}
	}

	errs := mat.NewVecDense(out.Len(), nil)
	errs.SubVec(y, out)

	return evaluation{
		outputs: out,
		errs:    errs,
		mae:     nn.MeanAbsoluteError(mat.Col(nil, 0, y), out.RawVector().Data),
	}, nil
}
