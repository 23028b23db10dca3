package optim

import (
	"github.com/born-ml/gates/internal/nn"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Batch implements full-batch gradient descent through the sigmoid.
//
// Update rule:
//
//	δ = error ⊙ output ⊙ (1 − output)
//	w = w + lr · xᵀδ
//	b = b + lr · Σδ
//
// This is descent on ½·Σ(label − σ(x·w + b))², with the whole dataset
// contributing to a single update per call.
type Batch struct {
	lr float64
}

// NewBatch creates a full-batch optimizer.
func NewBatch(lr float64) *Batch {
	return &Batch{lr: lr}
}

// Step implements Optimizer.
func (b *Batch) Step(p *nn.Parameters, x mat.Matrix, errs, outputs mat.Vector) {
	n, _ := x.Dims()

	delta := mat.NewVecDense(n, nil)
	for i := range n {
		delta.SetVec(i, errs.AtVec(i)*nn.SigmoidDerivative(outputs.AtVec(i)))
	}

	// xᵀ·δ
	var grad mat.VecDense
	grad.MulVec(x.T(), delta)

	floats.AddScaled(p.Weights, b.lr, grad.RawVector().Data)
	p.Bias += b.lr * mat.Sum(delta)
}

// LR implements Optimizer.
func (b *Batch) LR() float64 { return b.lr }

// Mode implements Optimizer.
func (b *Batch) Mode() Mode { return ModeBatch }

// PerExample applies one update per example, in dataset order.
//
// Update rule, for each example i:
//
//	w = w + lr · error_i · x_i
//	b = b + lr · error_i
//
// The errors come from the forward pass that preceded the call and are
// not recomputed between examples. The step direction is the negative
// gradient of binary cross-entropy for a sigmoid output, which is why no
// σ' factor appears.
type PerExample struct {
	lr float64
}

// NewPerExample creates a per-example optimizer.
func NewPerExample(lr float64) *PerExample {
	return &PerExample{lr: lr}
}

// Step implements Optimizer.
func (s *PerExample) Step(p *nn.Parameters, x mat.Matrix, errs, _ mat.Vector) {
	n, c := x.Dims()
	row := make([]float64, c)

	for i := range n {
		mat.Row(row, i, x)
		e := errs.AtVec(i)
		floats.AddScaled(p.Weights, s.lr*e, row)
		p.Bias += s.lr * e
	}
}

// LR implements Optimizer.
func (s *PerExample) LR() float64 { return s.lr }

// Mode implements Optimizer.
func (s *PerExample) Mode() Mode { return ModePerExample }
