package nn

import "fmt"

// Parameters holds the trainable state of a single-layer sigmoid unit.
//
// One Parameters value belongs to exactly one training run. It is not
// safe for concurrent mutation; runs that execute in parallel must each
// own their own copy (see Clone).
//
// Example:
//
//	p := &nn.Parameters{Weights: []float64{2, 2}, Bias: -3}
//	next := p.Clone()
//	next.Weights[0] += 0.5 // p is unchanged
type Parameters struct {
	Weights []float64 // One weight per input feature
	Bias    float64   // Scalar bias
}

// Dim returns the input dimension the parameters expect.
func (p *Parameters) Dim() int {
	return len(p.Weights)
}

// Clone returns a deep copy of the parameters.
func (p *Parameters) Clone() *Parameters {
	return &Parameters{
		Weights: append([]float64(nil), p.Weights...),
		Bias:    p.Bias,
	}
}

// String formats the parameters for logs.
func (p *Parameters) String() string {
	return fmt.Sprintf("weights=%v bias=%.4f", p.Weights, p.Bias)
}
