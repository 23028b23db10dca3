package nn

import "math"

// SigmoidClamp bounds the pre-activation fed to Sigmoid.
//
// exp(-30) ≈ 9.4e-14 is still well above float64 epsilon, so the output
// for any finite input lies strictly inside (0, 1) and exp never overflows.
const SigmoidClamp = 30.0

// Sigmoid computes the logistic function σ(z) = 1 / (1 + exp(-z)).
//
// The input is clamped to [-SigmoidClamp, SigmoidClamp] before evaluation.
// NaN propagates unchanged.
func Sigmoid(z float64) float64 {
	switch {
	case z > SigmoidClamp:
		z = SigmoidClamp
	case z < -SigmoidClamp:
		z = -SigmoidClamp
	}

	// Evaluate on the side where exp stays below 1.
	if z >= 0 {
		return 1.0 / (1.0 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1.0 + e)
}

// SigmoidDerivative returns σ'(z) expressed through the activation itself:
// given out = σ(z), σ'(z) = out·(1 − out).
func SigmoidDerivative(out float64) float64 {
	return out * (1.0 - out)
}

// SigmoidSlice applies Sigmoid element-wise, writing into dst.
//
// dst may alias z. Returns dst.
func SigmoidSlice(dst, z []float64) []float64 {
	if len(dst) != len(z) {
		panic("nn: SigmoidSlice length mismatch")
	}
	for i, v := range z {
		dst[i] = Sigmoid(v)
	}
	return dst
}
