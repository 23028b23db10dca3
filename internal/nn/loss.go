package nn

import "math"

// probEpsilon keeps log() finite in BinaryCrossEntropy.
const probEpsilon = 1e-12

// MeanAbsoluteError computes mean(|labels - outputs|).
//
// This is the convergence metric of the trainer. Panics if the slices
// differ in length or are empty.
func MeanAbsoluteError(labels, outputs []float64) float64 {
	checkLoss("MeanAbsoluteError", labels, outputs)

	var sum float64
	for i, y := range labels {
		sum += math.Abs(y - outputs[i])
	}
	return sum / float64(len(labels))
}

// HalfSquaredError computes ½·Σ(labels - outputs)².
//
// The batch update rule is gradient descent on this objective with
// outputs = σ(x·w + b): -∂E/∂w = xᵀ·(error ⊙ σ').
func HalfSquaredError(labels, outputs []float64) float64 {
	checkLoss("HalfSquaredError", labels, outputs)

	var sum float64
	for i, y := range labels {
		d := y - outputs[i]
		sum += d * d
	}
	return sum / 2
}

// BinaryCrossEntropy computes -Σ[y·log(p) + (1-y)·log(1-p)].
//
// The per-example update rule descends this objective: for a sigmoid
// output, -∂L/∂w = xᵀ·error with no σ' factor. Probabilities are clipped
// to [ε, 1-ε].
func BinaryCrossEntropy(labels, outputs []float64) float64 {
	checkLoss("BinaryCrossEntropy", labels, outputs)

	var sum float64
	for i, y := range labels {
		p := min(max(outputs[i], probEpsilon), 1-probEpsilon)
		sum -= y*math.Log(p) + (1-y)*math.Log(1-p)
	}
	return sum
}

func checkLoss(name string, labels, outputs []float64) {
	if len(labels) != len(outputs) {
		panic(name + ": labels and outputs must have the same length")
	}
	if len(labels) == 0 {
		panic(name + ": empty input")
	}
}
