package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAbsoluteError(t *testing.T) {
	labels := []float64{0, 0, 0, 1}
	outputs := []float64{0.1, 0.2, 0.3, 0.6}

	// (0.1 + 0.2 + 0.3 + 0.4) / 4 = 0.25
	assert.InDelta(t, 0.25, MeanAbsoluteError(labels, outputs), 1e-12)
	assert.Zero(t, MeanAbsoluteError(labels, labels))
}

func TestHalfSquaredError(t *testing.T) {
	// ½·(0.5² + 0.5²) = 0.25
	assert.InDelta(t, 0.25, HalfSquaredError([]float64{0, 1}, []float64{0.5, 0.5}), 1e-12)
}

func TestBinaryCrossEntropy(t *testing.T) {
	// -log(0.5) twice.
	assert.InDelta(t, 2*math.Ln2, BinaryCrossEntropy([]float64{0, 1}, []float64{0.5, 0.5}), 1e-12)

	// Clipping keeps confident mistakes finite.
	got := BinaryCrossEntropy([]float64{1}, []float64{0})
	assert.False(t, math.IsInf(got, 0))
	assert.Greater(t, got, 20.0)
}

func TestLoss_PanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { MeanAbsoluteError([]float64{0}, []float64{0, 1}) })
	assert.Panics(t, func() { HalfSquaredError(nil, nil) })
}
