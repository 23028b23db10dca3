package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_ReturnsCopy(t *testing.T) {
	weights := []float64{2, 2}
	policy := Fixed{Weights: weights, Bias: -3}

	p := policy.Init(2)
	require.Equal(t, []float64{2, 2}, p.Weights)
	assert.Equal(t, -3.0, p.Bias)

	p.Weights[0] = 100
	assert.Equal(t, 2.0, weights[0], "Init must not alias the configured slice")
	assert.Equal(t, 2.0, policy.Init(2).Weights[0])
}

func TestUniform_Reproducible(t *testing.T) {
	a := Uniform{Seed: 42}.Init(3)
	b := Uniform{Seed: 42}.Init(3)
	c := Uniform{Seed: 7}.Init(3)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Weights, c.Weights)
}

func TestUniform_Ranges(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		p := Uniform{Seed: seed}.Init(4)
		require.Len(t, p.Weights, 4)
		for _, w := range p.Weights {
			assert.GreaterOrEqual(t, w, -1.0)
			assert.Less(t, w, 1.0)
		}
		assert.GreaterOrEqual(t, p.Bias, 0.0)
		assert.Less(t, p.Bias, 1.0)
	}
}

func TestXavier_Bound(t *testing.T) {
	bound := math.Sqrt(6.0 / 3.0)
	for seed := int64(0); seed < 50; seed++ {
		p := Xavier{Seed: seed}.Init(2)
		for _, w := range p.Weights {
			assert.LessOrEqual(t, math.Abs(w), bound)
		}
		assert.Zero(t, p.Bias)
	}
	assert.Equal(t, Xavier{Seed: 3}.Init(2), Xavier{Seed: 3}.Init(2))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "uniform(seed=42)", Uniform{Seed: 42}.Describe())
	assert.Equal(t, "xavier(seed=-1)", Xavier{Seed: -1}.Describe())
	assert.Equal(t, "weights=[2 2] bias=-3.0000", Fixed{Weights: []float64{2, 2}, Bias: -3}.Describe())
}

func TestParameters_Clone(t *testing.T) {
	p := &Parameters{Weights: []float64{1, 2}, Bias: 0.5}
	q := p.Clone()
	q.Weights[1] = 5
	q.Bias = 1

	assert.Equal(t, []float64{1, 2}, p.Weights)
	assert.Equal(t, 0.5, p.Bias)
	assert.Equal(t, 2, q.Dim())
}
