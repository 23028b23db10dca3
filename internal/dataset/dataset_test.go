package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesInputs(t *testing.T) {
	inputs := [][]float64{{0, 1}, {1, 0}}
	labels := []float64{1, 0}

	ds, err := New("copy", inputs, labels)
	require.NoError(t, err)

	inputs[0][0] = 9
	labels[0] = 9

	assert.Equal(t, []float64{0, 1}, ds.Input(0))
	assert.Equal(t, 1.0, ds.Label(0))
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 2, ds.Width())
}

func TestNew_LabelCountMismatch(t *testing.T) {
	_, err := New("bad", [][]float64{{0, 0}, {1, 1}}, []float64{0})

	var dim *DimensionMismatchError
	require.ErrorAs(t, err, &dim)
	assert.Equal(t, 2, dim.Want)
	assert.Equal(t, 1, dim.Got)
}

func TestNew_RaggedInputs(t *testing.T) {
	_, err := New("ragged", [][]float64{{0, 0}, {1, 1, 1}}, []float64{0, 1})

	var dim *DimensionMismatchError
	require.ErrorAs(t, err, &dim)
	assert.Equal(t, 2, dim.Want)
	assert.Equal(t, 3, dim.Got)
}

func TestNew_Empty(t *testing.T) {
	_, err := New("empty", nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New("zero-width", [][]float64{{}}, []float64{0})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNew_InvalidLabel(t *testing.T) {
	_, err := New("labels", [][]float64{{0}, {1}}, []float64{0, 0.5})
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestNew_NonFiniteInput(t *testing.T) {
	tests := map[string]float64{
		"nan":  math.NaN(),
		"+inf": math.Inf(1),
		"-inf": math.Inf(-1),
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New("bad", [][]float64{{0, 0}, {1, v}}, []float64{0, 1})
			assert.ErrorIs(t, err, ErrNotFinite)
			assert.ErrorContains(t, err, "example 1 input 1")
		})
	}
}

func TestMatrixAndLabelVector(t *testing.T) {
	ds := And()

	m := ds.Matrix()
	r, c := m.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.0, m.At(3, 0))
	assert.Equal(t, 0.0, m.At(1, 0))
	assert.Equal(t, 1.0, m.At(1, 1))

	y := ds.LabelVector()
	assert.Equal(t, []float64{0, 0, 0, 1}, y.RawVector().Data)

	// Fresh copies every call.
	m.Set(0, 0, 5)
	assert.Equal(t, 0.0, ds.Matrix().At(0, 0))
}

func TestGates(t *testing.T) {
	tests := []struct {
		name   string
		labels []float64
		width  int
	}{
		{"and", []float64{0, 0, 0, 1}, 2},
		{"nand", []float64{1, 1, 1, 0}, 2},
		{"or", []float64{0, 1, 1, 1}, 2},
		{"nor", []float64{1, 0, 0, 0}, 2},
		{"xor", []float64{0, 1, 1, 0}, 2},
		{"xnor", []float64{1, 0, 0, 1}, 2},
		{"not", []float64{1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Gate(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, ds.Name())
			assert.Equal(t, tt.labels, ds.Labels())
			assert.Equal(t, tt.width, ds.Width())
		})
	}
}

func TestGate_CaseInsensitive(t *testing.T) {
	ds, err := Gate(" AND ")
	require.NoError(t, err)
	assert.Equal(t, "and", ds.Name())
}

func TestGate_Unknown(t *testing.T) {
	_, err := Gate("implies")
	assert.ErrorIs(t, err, ErrUnknownGate)
}

func TestGateNames(t *testing.T) {
	assert.Equal(t, []string{"and", "nand", "nor", "not", "or", "xnor", "xor"}, GateNames())
}

func TestParse(t *testing.T) {
	doc := []byte(`
name: implies
examples:
  - inputs: [0, 0]
    label: 1
  - inputs: [0, 1]
    label: 1
  - inputs: [1, 0]
    label: 0
  - inputs: [1, 1]
    label: 1
`)
	ds, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "implies", ds.Name())
	assert.Equal(t, []float64{1, 1, 0, 1}, ds.Labels())
	assert.Equal(t, []float64{1, 0}, ds.Input(2))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("name: x\nrows: []\n"))
	assert.Error(t, err)
}

func TestParse_InvalidDataset(t *testing.T) {
	doc := []byte(`
examples:
  - inputs: [0, 0]
    label: 0
  - inputs: [0, 1, 1]
    label: 1
`)
	_, err := Parse(doc)

	var dim *DimensionMismatchError
	assert.ErrorAs(t, err, &dim)
}

func TestParse_NonFiniteInput(t *testing.T) {
	for _, doc := range []string{
		"examples:\n  - {inputs: [.nan, 0], label: 0}\n  - {inputs: [1, 1], label: 1}\n",
		"examples:\n  - {inputs: [0, 0], label: 0}\n  - {inputs: [.inf, 1], label: 1}\n",
		"examples:\n  - {inputs: [-.inf, 0], label: 0}\n  - {inputs: [1, 1], label: 1}\n",
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrNotFinite, doc)
	}
}

func TestLoad_DefaultsNameToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.yaml")
	doc := "examples:\n  - inputs: [0]\n    label: 0\n  - inputs: [1]\n    label: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "identity", ds.Name())
	assert.Equal(t, 1, ds.Width())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
