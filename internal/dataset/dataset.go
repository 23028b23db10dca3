// Package dataset holds the labelled truth tables the perceptron trains on.
package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an immutable ordered set of binary-labelled examples.
//
// All input vectors share the same width and every label is 0 or 1.
// Constructors copy their arguments, so later changes to the caller's
// slices never leak into a training run.
type Dataset struct {
	name   string
	inputs [][]float64
	labels []float64
}

// New validates and copies inputs and labels into a Dataset.
//
// Returns *DimensionMismatchError when the example and label counts
// differ or when input vectors have unequal widths, ErrEmpty when there
// are no examples or the inputs have zero width, ErrNotFinite when an
// input is NaN or ±Inf, and ErrInvalidLabel when a label is neither 0
// nor 1.
func New(name string, inputs [][]float64, labels []float64) (*Dataset, error) {
	if len(inputs) == 0 {
		return nil, ErrEmpty
	}
	if len(inputs) != len(labels) {
		return nil, &DimensionMismatchError{What: "label count", Want: len(inputs), Got: len(labels)}
	}

	width := len(inputs[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: inputs have zero width", ErrEmpty)
	}

	ds := &Dataset{
		name:   name,
		inputs: make([][]float64, len(inputs)),
		labels: make([]float64, len(labels)),
	}
	for i, row := range inputs {
		if len(row) != width {
			return nil, &DimensionMismatchError{What: fmt.Sprintf("width of example %d", i), Want: width, Got: len(row)}
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: example %d input %d is %v", ErrNotFinite, i, j, v)
			}
		}
		ds.inputs[i] = append([]float64(nil), row...)
	}
	for i, y := range labels {
		if y != 0 && y != 1 {
			return nil, fmt.Errorf("%w: example %d has label %v", ErrInvalidLabel, i, y)
		}
		ds.labels[i] = y
	}

	return ds, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(name string, inputs [][]float64, labels []float64) *Dataset {
	ds, err := New(name, inputs, labels)
	if err != nil {
		panic(fmt.Sprintf("dataset %q: %v", name, err))
	}
	return ds
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// Len returns the number of examples.
func (d *Dataset) Len() int { return len(d.labels) }

// Width returns the number of features per example.
func (d *Dataset) Width() int { return len(d.inputs[0]) }

// Input returns a copy of the i-th input vector.
func (d *Dataset) Input(i int) []float64 {
	return append([]float64(nil), d.inputs[i]...)
}

// Label returns the i-th label.
func (d *Dataset) Label(i int) float64 { return d.labels[i] }

// Labels returns a copy of all labels.
func (d *Dataset) Labels() []float64 {
	return append([]float64(nil), d.labels...)
}

// Matrix returns the inputs as a fresh Len×Width dense matrix.
func (d *Dataset) Matrix() *mat.Dense {
	data := make([]float64, 0, d.Len()*d.Width())
	for _, row := range d.inputs {
		data = append(data, row...)
	}
	return mat.NewDense(d.Len(), d.Width(), data)
}

// LabelVector returns the labels as a fresh dense vector.
func (d *Dataset) LabelVector() *mat.VecDense {
	return mat.NewVecDense(d.Len(), d.Labels())
}
