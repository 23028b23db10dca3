package dataset

import (
	"fmt"
	"slices"
	"strings"
)

// twoInputs is the row order shared by every 2-input truth table.
var twoInputs = [][]float64{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 1},
}

// And returns the AND truth table: only (1,1) is true.
func And() *Dataset { return MustNew("and", twoInputs, []float64{0, 0, 0, 1}) }

// Nand returns the NAND truth table.
func Nand() *Dataset { return MustNew("nand", twoInputs, []float64{1, 1, 1, 0}) }

// Or returns the OR truth table.
func Or() *Dataset { return MustNew("or", twoInputs, []float64{0, 1, 1, 1}) }

// Nor returns the NOR truth table.
func Nor() *Dataset { return MustNew("nor", twoInputs, []float64{1, 0, 0, 0}) }

// Xor returns the XOR truth table. It is not linearly separable, so a
// single-layer model never reaches a small error on it.
func Xor() *Dataset { return MustNew("xor", twoInputs, []float64{0, 1, 1, 0}) }

// Xnor returns the XNOR truth table. Not linearly separable.
func Xnor() *Dataset { return MustNew("xnor", twoInputs, []float64{1, 0, 0, 1}) }

// Not returns the 1-input NOT truth table.
func Not() *Dataset { return MustNew("not", [][]float64{{0}, {1}}, []float64{1, 0}) }

var gates = map[string]func() *Dataset{
	"and":  And,
	"nand": Nand,
	"or":   Or,
	"nor":  Nor,
	"xor":  Xor,
	"xnor": Xnor,
	"not":  Not,
}

// Gate returns the truth table for name (case-insensitive).
func Gate(name string) (*Dataset, error) {
	build, ok := gates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownGate, name, strings.Join(GateNames(), ", "))
	}
	return build(), nil
}

// GateNames lists the built-in gates in sorted order.
func GateNames() []string {
	names := make([]string, 0, len(gates))
	for name := range gates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
