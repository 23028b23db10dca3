// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package perceptron trains a single sigmoid neuron on small labeled
// truth tables such as boolean gates.
//
// # Overview
//
// This package contains:
//   - Datasets: And, Nand, Or, Nor, Xor, Xnor, Not and custom tables
//   - Initial parameters: Fixed, Uniform, Xavier
//   - Update strategies: ModeBatch, ModePerExample
//   - Training: Run, New (step-wise), Forward, Step, Initialize
//   - Presets: simple, optimized, fast, random
//
// # Basic Usage
//
//	import "github.com/born-ml/gates/perceptron"
//
//	func main() {
//	    res, err := perceptron.Run(perceptron.And(), perceptron.Config{
//	        LearningRate:         1,
//	        MaxIterations:        500,
//	        ConvergenceThreshold: 0.01,
//	        ReportInterval:       25,
//	        Mode:                 perceptron.ModePerExample,
//	        Init:                 perceptron.Fixed{Weights: []float64{2, 2}, Bias: -3},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.Predictions(0.5)) // [0 0 0 1]
//	}
//
// # Errors
//
// Invalid hyperparameters are reported as *ConfigurationError and a
// weight count that does not match the dataset width as
// *DimensionMismatchError, both before any training happens. Use
// errors.As to inspect them.
package perceptron
