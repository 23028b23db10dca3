// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package perceptron_test

import (
	"fmt"

	"github.com/born-ml/gates/perceptron"
)

func ExampleRun() {
	res, err := perceptron.Run(perceptron.And(), perceptron.Config{
		LearningRate:         1,
		MaxIterations:        500,
		ConvergenceThreshold: 0.01,
		ReportInterval:       25,
		Mode:                 perceptron.ModePerExample,
		Init:                 perceptron.Fixed{Weights: []float64{2, 2}, Bias: -3},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Converged)
	fmt.Println(res.Predictions(0.5))
	// Output:
	// true
	// [0 0 0 1]
}

func ExampleConfigurationError() {
	_, err := perceptron.Run(perceptron.And(), perceptron.Config{
		LearningRate:   0,
		MaxIterations:  10,
		ReportInterval: 1,
		Init:           perceptron.Fixed{Weights: []float64{0, 0}},
	})
	fmt.Println(err)
	// Output:
	// invalid configuration: LearningRate must be > 0 (got 0)
}
