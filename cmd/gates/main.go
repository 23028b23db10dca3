// Package main provides the gates CLI: train a sigmoid perceptron on
// boolean gates and compare configurations.
package main

import (
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
