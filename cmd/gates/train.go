package main

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/gates/internal/config"
	"github.com/born-ml/gates/internal/report"
	"github.com/born-ml/gates/internal/trainer"
	"github.com/spf13/cobra"
)

type trainOptions struct {
	gate      string
	dataset   string
	preset    string
	mode      string
	lr        float64
	maxIter   int
	threshold float64
	interval  int
	seed      int64
	weights   []float64
	bias      float64
	quiet     bool
}

func newTrainCmd() *cobra.Command {
	var opts trainOptions

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train on one gate or dataset and print the trace and final report",
		Example: `  gates train --gate and --preset simple
  gates train --gate or --mode per_example --lr 0.5 --seed 7
  gates train --dataset implies.yaml --weights 0,0 --bias 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := opts.runSpec(cmd)
			ds, cfg, err := spec.Resolve("")
			if err != nil {
				return err
			}

			tr, err := trainer.New(ds, cfg)
			if err != nil {
				return err
			}

			opt := tr.Optimizer()
			slog.Info("training",
				"dataset", ds.Name(),
				"mode", opt.Mode(),
				"learning_rate", opt.LR(),
				"init", cfg.Init.Describe(),
				"max_iterations", cfg.MaxIterations,
			)

			observers := []trainer.Observer{report.NewLogger(nil)}
			if !opts.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Training %s\n\n", ds.Name())
				observers = append(observers, report.NewTrace(cmd.OutOrStdout()))
			}

			for rec := range tr.Records() {
				for _, o := range observers {
					o.Observe(rec)
				}
			}
			res := tr.Result()
			if !opts.quiet {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return report.Summary(cmd.OutOrStdout(), ds, res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.gate, "gate", "", "Built-in gate (and, or, nand, nor, not, xor, xnor)")
	f.StringVar(&opts.dataset, "dataset", "", "YAML truth table file")
	f.StringVar(&opts.preset, "preset", config.DefaultPreset, "Starting preset")
	f.StringVar(&opts.mode, "mode", "", "Update strategy (batch, per_example)")
	f.Float64Var(&opts.lr, "lr", 0, "Learning rate")
	f.IntVar(&opts.maxIter, "max-iter", 0, "Maximum iterations")
	f.Float64Var(&opts.threshold, "threshold", 0, "Convergence threshold on mean absolute error")
	f.IntVar(&opts.interval, "interval", 0, "Report every N epochs")
	f.Int64Var(&opts.seed, "seed", 0, "Seeded uniform initialization")
	f.Float64SliceVar(&opts.weights, "weights", nil, "Initial weights (comma separated)")
	f.Float64Var(&opts.bias, "bias", 0, "Initial bias")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print the final report")

	cmd.MarkFlagsMutuallyExclusive("gate", "dataset")
	cmd.MarkFlagsOneRequired("gate", "dataset")
	cmd.MarkFlagsMutuallyExclusive("seed", "weights")
	cmd.MarkFlagsMutuallyExclusive("seed", "bias")
	return cmd
}

// runSpec turns the flags that were set into a run, so train resolves
// exactly like an entry of a run file.
func (o *trainOptions) runSpec(cmd *cobra.Command) config.RunSpec {
	f := cmd.Flags()
	spec := config.RunSpec{
		Name:       o.gate,
		Gate:       o.gate,
		Dataset:    o.dataset,
		Preset:     o.preset,
		UpdateMode: o.mode,
	}
	if spec.Name == "" {
		spec.Name = o.dataset
	}

	if f.Changed("lr") {
		spec.LearningRate = &o.lr
	}
	if f.Changed("max-iter") {
		spec.MaxIterations = &o.maxIter
	}
	if f.Changed("threshold") {
		spec.ConvergenceThreshold = &o.threshold
	}
	if f.Changed("interval") {
		spec.ReportInterval = &o.interval
	}

	var policy config.InitSpec
	switch {
	case f.Changed("seed"):
		policy.Seed = &o.seed
	case f.Changed("weights") || f.Changed("bias"):
		if f.Changed("weights") {
			policy.Weights = o.weights
		}
		if f.Changed("bias") {
			policy.Bias = &o.bias
		}
	default:
		return spec
	}
	spec.Init = &policy
	return spec
}
