package main

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/gates/internal/config"
	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/parallel"
	"github.com/born-ml/gates/internal/report"
	"github.com/born-ml/gates/internal/sweep"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var (
		file    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Train several configurations concurrently and compare them",
		Long: `Without --config, every preset is trained on every linearly separable
built-in gate. With --config, the runs of a YAML run file are trained.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var jobs []sweep.Job
			if file != "" {
				f, err := config.Load(file)
				if err != nil {
					return err
				}
				if jobs, err = f.Jobs(); err != nil {
					return err
				}
				if !cmd.Flags().Changed("workers") && f.Workers > 0 {
					workers = f.Workers
				}
			} else {
				jobs = presetJobs()
			}

			pcfg := parallel.Config{Enabled: workers != 1, NumWorkers: workers}
			slog.Info("sweep", "jobs", len(jobs), "workers", workers)

			outcomes, err := sweep.Run(cmd.Context(), jobs, pcfg)
			if err != nil {
				return err
			}
			for _, o := range outcomes {
				slog.Debug("job finished",
					"name", o.Job.Name,
					"id", o.Job.ID,
					"epochs", o.Result.Epochs,
					"duration", o.Duration,
				)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d runs\n", len(outcomes))
			return report.SweepTable(cmd.OutOrStdout(), outcomes)
		},
	}

	cmd.Flags().StringVarP(&file, "config", "c", "", "YAML run file")
	cmd.Flags().IntVarP(&workers, "workers", "w", parallel.DefaultConfig().NumWorkers, "Concurrent runs (1 runs sequentially)")
	return cmd
}

// presetJobs pairs every preset with every gate a single neuron can learn.
func presetJobs() []sweep.Job {
	gates := []func() *dataset.Dataset{dataset.And, dataset.Or, dataset.Nand, dataset.Nor, dataset.Not}

	var jobs []sweep.Job
	for _, p := range config.Presets() {
		for _, gate := range gates {
			ds := gate()
			jobs = append(jobs, sweep.Job{
				Name:    ds.Name() + "/" + p.Name,
				Dataset: ds,
				Config:  p.For(ds),
			})
		}
	}
	return jobs
}
