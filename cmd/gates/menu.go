package main

import (
	"errors"
	"fmt"

	"github.com/born-ml/gates/internal/config"
	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/report"
	"github.com/born-ml/gates/internal/trainer"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick gates and presets interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for {
				choice, err := askRun()
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				if err != nil {
					return err
				}

				if err := runChoice(cmd, choice); err != nil {
					return err
				}

				again := true
				err = huh.NewConfirm().
					Title("Train another?").
					Value(&again).
					Run()
				if errors.Is(err, huh.ErrUserAborted) || (err == nil && !again) {
					return nil
				}
				if err != nil {
					return err
				}
			}
		},
	}
}

type menuChoice struct {
	gate   string
	preset string
}

func askRun() (menuChoice, error) {
	c := menuChoice{gate: "and", preset: config.DefaultPreset}

	presets := make([]huh.Option[string], 0, len(config.Presets()))
	for _, p := range config.Presets() {
		presets = append(presets, huh.NewOption(p.Name+": "+p.Description, p.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Gate").
				Options(huh.NewOptions(dataset.GateNames()...)...).
				Value(&c.gate),
			huh.NewSelect[string]().
				Title("Preset").
				Options(presets...).
				Value(&c.preset),
		),
	)
	return c, form.Run()
}

func runChoice(cmd *cobra.Command, c menuChoice) error {
	ds, err := dataset.Gate(c.gate)
	if err != nil {
		return err
	}
	p, err := config.LookupPreset(c.preset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Training %s with the %s preset\n\n", ds.Name(), p.Name)

	res, err := trainer.Run(ds, p.For(ds), report.NewTrace(out), report.NewLogger(nil))
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return report.Summary(out, ds, res)
}
