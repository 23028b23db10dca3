package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/gates/internal/config"
	"github.com/born-ml/gates/internal/dataset"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in gates and presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Gates: %s\n\n", strings.Join(dataset.GateNames(), ", "))
			fmt.Fprintln(out, "Presets:")
			for _, p := range config.Presets() {
				marker := " "
				if p.Name == config.DefaultPreset {
					marker = "*"
				}
				fmt.Fprintf(out, " %s %-10s %s\n", marker, p.Name, p.Description)
			}
		},
	}
}
