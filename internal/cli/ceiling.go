// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decolab/internal/render"
	"github.com/katalvlaran/decolab/limits"
)

// ceilingSeries is the JSON shape of one dive's ceiling output.
type ceilingSeries struct {
	Name     string           `json:"name,omitempty"`
	GF       float64          `json:"gf"`
	Times    []float64        `json:"timePoints"`
	Ceilings []limits.Ceiling `json:"ceilings"`
}

func (a *app) ceilingCmd() *cobra.Command {
	var (
		gf    float64
		every int
	)
	cmd := &cobra.Command{
		Use:   "ceiling <setup.yaml>",
		Short: "Print the dive ceiling over time",
		Long: `Print the ceiling time series of every dive of a setup.

The ceiling is evaluated at --gf, or at the setup's low gradient factor
when the flag is not given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("gf") && (gf < 0 || gf > 1) {
				return fmt.Errorf("--gf must be in [0, 1], got %v", gf)
			}
			if every < 1 {
				return fmt.Errorf("--every must be positive, got %d", every)
			}

			setup, results, err := a.calculate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("gf") {
				gf = setup.GFLow
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				series := make([]ceilingSeries, len(results))
				for i, res := range results {
					series[i] = ceilingSeries{
						Name:     setup.Dives[i].Name,
						GF:       gf,
						Times:    res.TimePoints,
						Ceilings: res.Ceilings(gf),
					}
				}
				return render.JSON(out, series)
			}

			for i, res := range results {
				name := setup.Dives[i].Name
				if name == "" {
					name = fmt.Sprintf("dive %d", i+1)
				}
				fmt.Fprintln(out, render.Title.Render(fmt.Sprintf("%s, GF %.0f%%", name, gf*100)))
				if err := render.Ceilings(out, res, res.Ceilings(gf), every); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&gf, "gf", 0, "gradient factor to evaluate (default: the setup's gfLow)")
	cmd.Flags().IntVar(&every, "every", 6, "print every n-th grid point")
	return cmd
}
