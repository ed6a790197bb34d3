// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decolab/internal/render"
	"github.com/katalvlaran/decolab/walker"
)

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <setup.yaml>",
		Short: "Calculate tissue loading for every dive of a setup",
		Long: `Calculate tissue loading for every dive of a YAML or JSON dive setup.

Shows per dive:
- Peak pressure of each compartment
- Deepest ceiling at the low gradient factor
- First stop depth
- Highest supersaturation gradient factor`,
		Args: cobra.ExactArgs(1),
		RunE: a.runCalc,
	}
}

func (a *app) runCalc(cmd *cobra.Command, args []string) error {
	setup, results, err := a.calculate(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	summaries := make([]walker.Summary, len(results))
	for i, res := range results {
		s, err := walker.Summarize(setup.Dives[i].Name, res, setup.GFLow, a.cfg.Model.StopIncrement)
		if err != nil {
			return fmt.Errorf("failed to summarize dive %d: %w", i, err)
		}
		summaries[i] = s
	}

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return render.JSON(out, summaries)
	}
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := render.Summary(out, s); err != nil {
			return err
		}
	}
	return nil
}
