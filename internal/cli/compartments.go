// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/decolab/internal/render"
	"github.com/katalvlaran/decolab/tissue"
)

func (a *app) compartmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compartments",
		Short: "Print the active compartment table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tissue.Active()
			if a.jsonOutput() {
				return render.JSON(cmd.OutOrStdout(), struct {
					Variant      string               `json:"variant"`
					Version      uint64               `json:"version"`
					Compartments []tissue.Compartment `json:"compartments"`
				}{table.Variant().String(), table.Version(), table.Compartments()})
			}
			return render.Compartments(cmd.OutOrStdout(), table)
		},
	}
}
