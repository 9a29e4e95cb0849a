// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrientCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orient <in> <out>",
		Short: "Make face winding consistent within each component",
		Long: `Flip faces so that every pair of neighbours traverses their shared edge in
opposite directions. The lowest-numbered face of each component keeps its
winding. Components that cannot be oriented (a Moebius strip) are left
partly flipped and reported as inconsistent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			flipped := m.Orient()
			if !m.IsConsistent() {
				a.logger.Warn("mesh is not orientable", "path", args[0])
			}
			if err := m.ExportOBJ(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "flipped %d of %d faces, wrote %s\n", flipped, m.FaceCount(), PathStyle.Render(args[1]))

			return nil
		},
	}
}
