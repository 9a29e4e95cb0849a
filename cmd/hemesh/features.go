// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

const defaultFeatureAngle = 30.0

func newFeaturesCommand(a *app) *cobra.Command {
	var angle float64

	cmd := &cobra.Command{
		Use:   "features <in> <out>",
		Short: "Write feature edges as OBJ line elements",
		Long: `Find every interior edge whose adjacent face normals differ by more than
--angle degrees and write them to <out> as OBJ "l" elements.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if angle < 0 || angle > 180 {
				return fmt.Errorf("--angle %v is outside [0, 180]", angle)
			}
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			edges := m.FeatureHalfEdges(angle * math.Pi / 180)
			if err := m.ExportEdgesOBJ(args[1], edges); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "found %d feature edges, wrote %s\n", len(edges), PathStyle.Render(args[1]))

			return nil
		},
	}
	cmd.Flags().Float64Var(&angle, "angle", defaultFeatureAngle, "feature angle in degrees")

	return cmd
}
