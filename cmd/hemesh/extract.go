// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hemesh/surface"
)

func newExtractCommand(a *app) *cobra.Command {
	var (
		faces   []int
		patches []string
	)

	cmd := &cobra.Command{
		Use:   "extract <in> <out>",
		Short: "Write a subset of faces as a new mesh",
		Long: `Write the listed faces, or every face of the listed patches, as a new mesh.
Vertices and patches are renumbered in order of first use.`,
		Example: `  hemesh extract body.obj wall.obj --patches wall_left,wall_right
  hemesh extract body.obj pick.obj --faces 0,4,9`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}

			var sub *surface.Mesh
			if len(patches) > 0 {
				sub, err = m.ExtractPatches(patches)
			} else {
				sub, err = m.ExtractFaces(faces)
			}
			if err != nil {
				return err
			}
			if err := sub.ExportOBJ(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "extracted %d faces, wrote %s\n", sub.FaceCount(), PathStyle.Render(args[1]))

			return nil
		},
	}
	cmd.Flags().IntSliceVar(&faces, "faces", nil, "face indices to extract")
	cmd.Flags().StringSliceVar(&patches, "patches", nil, "patch names to extract")
	cmd.MarkFlagsMutuallyExclusive("faces", "patches")
	cmd.MarkFlagsOneRequired("faces", "patches")

	return cmd
}
