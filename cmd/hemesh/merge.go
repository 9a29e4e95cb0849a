// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMergeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <out> <in> [<in>...]",
		Short: "Concatenate meshes into one file",
		Long: `Concatenate the input meshes in order. Vertices are not welded, so the
result has one component per input component and no seams are stitched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, inputs := args[0], args[1:]
			m, err := a.load(inputs[0])
			if err != nil {
				return err
			}
			for _, path := range inputs[1:] {
				other, err := a.load(path)
				if err != nil {
					return err
				}
				m.Merge(other)
			}
			if err := m.ExportOBJ(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "merged %d files into %d faces, wrote %s\n", len(inputs), m.FaceCount(), PathStyle.Render(out))

			return nil
		},
	}
}
