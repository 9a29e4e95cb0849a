// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newComponentsCommand(a *app) *cobra.Command {
	var (
		split string
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "components <mesh>",
		Short: "List the edge-connected components of a mesh",
		Long: `List the edge-connected face sets of a mesh, ordered by their lowest face.
With --split each component is written to <dir>/component_NN.obj.gz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			comps := m.Components()
			fmt.Fprintf(out, "%d components\n", len(comps))

			if split != "" {
				if err := os.MkdirAll(split, 0o755); err != nil {
					return err
				}
			}
			for i, faces := range comps {
				printField(out, fmt.Sprintf("component %d", i), fmt.Sprintf("%d faces", len(faces)))
				if list {
					fmt.Fprintln(out, SubtitleStyle.Render(joinInts(faces)))
				}
				if split == "" {
					continue
				}
				sub, err := m.ExtractFaces(faces)
				if err != nil {
					return err
				}
				path := filepath.Join(split, fmt.Sprintf("component_%02d.obj.gz", i))
				if err := sub.ExportOBJ(path); err != nil {
					return err
				}
				a.logger.Debug("wrote component", "path", path, "faces", len(faces))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&split, "split", "", "write each component to this directory")
	cmd.Flags().BoolVar(&list, "list", false, "print the face indices of each component")

	return cmd
}
