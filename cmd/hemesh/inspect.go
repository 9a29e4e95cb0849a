// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newInspectCommand(a *app) *cobra.Command {
	var verify, asTOML, patches bool

	cmd := &cobra.Command{
		Use:   "inspect <mesh>",
		Short: "Print counts, bounds and topology flags of a mesh",
		Long: `Print the vertex, face, half-edge and patch counts of a mesh together with
its bounding box, whether it is closed, whether its winding is consistent and
how many connected components it has.

With --verify the structural invariants of the half-edge mesh are checked as
well; a failure exits with status 2.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sum := m.Summary()

			if asTOML {
				data, err := toml.Marshal(sum)
				if err != nil {
					return fmt.Errorf("encode summary: %w", err)
				}
				_, err = out.Write(data)
				return err
			}

			fmt.Fprintln(out, TitleStyle.Render(args[0]))
			printField(out, "vertices", sum.Vertices)
			printField(out, "faces", sum.Faces)
			printField(out, "edges", sum.Edges)
			printField(out, "patches", sum.Patches)
			printField(out, "components", sum.Components)
			printField(out, "closed", yesNo(sum.Closed))
			printField(out, "consistent", yesNo(sum.Consistent))
			printField(out, "min", fmt.Sprintf("%g %g %g", sum.Min[0], sum.Min[1], sum.Min[2]))
			printField(out, "max", fmt.Sprintf("%g %g %g", sum.Max[0], sum.Max[1], sum.Max[2]))
			if patches {
				for i, name := range m.Patches() {
					printField(out, fmt.Sprintf("patch %d", i), name)
				}
			}

			if verify {
				if err := m.CheckInvariants(); err != nil {
					printField(out, "invariants", ErrorStyle.Render("failed"))
					return &ExitError{Code: exitInvalid, Err: err}
				}
				printField(out, "invariants", SuccessStyle.Render("ok"))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "check the half-edge invariants")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the summary as TOML")
	cmd.Flags().BoolVar(&patches, "patches", false, "list patch names")

	return cmd
}
