// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hemesh/surface"
)

// app carries what every command shares.
type app struct {
	verbose bool
	logger  *log.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: log.New(io.Discard)}

	root := &cobra.Command{
		Use:   "hemesh",
		Short: "Half-edge surface mesh toolkit",
		Long: TitleStyle.Render("hemesh") + SubtitleStyle.Render(" - half-edge surface mesh toolkit") + `

hemesh reads Wavefront OBJ surfaces (optionally gzip-compressed), checks and
repairs their topology, extracts and merges patches, finds feature edges and
lays out snappyHexMesh case directories from a job file.

` + SubtitleStyle.Render("Examples:") + `
  hemesh inspect body.obj --verify
  hemesh orient body.obj body_fixed.obj.gz
  hemesh features body.obj edges.obj --angle 30
  hemesh prepare case/job.yaml`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "hemesh", Level: level})
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newInspectCommand(a),
		newOrientCommand(a),
		newExtractCommand(a),
		newMergeCommand(a),
		newFeaturesCommand(a),
		newComponentsCommand(a),
		newPrepareCommand(a),
		newGenerateCommand(a),
	)

	return root
}

// load reads a mesh file with the shared logger attached.
func (a *app) load(path string) (*surface.Mesh, error) {
	return surface.FromOBJ(path, surface.WithLogger(a.logger))
}

// printField writes one aligned key/value line.
func printField(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %v\n", LabelStyle.Render(key), value)
}

// joinInts renders a list of indices as "1, 2, 3".
func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
