// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hemesh/internal/config"
	"github.com/katalvlaran/hemesh/internal/prepare"
)

func newPrepareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare <job>",
		Short: "Lay out a snappyHexMesh case from a job file",
		Long: `Read a YAML or TOML job file, import and merge its geometry, assign every
patch to a region or a refinement volume and write the region surfaces,
volume surfaces and feature edges under the working directory.

Any job key can be overridden from the environment with the HEMESH_ prefix,
for example HEMESH_MESH_FEATURE_ANGLE=45.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(ctx, args[0])
			if err != nil {
				return err
			}
			b := prepare.New(cfg, prepare.WithLogger(a.logger))
			if err := b.Setup(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := b.Report()
			fmt.Fprintln(out, TitleStyle.Render(cfg.WorkingDirectory))
			for _, reg := range r.Regions {
				printField(out, reg.Name, fmt.Sprintf("%d faces  %s", reg.Faces, PathStyle.Render(reg.File)))
			}
			for _, c := range r.Controls {
				printField(out, c.Patch, fmt.Sprintf("level %d  %s", c.Level, PathStyle.Render(c.File)))
			}
			for _, f := range r.Features {
				printField(out, fmt.Sprintf("level %d", f.Level), fmt.Sprintf("%d edges  %s", f.Edges, PathStyle.Render(f.File)))
			}
			printField(out, "report", PathStyle.Render(filepath.Join(cfg.WorkingDirectory, prepare.ReportFile)))

			return nil
		},
	}
}
