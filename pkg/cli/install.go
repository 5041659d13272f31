// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/installer"
	"github.com/semanticschemas/semanticschemas/internal/store"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the base ontology layers into the wiki",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}

			creator := store.NewPageCreator(rt.backend, rt.logger)
			inst := installer.New(rt.backend, creator, rt.logger)
			report, err := inst.Install(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, layer := range report.Layers {
				fmt.Fprintf(out, "%s: %d written, %d unchanged\n",
					layer.Name, len(layer.Written), len(layer.Skipped))
			}
			fmt.Fprintf(out, "install complete: %d written, %d unchanged\n", report.Written(), report.Skipped())
			return nil
		},
	}
}
