// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate [category...]",
		Short: "Rebuild generated artifacts (all managed categories when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			report, err := rt.compiler.Regenerate(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, a := range report.Artifacts {
				if a.Error != "" {
					fmt.Fprintf(out, "FAILED %s (%s): %s\n", a.Title, a.Name, a.Error)
				}
			}
			fmt.Fprintf(out, "%d artifact(s) written, %d unchanged\n", report.Written(), report.Skipped())
			if n := report.Failed(); n > 0 {
				return fmt.Errorf("%d artifact(s) failed", n)
			}
			return nil
		},
	}
}
