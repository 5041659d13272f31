// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:      %s\n", v.Version)
			fmt.Fprintf(out, "Git Revision: %s\n", v.GitRevision)
			fmt.Fprintf(out, "Build Time:   %s\n", v.BuildTime)
			fmt.Fprintf(out, "Go Version:   %s %s/%s\n", v.GoVersion, v.GoOS, v.GoArch)
			return nil
		},
	}
}
