// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/schemafile"
)

func newExportCmd() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Rebuild the schema document from the wiki",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f schemafile.Format
			switch format {
			case "", "yaml":
				f = schemafile.FormatYAML
			case "json":
				f = schemafile.FormatJSON
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}

			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			data, err := rt.compiler.Export(cmd.Context(), f)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml|json)")
	return cmd
}
