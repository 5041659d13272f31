// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/schemafile"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a schema document without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := schemafile.Parse(data)
			if err != nil {
				return err
			}
			_, result := schemafile.Build(doc)

			for _, issue := range result.Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), issue.String())
			}
			for _, issue := range result.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), issue.String())
			}
			if !result.OK() {
				return fmt.Errorf("%d validation error(s)", len(result.Errors))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d warning(s))\n", args[0], len(result.Warnings))
			return nil
		},
	}
}
