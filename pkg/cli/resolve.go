// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/semschema-api/services"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <category>...",
		Short: "Resolve one or more categories into their effective property set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}

			svc := services.NewResolutionService(rt.backend, rt.logger)
			resp, err := svc.Resolve(cmd.Context(), args)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}
