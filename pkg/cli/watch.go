// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/compiler"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration
	var bypass bool

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-import a schema document whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", path)
			return compiler.WatchFile(cmd.Context(), path, debounce, rt.logger, func(ctx context.Context) error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				return runImport(ctx, cmd.OutOrStdout(), rt, data, compiler.ImportOptions{Bypass: bypass})
			})
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", compiler.DefaultDebounce, "settle time before re-importing")
	cmd.Flags().BoolVar(&bypass, "bypass", false, "mark edit summaries with the rate-limit bypass note")
	return cmd
}
