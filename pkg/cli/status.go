// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show compiler state and drift against the wiki",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			report, err := rt.compiler.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.State.LastUpdated.IsZero() {
				fmt.Fprintln(out, "No compiler state recorded yet.")
			} else {
				fmt.Fprintf(out, "Last updated: %s\n", report.State.LastUpdated.UTC().Format(time.RFC3339))
			}
			fmt.Fprintf(out, "Tracked pages: %d, generated templates: %d\n",
				len(report.State.PageHashes), len(report.State.TemplateHashes))

			printList(out, "Stale templates", report.StaleTemplates)
			printList(out, "Changed pages", report.PageDrift.Changed)
			printList(out, "New pages", report.PageDrift.New)
			printList(out, "Removed pages", report.PageDrift.Removed)

			if len(report.StaleTemplates) == 0 && report.PageDrift.Empty() {
				fmt.Fprintln(out, "No drift.")
			}
			return nil
		},
	}
}

func printList(out io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(out, "  %s\n", item)
	}
}
