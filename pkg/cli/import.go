// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/compiler"
	"github.com/semanticschemas/semanticschemas/internal/schemafile"
	"github.com/semanticschemas/semanticschemas/internal/store"
)

func newImportCmd() *cobra.Command {
	var dryRun, bypass bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Compile a schema document into the wiki",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Flags())
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runImport(cmd.Context(), cmd.OutOrStdout(), rt, data, compiler.ImportOptions{
				DryRun: dryRun,
				Bypass: bypass,
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report would-be writes without writing")
	cmd.Flags().BoolVar(&bypass, "bypass", false, "mark edit summaries with the rate-limit bypass note")
	return cmd
}

func runImport(ctx context.Context, out io.Writer, rt *runtime, data []byte, opts compiler.ImportOptions) error {
	doc, err := schemafile.Parse(data)
	if err != nil {
		return err
	}

	report, err := rt.compiler.Import(ctx, doc, opts)
	if report != nil && report.Validation != nil {
		for _, issue := range report.Validation.Warnings {
			fmt.Fprintln(out, issue.String())
		}
		for _, issue := range report.Validation.Errors {
			fmt.Fprintln(out, issue.String())
		}
	}
	if err != nil {
		return err
	}

	written, skipped := 0, 0
	for _, e := range report.Entities {
		switch {
		case e.Error != "":
		case e.Outcome == store.OutcomeSkipped:
			skipped++
		default:
			written++
		}
	}
	verb := "imported"
	if opts.DryRun {
		verb = "planned"
	}
	fmt.Fprintf(out, "%s %d definition(s) (%d unchanged)", verb, written, skipped)
	if report.Artifacts != nil {
		fmt.Fprintf(out, ", %d artifact(s) written, %d unchanged", report.Artifacts.Written(), report.Artifacts.Skipped())
	}
	fmt.Fprintln(out)
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d write(s) failed", n)
	}
	return nil
}
