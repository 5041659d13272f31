// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the ssc command tree. Every subcommand drives the
// same compiler the HTTP service uses, against the backend selected by the
// global flags.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/semanticschemas/semanticschemas/internal/state"
)

// NewRootCmd creates the ssc root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ssc",
		Short:         "SemanticSchemas ontology compiler",
		Long:          "ssc compiles schema definitions into semantic wiki pages:\nproperty and category definitions, storage templates, dispatchers,\ndisplay stubs, and data-entry forms.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("store", "sqlite", "wiki backend (memory|sqlite)")
	pf.String("db", "semanticschemas.db", "sqlite database path")
	pf.String("state-page", state.DefaultStatePage, "MediaWiki-namespace page holding the state document")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	pf.String("log-format", "text", "log format (json|text)")

	root.AddCommand(
		newValidateCmd(),
		newImportCmd(),
		newExportCmd(),
		newRegenerateCmd(),
		newResolveCmd(),
		newStatusCmd(),
		newInstallCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
	return root
}
