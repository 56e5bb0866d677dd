/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE resolves the copyright holder lazily - only
// commands that write attribution (create, headers) require a name, so
// utility commands (ls, glob, guide, version) work without any
// configuration. The nameRequiredCommands map controls which commands
// fail when no name can be resolved.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/licenser/extension"
	"github.com/jpl-au/licenser/internal/author"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/spf13/cobra"
)

// nameRequiredCommands lists commands that must have a copyright holder
// name resolved before they run.
var nameRequiredCommands = map[string]bool{
	"create":  true,
	"headers": true,
}

var rootCmd = &cobra.Command{
	Use:   "licenser",
	Short: "Generate LICENSE files and SPDX source headers",
	Long:  `Generates a LICENSE file from SPDX templates and optionally injects SPDX header comments into source files matched by glob patterns.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Detect the copyright holder if not explicitly set
		if Author() == "" {
			SetAuthor(author.Detect("."))
		}

		cmdName := topLevelCmdName(cmd)
		if nameRequiredCommands[cmdName] && Author() == "" {
			return fmt.Errorf("copyright holder not configured (checked --name, .licenser/config.yaml, ~/.licenser/config.yaml, git config, package.json)\n\nRun: licenser config author.name \"Your Name\"\n\nSee 'licenser guide' for details.")
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "licenser create mit", returns "create".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// registerExtensions adds every registered extension's commands to the root.
func registerExtensions() {
	for _, ext := range extension.All() {
		for _, c := range ext.Commands() {
			rootCmd.AddCommand(c)
		}
	}
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extension commands, and executes the
// command. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
