// serve.go implements the "licenser serve" command for MCP server operation.
//
// Separated from extension.go because serve has a unique lifecycle: unlike
// other commands that run and exit, serve blocks indefinitely handling MCP
// requests over stdio.

package core

import (
	"github.com/jpl-au/licenser/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Exposes license generation, header injection and glob
resolution as tools.`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve()
}
