// Package core provides the core extension for licenser.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/licenser/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "core" - this extension provides fundamental licenser commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - core commands have no MCP tool equivalents.
// MCP tools are provided by the license and header extensions.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
