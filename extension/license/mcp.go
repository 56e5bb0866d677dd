// mcp.go exposes license operations as MCP tools.
//
// Separated from the command files so the CLI and MCP surfaces of the
// extension stay independent: tools return structured text for LLM
// consumption instead of writing through the cmd output helpers.

package license

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/licenser/extension"
	"github.com/jpl-au/licenser/internal/license"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the MCP tools for license generation.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("licenser_list",
				mcp.WithDescription("List available SPDX license identifiers"),
			),
			Handler: e.mcpList,
		},
		{
			Tool: mcp.NewTool("licenser_text",
				mcp.WithDescription("Render the full text of a license with name and year substituted"),
				mcp.WithString("license", mcp.Required(), mcp.Description("SPDX identifier, case-insensitive (e.g. MIT, apache-2.0)")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Copyright holder name")),
				mcp.WithString("year", mcp.Description("Copyright year (default: current year)")),
			),
			Handler: e.mcpText,
		},
		{
			Tool: mcp.NewTool("licenser_create",
				mcp.WithDescription("Write a LICENSE file in the working directory"),
				mcp.WithString("license", mcp.Required(), mcp.Description("SPDX identifier, case-insensitive")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Copyright holder name")),
				mcp.WithString("year", mcp.Description("Copyright year (default: current year)")),
				mcp.WithString("file", mcp.Description("Output file path (default: LICENSE)")),
				mcp.WithBoolean("force", mcp.Description("Overwrite an existing file")),
			),
			Handler: e.mcpCreate,
		},
	}
}

func (e *Extension) mcpList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(license.All())
	log.Event("mcp:licenser_list", "list").Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (e *Extension) mcpText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("license")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := license.Render(id, name, extension.YearOrCurrent(req))
	log.Event("mcp:licenser_text", "render").Author(name).Detail("license", id).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (e *Extension) mcpCreate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("license")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	file := extension.GetString(req, "file", "LICENSE")
	force := extension.GetBool(req, "force", false)

	l := log.Event("mcp:licenser_create", "create").Author(name).Path(file).Detail("license", id)

	spdx, err := license.Canonical(id)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := license.Render(spdx, name, extension.YearOrCurrent(req))
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, statErr := os.Stat(file); statErr == nil && !force {
		err = fmt.Errorf("%s already exists (pass force to overwrite)", file)
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := os.WriteFile(file, []byte(text), 0644); err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Write(nil)

	var b strings.Builder
	fmt.Fprintf(&b, "wrote %s (%s)", file, spdx)
	return mcp.NewToolResultText(b.String()), nil
}
