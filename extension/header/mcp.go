// mcp.go exposes header injection and glob resolution as MCP tools.

package header

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpl-au/licenser/extension"
	"github.com/jpl-au/licenser/internal/glob"
	"github.com/jpl-au/licenser/internal/header"
	"github.com/jpl-au/licenser/internal/license"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the MCP tools for header injection.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("licenser_glob",
				mcp.WithDescription("List files matching a glob pattern relative to the working directory"),
				mcp.WithString("pattern", mcp.Required(), mcp.Description("Glob pattern (*, ?, ** supported), e.g. src/**/*.go")),
			),
			Handler: e.mcpGlob,
		},
		{
			Tool: mcp.NewTool("licenser_headers",
				mcp.WithDescription("Inject SPDX header comments into files matched by glob patterns. Idempotent: already-licensed files are skipped."),
				mcp.WithString("license", mcp.Required(), mcp.Description("SPDX identifier, case-insensitive")),
				mcp.WithString("patterns", mcp.Required(), mcp.Description("Comma-separated glob patterns, e.g. src/**/*.go,cmd/**/*.go")),
				mcp.WithString("name", mcp.Required(), mcp.Description("Copyright holder name")),
				mcp.WithString("year", mcp.Description("Copyright year (default: current year)")),
				mcp.WithBoolean("dry_run", mcp.Description("Report what would change without writing")),
			),
			Handler: e.mcpHeaders,
		},
	}
}

func (e *Extension) mcpGlob(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	paths := glob.Resolve(".", pattern)
	log.Event("mcp:licenser_glob", "list").Path(pattern).Detail("count", len(paths)).Write(nil)

	if paths == nil {
		paths = []string{}
	}
	b, err := json.Marshal(paths)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (e *Extension) mcpHeaders(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("license")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	patterns, err := req.RequireString("patterns")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dryRun := extension.GetBool(req, "dry_run", false)

	l := log.Event("mcp:licenser_headers", "inject").
		Author(name).
		Path(patterns).
		Detail("license", id).
		Detail("dry_run", dryRun)

	spdx, err := license.Canonical(id)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	h := header.Header{SPDX: spdx, Name: name, Year: extension.YearOrCurrent(req)}
	files := glob.ResolveAll(".", strings.Split(patterns, ","))

	modified := 0
	if dryRun {
		for _, f := range files {
			if _, _, ok := header.Plan(f, h); ok {
				modified++
			}
		}
	} else {
		modified = header.Apply(files, h)
	}
	l.Detail("matched", len(files)).Detail("modified", modified).Write(nil)

	verb := "modified"
	if dryRun {
		verb = "would modify"
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s %d of %d matched files", verb, modified, len(files))), nil
}
