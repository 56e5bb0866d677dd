// params.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters
// from MCP's generic argument map. These helpers provide safe defaults when
// optional parameters are missing.
//
// Design: We use permissive extraction (return default on error) rather
// than strict validation because MCP tools should be forgiving - an LLM
// omitting an optional parameter shouldn't cause cryptic errors.

package extension

import (
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a
// string.
func GetString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil && v != "" {
		return v
	}
	return def
}

// GetBool extracts a boolean parameter from the MCP request arguments.
//
// JSON booleans decode as Go bool values, so a type assertion on the raw
// argument map suffices. Returns the default if the parameter is missing or
// not a boolean.
func GetBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// YearOrCurrent extracts the optional year parameter, defaulting to the
// current year.
func YearOrCurrent(req mcp.CallToolRequest) string {
	return GetString(req, "year", strconv.Itoa(time.Now().Year()))
}
