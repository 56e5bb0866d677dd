// Package mcp implements the Model Context Protocol server, exposing
// licenser operations to LLMs. This enables AI assistants to generate
// licenses, inject SPDX headers and resolve glob patterns through a
// standardised protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jpl-au/licenser/extension"
	"github.com/jpl-au/licenser/internal/author"
	"github.com/jpl-au/licenser/internal/license"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrInvalidURI indicates a malformed resource URI, helping clients
// debug URI construction issues.
var ErrInvalidURI = errors.New("invalid URI")

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
//
// Tools are collected from registered extensions, so the tool surface
// stays in lockstep with the CLI command surface.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"licenser",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s)

	for _, ext := range extension.All() {
		for _, tool := range ext.MCPTools() {
			s.AddTool(tool.Tool, server.ToolHandlerFunc(tool.Handler))
		}
	}

	slog.Info("licenser MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerResources adds URI-based access to rendered license texts.
func registerResources(s *server.MCPServer) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"licenser://licenses/{id}",
			"License",
			mcp.WithTemplateDescription("Rendered license text by SPDX identifier"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		readLicense,
	)
}

// readLicense handles licenser://licenses/{id} resource requests. The
// text is rendered with the detected author and the current year, the
// same defaults the CLI applies.
func readLicense(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := parseLicenseURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	name := author.Detect(".")
	if name == "" {
		name = "<copyright holders>"
	}

	text, err := license.Render(id, name, strconv.Itoa(time.Now().Year()))
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}

// parseLicenseURI extracts the SPDX identifier from a license URI.
func parseLicenseURI(uri string) (string, error) {
	const prefix = "licenser://licenses/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	id := strings.TrimPrefix(uri, prefix)
	if id == "" {
		return "", fmt.Errorf("%w: missing license id", ErrInvalidURI)
	}
	return id, nil
}
