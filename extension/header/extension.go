// Package header provides the header extension for licenser.
// It registers commands: headers, glob.
package header

import (
	"github.com/jpl-au/licenser/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the header extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "header" - this extension injects SPDX source headers.
func (e *Extension) Name() string { return "header" }

// Commands returns the header CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newHeadersCmd(),
		e.newGlobCmd(),
	}
}
