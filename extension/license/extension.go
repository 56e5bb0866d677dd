// Package license provides the license extension for licenser.
// It registers commands: create, ls.
package license

import (
	"github.com/jpl-au/licenser/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the license extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var _ extension.Extension = (*Extension)(nil)

// Name returns "license" - this extension generates LICENSE files.
func (e *Extension) Name() string { return "license" }

// Commands returns the license CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newCreateCmd(),
		e.newLsCmd(),
	}
}
