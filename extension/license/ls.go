// ls.go implements the "licenser ls" command listing available licenses.

package license

import (
	"github.com/jpl-au/licenser/cmd"
	"github.com/jpl-au/licenser/internal/format"
	"github.com/jpl-au/licenser/internal/license"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List available licenses",
		Long: `List the SPDX identifiers of the available license templates.

Examples:
  licenser ls
  licenser ls -o json`,
		Args: cobra.NoArgs,
		RunE: e.runLs,
	}
}

func (e *Extension) runLs(_ *cobra.Command, _ []string) error {
	all := license.All()
	log.Event("license:ls", "list").Detail("count", len(all)).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(all)
	}

	format.Licenses(cmd.Out(), all)
	return nil
}
