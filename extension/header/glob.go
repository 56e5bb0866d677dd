// glob.go implements the "licenser glob" command for pattern debugging.
//
// Separated from headers.go because glob only resolves patterns (no file
// rewriting); it exists so users can check what a --headers pattern will
// touch before running the injection.

package header

import (
	"github.com/jpl-au/licenser/cmd"
	"github.com/jpl-au/licenser/internal/format"
	"github.com/jpl-au/licenser/internal/glob"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob <pattern>",
		Short: "List files matching a glob pattern",
		Long: `List the files a glob pattern resolves to, relative to the working
directory. Useful for checking a pattern before 'licenser headers'.

Supports glob patterns: *, ?, **

Examples:
  licenser glob "src/**/*.go"
  licenser glob "**/*.py" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: e.runGlob,
	}
}

func (e *Extension) runGlob(_ *cobra.Command, args []string) error {
	pattern := args[0]

	paths := glob.Resolve(".", pattern)
	log.Event("header:glob", "list").
		Path(pattern).
		Detail("count", len(paths)).
		Write(nil)

	if cmd.JSON() {
		if paths == nil {
			paths = []string{}
		}
		return cmd.PrintJSON(paths)
	}

	format.Paths(cmd.Out(), paths)
	return nil
}
