// headers.go implements the "licenser headers" command.
//
// Separated from extension.go to isolate the injection flow: resolve the
// comma-separated glob patterns, then either preview (--dry-run, diff per
// file) or rewrite the matched files in place.

package header

import (
	"fmt"
	"strings"

	"github.com/jpl-au/licenser/cmd"
	"github.com/jpl-au/licenser/internal/diff"
	"github.com/jpl-au/licenser/internal/format"
	"github.com/jpl-au/licenser/internal/glob"
	"github.com/jpl-au/licenser/internal/header"
	"github.com/jpl-au/licenser/internal/license"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newHeadersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "headers <spdx-id> <patterns>",
		Short: "Inject SPDX headers into matched source files",
		Long: `Inject a two-line SPDX header comment into every file matched by the
comma-separated glob patterns. Patterns are forward-slash delimited and
support *, ? and ** (zero or more directory levels).

Files that already carry an SPDX-License-Identifier are skipped, so the
command is safe to re-run. A leading #! interpreter directive stays the
first line of the file.

Examples:
  licenser headers mit "src/**/*.go"
  licenser headers mit "src/**/*.ts,web/**/*.ts" -n "Jane Doe"
  licenser headers mit "**/*.py" --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: e.runHeaders,
	}
	c.Flags().Bool("dry-run", false, "Show the changes as diffs without writing")
	return c
}

func (e *Extension) runHeaders(c *cobra.Command, args []string) error {
	id, patterns := args[0], args[1]
	dryRun, _ := c.Flags().GetBool("dry-run")

	l := log.Event("header:apply", "inject").
		Author(cmd.Author()).
		Path(patterns).
		Detail("license", id).
		Detail("dry_run", dryRun)

	spdx, err := license.Canonical(id)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	h := header.Header{SPDX: spdx, Name: cmd.Author(), Year: cmd.Year()}
	files := glob.ResolveAll(".", strings.Split(patterns, ","))

	if dryRun {
		changed := 0
		for _, f := range files {
			before, after, ok := header.Plan(f, h)
			if !ok {
				continue
			}
			changed++
			if !cmd.JSON() {
				r := diff.Compute(f, before, after)
				fmt.Fprintf(cmd.Out(), "--- %s\n%s\n", r.Path, r.Format(true))
			}
		}
		l.Detail("matched", len(files)).Detail("modified", changed).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]any{
				"license":  spdx,
				"matched":  len(files),
				"modified": changed,
				"dry_run":  true,
			})
		}
		format.Warn(cmd.Out(), "dry run: %d of %d matched files would be modified", changed, len(files))
		return nil
	}

	modified := header.Apply(files, h)
	l.Detail("matched", len(files)).Detail("modified", modified).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"license":  spdx,
			"matched":  len(files),
			"modified": modified,
		})
	}

	format.ModifiedCount(cmd.Out(), modified)
	return nil
}
