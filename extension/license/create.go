// create.go implements the "licenser create" command.
//
// Separated from extension.go to keep the command logic (license rendering,
// overwrite protection, optional header injection) apart from extension
// registration.

package license

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/licenser/cmd"
	"github.com/jpl-au/licenser/internal/config"
	"github.com/jpl-au/licenser/internal/format"
	"github.com/jpl-au/licenser/internal/glob"
	"github.com/jpl-au/licenser/internal/header"
	"github.com/jpl-au/licenser/internal/license"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCreateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "create [spdx-id]",
		Short: "Write a LICENSE file",
		Long: `Write a LICENSE file from an SPDX template.

The identifier is case-insensitive. With no argument, the configured
license.default is used.

Examples:
  licenser create mit -n "Jane Doe"
  licenser create apache-2.0 --year 2025 --file LICENSE.txt
  licenser create mit --headers "src/**/*.go,cmd/**/*.go"`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runCreate,
	}
	c.Flags().String("file", "LICENSE", "Output file path")
	c.Flags().String("headers", "", "Comma-separated glob patterns of files to receive SPDX headers")
	return c
}

func (e *Extension) runCreate(c *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		if cfg, err := config.Load(); err == nil {
			id = cfg.License.Default
		}
	}
	if id == "" {
		return cmd.PrintJSONError(fmt.Errorf("no license given and license.default not configured (see 'licenser ls')"))
	}

	file, _ := c.Flags().GetString("file")
	patterns, _ := c.Flags().GetString("headers")

	l := log.Event("license:create", "create").
		Author(cmd.Author()).
		Path(file).
		Detail("license", id)

	spdx, err := license.Canonical(id)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	text, err := license.Render(spdx, cmd.Author(), cmd.Year())
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("create %s: %w", spdx, err))
	}

	if _, statErr := os.Stat(file); statErr == nil && !cmd.Force() {
		err = fmt.Errorf("%s already exists (use --force to overwrite)", file)
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	if err := os.WriteFile(file, []byte(text), 0644); err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("create %s: %w", spdx, err))
	}

	modified := 0
	if patterns != "" {
		files := glob.ResolveAll(".", strings.Split(patterns, ","))
		modified = header.Apply(files, header.Header{
			SPDX: spdx,
			Name: cmd.Author(),
			Year: cmd.Year(),
		})
		l.Detail("patterns", patterns).Detail("modified", modified)
	}
	l.Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"license":  spdx,
			"file":     file,
			"modified": modified,
		})
	}

	format.Success(cmd.Out(), "wrote %s (%s)", file, spdx)
	if patterns != "" {
		format.ModifiedCount(cmd.Out(), modified)
	}
	return nil
}
