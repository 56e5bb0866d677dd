// config.go implements the "licenser config" command for configuration
// management.
//
// Design: Config follows a cascade model similar to git: local config
// (.licenser/config.yaml) takes precedence over global
// (~/.licenser/config.yaml). The --local flag forces use of local config
// even if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/jpl-au/licenser/cmd"
	"github.com/jpl-au/licenser/internal/config"
	"github.com/jpl-au/licenser/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  licenser config                        # show config
  licenser config author.name            # show author.name value
  licenser config author.name "Jane Doe" # set author.name

Configuration locations:
  Global: ~/.licenser/config.yaml
  Local:  .licenser/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.licenser/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	// Load config: local if exists, otherwise global.
	// --local flag forces local even if it doesn't exist yet.
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		for _, k := range config.ValidKeys() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
