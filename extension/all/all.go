// Package all imports all core licenser extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/licenser/extension/core"
	_ "github.com/jpl-au/licenser/extension/header"
	_ "github.com/jpl-au/licenser/extension/license"
)
